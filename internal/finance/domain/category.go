package domain

import "time"

// Category labels expenses. Global categories are shared read-only
// fixtures seeded at startup; personal ones belong to exactly one user.
// Invariant: IsGlobal == (UserID == "").
type Category struct {
	ID          string
	Name        string
	Description string
	IsGlobal    bool
	UserID      string // empty when global
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisibleTo reports whether user userID may reference this category.
func (c Category) VisibleTo(userID string) bool {
	return c.IsGlobal || c.UserID == userID
}
