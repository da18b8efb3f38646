package domain

import "time"

// Expense is a single spend, always owned by a user and always labelled
// with a category that is either global or owned by the same user.
type Expense struct {
	ID          string
	Description string
	Amount      int64 // cents, strictly positive
	Date        time.Time
	UserID      string
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
