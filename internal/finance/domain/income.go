package domain

import "time"

// Income is a single earning. Incomes carry no category.
type Income struct {
	ID          string
	Description string
	Amount      int64 // cents, strictly positive
	Date        time.Time
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
