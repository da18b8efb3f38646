package domain

import "time"

// User is an account holder. FullName doubles as the login handle and the
// token subject, so it is unique across accounts.
type User struct {
	ID           string
	FullName     string
	BirthDate    time.Time
	Location     string
	SavingsGoal  int64 // cents, never negative
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
