package domain

import "time"

// AccessToken is what the login endpoint returns. The token itself is an
// opaque bearer string to callers; nothing about it is persisted.
type AccessToken struct {
	Token     string
	TokenType string // always "Bearer"
	ExpiresIn time.Duration
}

// BalanceSheet is the read-side projection over a user's ledger. It has no
// persisted representation; every field is re-derived from the current
// income and expense rows.
type BalanceSheet struct {
	UserID       string
	TotalIncome  int64 // cents
	TotalExpense int64 // cents
	Balance      int64 // cents, may be negative
}

// SavingsReport expresses the balance against the user's savings goal.
type SavingsReport struct {
	UserID      string
	SavingsGoal int64 // cents
	Balance     int64 // cents
	Progress    float64 // percent, two decimal places; 0 when goal <= 0
}
