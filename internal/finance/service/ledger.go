package service

import (
	"context"
	"errors"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/pkg/moneyx"
)

// LedgerService computes balance and savings figures for a user. Every
// call re-derives from the persisted income and expense rows; nothing is
// cached, so the figures are never stale relative to the last committed
// write.
type LedgerService struct {
	Store store.Store
}

// TotalIncome sums the user's income amounts in cents; 0 when none.
func (s *LedgerService) TotalIncome(ctx context.Context, userID string) (int64, error) {
	return s.Store.Incomes().SumIncomes(ctx, userID)
}

// TotalExpense sums the user's expense amounts in cents; 0 when none.
func (s *LedgerService) TotalExpense(ctx context.Context, userID string) (int64, error) {
	return s.Store.Expenses().SumExpenses(ctx, userID)
}

// Balance returns the full projection {totals, income - expense}. The
// balance may be negative.
func (s *LedgerService) Balance(ctx context.Context, userID string) (domain.BalanceSheet, error) {
	income, err := s.TotalIncome(ctx, userID)
	if err != nil {
		return domain.BalanceSheet{}, err
	}
	expense, err := s.TotalExpense(ctx, userID)
	if err != nil {
		return domain.BalanceSheet{}, err
	}

	return domain.BalanceSheet{
		UserID:       userID,
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
	}, nil
}

// Savings reports the balance against the user's savings goal. A goal of
// zero yields progress 0 for any balance; there is no error path for it.
func (s *LedgerService) Savings(ctx context.Context, userID string) (domain.SavingsReport, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.SavingsReport{}, ErrNotFound
		}
		return domain.SavingsReport{}, err
	}

	sheet, err := s.Balance(ctx, userID)
	if err != nil {
		return domain.SavingsReport{}, err
	}

	return domain.SavingsReport{
		UserID:      userID,
		SavingsGoal: u.SavingsGoal,
		Balance:     sheet.Balance,
		Progress:    moneyx.Progress(sheet.Balance, u.SavingsGoal),
	}, nil
}
