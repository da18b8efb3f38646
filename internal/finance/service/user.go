package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/pkg/slogx"
)

// UserService covers account reads and full account removal.
type UserService struct {
	Store store.Store
}

// Get returns the user's own profile.
func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// UpdateSavingsGoal sets the user's savings goal in cents.
func (s *UserService) UpdateSavingsGoal(ctx context.Context, userID string, goal int64) error {
	if goal < 0 {
		return fmt.Errorf("%w: savings goal cannot be negative", ErrValidation)
	}
	if err := s.Store.Users().UpdateSavingsGoal(ctx, userID, goal); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes the account and every row it owns in one transaction.
// Dependent rows go first so the user row is never orphaned mid-way, and
// a failure anywhere rolls the whole thing back. Outstanding tokens keep
// verifying cryptographically but fail subject resolution afterwards.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Expenses().DeleteUserExpenses(ctx, userID); err != nil {
			return err
		}
		if err := tx.Incomes().DeleteUserIncomes(ctx, userID); err != nil {
			return err
		}
		if err := tx.Categories().DeleteUserCategories(ctx, userID); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("account deleted", "user_id", userID)
	return nil
}
