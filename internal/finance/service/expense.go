package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/pkg/idx"
)

// ExpenseService owns the expense lifecycle. Ownership comes from the
// resolved identity on every call; an expense id that belongs to another
// user is reported as missing, never as forbidden.
type ExpenseService struct {
	Store      store.Store
	Categories *CategoryService
}

// ExpenseInput carries the mutable fields of an expense. Amount is in
// cents and must be strictly positive.
type ExpenseInput struct {
	Description string
	Amount      int64
	Date        time.Time
	CategoryID  string
}

func (in *ExpenseInput) validate() error {
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case in.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	case in.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrValidation)
	case strings.TrimSpace(in.CategoryID) == "":
		return fmt.Errorf("%w: category id is required", ErrValidation)
	}
	return nil
}

// List returns the user's own expenses, newest date first.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]domain.Expense, error) {
	return s.Store.Expenses().ListExpenses(ctx, userID)
}

// Get returns a single expense owned by the caller.
func (s *ExpenseService) Get(ctx context.Context, userID, id string) (domain.Expense, error) {
	e, err := s.Store.Expenses().GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Expense{}, ErrNotFound
		}
		return domain.Expense{}, err
	}
	if e.UserID != userID {
		return domain.Expense{}, ErrNotFound
	}
	return e, nil
}

// Create records a new expense. The category reference is checked against
// the caller's scope before anything is written.
func (s *ExpenseService) Create(ctx context.Context, userID string, in ExpenseInput) (domain.Expense, error) {
	if err := in.validate(); err != nil {
		return domain.Expense{}, err
	}
	if err := s.Categories.CanAssign(ctx, userID, in.CategoryID); err != nil {
		return domain.Expense{}, err
	}

	e := domain.Expense{
		ID:          idx.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		UserID:      userID,
		CategoryID:  in.CategoryID,
	}

	if err := s.Store.Expenses().CreateExpense(ctx, e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Expense{}, ErrNotFound
		}
		return domain.Expense{}, err
	}
	return e, nil
}

// Update rewrites an expense's mutable fields. The scope check on the
// category runs again even when the category id did not change.
func (s *ExpenseService) Update(ctx context.Context, userID, id string, in ExpenseInput) (domain.Expense, error) {
	if err := in.validate(); err != nil {
		return domain.Expense{}, err
	}

	e, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Expense{}, err
	}

	if err := s.Categories.CanAssign(ctx, userID, in.CategoryID); err != nil {
		return domain.Expense{}, err
	}

	e.Description = in.Description
	e.Amount = in.Amount
	e.Date = in.Date
	e.CategoryID = in.CategoryID

	if err := s.Store.Expenses().UpdateExpense(ctx, e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Expense{}, ErrNotFound
		}
		return domain.Expense{}, err
	}
	return e, nil
}

// Delete removes an expense owned by the caller.
func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.Store.Expenses().DeleteExpense(ctx, id)
}
