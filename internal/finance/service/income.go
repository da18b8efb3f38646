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

// IncomeService owns the income lifecycle. It mirrors ExpenseService
// minus the category concern, since incomes carry no category.
type IncomeService struct {
	Store store.Store
}

// IncomeInput carries the mutable fields of an income. Amount is in cents
// and must be strictly positive.
type IncomeInput struct {
	Description string
	Amount      int64
	Date        time.Time
}

func (in *IncomeInput) validate() error {
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case in.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	case in.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

// List returns the user's own incomes, newest date first.
func (s *IncomeService) List(ctx context.Context, userID string) ([]domain.Income, error) {
	return s.Store.Incomes().ListIncomes(ctx, userID)
}

// Get returns a single income owned by the caller.
func (s *IncomeService) Get(ctx context.Context, userID, id string) (domain.Income, error) {
	i, err := s.Store.Incomes().GetIncome(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Income{}, ErrNotFound
		}
		return domain.Income{}, err
	}
	if i.UserID != userID {
		return domain.Income{}, ErrNotFound
	}
	return i, nil
}

// Create records a new income for the caller.
func (s *IncomeService) Create(ctx context.Context, userID string, in IncomeInput) (domain.Income, error) {
	if err := in.validate(); err != nil {
		return domain.Income{}, err
	}

	i := domain.Income{
		ID:          idx.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		UserID:      userID,
	}

	if err := s.Store.Incomes().CreateIncome(ctx, i); err != nil {
		return domain.Income{}, err
	}
	return i, nil
}

// Update rewrites an income's mutable fields.
func (s *IncomeService) Update(ctx context.Context, userID, id string, in IncomeInput) (domain.Income, error) {
	if err := in.validate(); err != nil {
		return domain.Income{}, err
	}

	i, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Income{}, err
	}

	i.Description = in.Description
	i.Amount = in.Amount
	i.Date = in.Date

	if err := s.Store.Incomes().UpdateIncome(ctx, i); err != nil {
		return domain.Income{}, err
	}
	return i, nil
}

// Delete removes an income owned by the caller.
func (s *IncomeService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.Store.Incomes().DeleteIncome(ctx, id)
}
