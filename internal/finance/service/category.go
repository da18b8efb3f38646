package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/pkg/idx"
	"github.com/Leonelvm1/FinanceApp/pkg/slogx"
)

// CategoryService decides which categories a user can see and assign.
// Every write path that references a category goes through CanAssign; it
// is the single authority preventing cross-user leakage through a guessed
// or reused category id.
type CategoryService struct {
	Store store.Store
}

// VisibleTo returns the union of global categories and those owned by the
// user. Uniqueness is by category id; ordering is not significant.
func (s *CategoryService) VisibleTo(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.Store.Categories().ListVisibleCategories(ctx, userID)
}

// CanAssign reports whether the user may reference the category on an
// expense write: nil when the category is global or owned by the user,
// ErrNotFound when it does not exist, ErrScopeViolation otherwise. It is
// evaluated on every expense create/update, not just at category creation.
func (s *CategoryService) CanAssign(ctx context.Context, userID, categoryID string) error {
	c, err := s.Store.Categories().GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !c.VisibleTo(userID) {
		return ErrScopeViolation
	}
	return nil
}

// Create inserts a personal category for the user. Ownership comes from
// the resolved identity; is_global is never settable through this path.
func (s *CategoryService) Create(ctx context.Context, userID, name, description string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	c := domain.Category{
		ID:          idx.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		IsGlobal:    false,
		UserID:      userID,
	}

	if err := s.Store.Categories().CreateCategory(ctx, c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// Update renames a personal category owned by the caller. Globals are
// visible but immutable through this surface; foreign personal categories
// are reported as missing so their existence is not revealed.
func (s *CategoryService) Update(ctx context.Context, userID, id, name, description string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	c, err := s.Store.Categories().GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, ErrNotFound
		}
		return domain.Category{}, err
	}

	if c.IsGlobal {
		return domain.Category{}, ErrScopeViolation
	}
	if c.UserID != userID {
		return domain.Category{}, ErrNotFound
	}

	if err := s.Store.Categories().UpdateCategory(ctx, id, name, strings.TrimSpace(description)); err != nil {
		return domain.Category{}, err
	}

	c.Name = name
	c.Description = strings.TrimSpace(description)
	return c, nil
}

// Delete removes a personal category owned by the caller, with the same
// scope rules as Update.
func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	c, err := s.Store.Categories().GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if c.IsGlobal {
		return ErrScopeViolation
	}
	if c.UserID != userID {
		return ErrNotFound
	}

	if err := s.Store.Categories().DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrInUse) {
			return ErrInUse
		}
		return err
	}
	return nil
}

// defaultCategories are the shared fixtures every deployment starts with.
var defaultCategories = []struct {
	Name        string
	Description string
}{
	{"Food", "Meals, groceries, dining"},
	{"Transport", "Public transport, fuel, taxi"},
	{"Housing", "Rent, utilities, maintenance"},
	{"Health", "Medical expenses, pharmacy"},
	{"Entertainment", "Movies, subscriptions, events"},
	{"Savings", "Savings or investments"},
	{"Others", "Miscellaneous"},
}

// SeedDefaults inserts the global default categories, skipping any that
// already exist so startup stays idempotent.
func (s *CategoryService) SeedDefaults(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	for _, dc := range defaultCategories {
		_, err := s.Store.Categories().GetGlobalCategoryByName(ctx, dc.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		c := domain.Category{
			ID:          idx.New().String(),
			Name:        dc.Name,
			Description: dc.Description,
			IsGlobal:    true,
		}
		if err := s.Store.Categories().CreateCategory(ctx, c); err != nil {
			// A concurrent seeder may have won the race; the unique index
			// on global names makes that safe to ignore.
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return err
		}
		l.Debug("seeded global category", "name", dc.Name)
	}

	return nil
}
