package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeedDefaults(t *testing.T) {
	st := newTestStore(t)
	cats := &CategoryService{Store: st}
	ctx := context.Background()

	require.NoError(t, cats.SeedDefaults(ctx))

	visible, err := cats.VisibleTo(ctx, "any-user")
	require.NoError(t, err)
	require.Len(t, visible, 7)

	names := make(map[string]bool, len(visible))
	for _, c := range visible {
		require.True(t, c.IsGlobal)
		names[c.Name] = true
	}
	for _, want := range []string{"Food", "Transport", "Housing", "Health", "Entertainment", "Savings", "Others"} {
		require.True(t, names[want], "missing default category %q", want)
	}

	t.Run("idempotent on restart", func(t *testing.T) {
		require.NoError(t, cats.SeedDefaults(ctx))

		again, err := cats.VisibleTo(ctx, "any-user")
		require.NoError(t, err)
		require.Len(t, again, 7)
	})
}

func TestCategoryVisibility(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	cats := &CategoryService{Store: st}
	ctx := context.Background()

	require.NoError(t, cats.SeedDefaults(ctx))
	alice := registerUser(t, auth, "alice")
	bob := registerUser(t, auth, "bob")

	mine, err := cats.Create(ctx, alice.ID, "Travel", "trips and holidays")
	require.NoError(t, err)
	require.False(t, mine.IsGlobal)
	require.Equal(t, alice.ID, mine.UserID)

	t.Run("own set is globals plus personals", func(t *testing.T) {
		visible, err := cats.VisibleTo(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, visible, 8)
	})

	t.Run("personal categories do not leak", func(t *testing.T) {
		visible, err := cats.VisibleTo(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, visible, 7)
		for _, c := range visible {
			require.NotEqual(t, mine.ID, c.ID)
		}
	})
}

func TestCanAssign(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	cats := &CategoryService{Store: st}
	ctx := context.Background()

	require.NoError(t, cats.SeedDefaults(ctx))
	alice := registerUser(t, auth, "alice")
	bob := registerUser(t, auth, "bob")

	global, err := st.Categories().GetGlobalCategoryByName(ctx, "Food")
	require.NoError(t, err)

	personal, err := cats.Create(ctx, alice.ID, "Travel", "")
	require.NoError(t, err)

	t.Run("global assignable by everyone", func(t *testing.T) {
		require.NoError(t, cats.CanAssign(ctx, alice.ID, global.ID))
		require.NoError(t, cats.CanAssign(ctx, bob.ID, global.ID))
	})

	t.Run("own personal assignable", func(t *testing.T) {
		require.NoError(t, cats.CanAssign(ctx, alice.ID, personal.ID))
	})

	t.Run("foreign personal rejected", func(t *testing.T) {
		require.ErrorIs(t, cats.CanAssign(ctx, bob.ID, personal.ID), ErrScopeViolation)
	})

	t.Run("missing id rejected", func(t *testing.T) {
		require.ErrorIs(t, cats.CanAssign(ctx, alice.ID, "no-such-id"), ErrNotFound)
	})
}

func TestCategoryMutations(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	cats := &CategoryService{Store: st}
	ctx := context.Background()

	require.NoError(t, cats.SeedDefaults(ctx))
	alice := registerUser(t, auth, "alice")
	bob := registerUser(t, auth, "bob")

	global, err := st.Categories().GetGlobalCategoryByName(ctx, "Food")
	require.NoError(t, err)

	mine, err := cats.Create(ctx, alice.ID, "Travel", "")
	require.NoError(t, err)

	t.Run("owner can rename", func(t *testing.T) {
		updated, err := cats.Update(ctx, alice.ID, mine.ID, "Trips", "renamed")
		require.NoError(t, err)
		require.Equal(t, "Trips", updated.Name)
	})

	t.Run("globals are immutable", func(t *testing.T) {
		_, err := cats.Update(ctx, alice.ID, global.ID, "Meals", "")
		require.ErrorIs(t, err, ErrScopeViolation)

		require.ErrorIs(t, cats.Delete(ctx, alice.ID, global.ID), ErrScopeViolation)
	})

	t.Run("foreign personal looks missing", func(t *testing.T) {
		_, err := cats.Update(ctx, bob.ID, mine.ID, "Stolen", "")
		require.ErrorIs(t, err, ErrNotFound)

		require.ErrorIs(t, cats.Delete(ctx, bob.ID, mine.ID), ErrNotFound)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, cats.Delete(ctx, alice.ID, mine.ID))
		require.ErrorIs(t, cats.CanAssign(ctx, alice.ID, mine.ID), ErrNotFound)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := cats.Create(ctx, alice.ID, "   ", "")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestCategoryDeleteWithExpenses(t *testing.T) {
	st := newTestStore(t)
	auth := newTestAuth(t, st)
	cats := &CategoryService{Store: st}
	expenses := &ExpenseService{Store: st, Categories: cats}
	ctx := context.Background()

	alice := registerUser(t, auth, "alice")

	mine, err := cats.Create(ctx, alice.ID, "Travel", "")
	require.NoError(t, err)

	exp, err := expenses.Create(ctx, alice.ID, ExpenseInput{
		Description: "hotel",
		Amount:      12000,
		Date:        time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:  mine.ID,
	})
	require.NoError(t, err)

	t.Run("delete blocked while expenses remain", func(t *testing.T) {
		require.ErrorIs(t, cats.Delete(ctx, alice.ID, mine.ID), ErrInUse)
	})

	t.Run("delete succeeds once emptied", func(t *testing.T) {
		require.NoError(t, expenses.Delete(ctx, alice.ID, exp.ID))
		require.NoError(t, cats.Delete(ctx, alice.ID, mine.ID))
	})
}
