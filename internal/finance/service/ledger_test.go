package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
)

type ledgerFixture struct {
	ledger   *LedgerService
	expenses *ExpenseService
	incomes  *IncomeService
	users    *UserService
	alice    domain.User
	food     domain.Category
}

func newLedgerFixture(t *testing.T) ledgerFixture {
	t.Helper()
	ctx := context.Background()

	st := newTestStore(t)
	auth := newTestAuth(t, st)
	cats := &CategoryService{Store: st}
	require.NoError(t, cats.SeedDefaults(ctx))

	alice := registerUser(t, auth, "alice")

	food, err := st.Categories().GetGlobalCategoryByName(ctx, "Food")
	require.NoError(t, err)

	return ledgerFixture{
		ledger:   &LedgerService{Store: st},
		expenses: &ExpenseService{Store: st, Categories: cats},
		incomes:  &IncomeService{Store: st},
		users:    &UserService{Store: st},
		alice:    alice,
		food:     food,
	}
}

func (f *ledgerFixture) spend(t *testing.T, cents int64) {
	t.Helper()
	_, err := f.expenses.Create(context.Background(), f.alice.ID, ExpenseInput{
		Description: "spend",
		Amount:      cents,
		Date:        time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:  f.food.ID,
	})
	require.NoError(t, err)
}

func (f *ledgerFixture) earn(t *testing.T, cents int64) {
	t.Helper()
	_, err := f.incomes.Create(context.Background(), f.alice.ID, IncomeInput{
		Description: "earn",
		Amount:      cents,
		Date:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestBalance(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	t.Run("all zero with no records", func(t *testing.T) {
		sheet, err := f.ledger.Balance(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Equal(t, int64(0), sheet.TotalIncome)
		require.Equal(t, int64(0), sheet.TotalExpense)
		require.Equal(t, int64(0), sheet.Balance)
	})

	f.earn(t, 50000)
	f.earn(t, 25000)
	f.spend(t, 20000)

	t.Run("balance is income minus expense", func(t *testing.T) {
		sheet, err := f.ledger.Balance(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Equal(t, int64(75000), sheet.TotalIncome)
		require.Equal(t, int64(20000), sheet.TotalExpense)
		require.Equal(t, sheet.TotalIncome-sheet.TotalExpense, sheet.Balance)
	})

	t.Run("balance can go negative", func(t *testing.T) {
		f.spend(t, 90000)

		sheet, err := f.ledger.Balance(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Equal(t, int64(-35000), sheet.Balance)
	})
}

func TestSavings(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	// alice's registered goal is 100000 cents
	f.earn(t, 50000)
	f.spend(t, 20000)

	t.Run("progress against the goal", func(t *testing.T) {
		report, err := f.ledger.Savings(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Equal(t, int64(100000), report.SavingsGoal)
		require.Equal(t, int64(30000), report.Balance)
		require.InDelta(t, 30.0, report.Progress, 1e-9)
	})

	t.Run("zero goal yields zero progress", func(t *testing.T) {
		require.NoError(t, f.users.UpdateSavingsGoal(ctx, f.alice.ID, 0))

		report, err := f.ledger.Savings(ctx, f.alice.ID)
		require.NoError(t, err)
		require.InDelta(t, 0.0, report.Progress, 1e-9)
	})

	t.Run("zero goal with negative balance still zero", func(t *testing.T) {
		f.spend(t, 90000)

		report, err := f.ledger.Savings(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Negative(t, report.Balance)
		require.InDelta(t, 0.0, report.Progress, 1e-9)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.ledger.Savings(ctx, "no-such-user")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
