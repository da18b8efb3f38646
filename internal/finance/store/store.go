package store

import (
	"context"
	"errors"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrInUse         = errors.New("store: still referenced")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Categories() Categories
	Expenses() Expenses
	Incomes() Incomes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error, the
	// transaction is rolled back; otherwise it is committed. This is the
	// recommended way to run multi-step writes that must be atomic (e.g.
	// account deletion with its dependent rows).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByHandle looks a user up by login handle. Used during login
	// and on every token resolution.
	GetUserByHandle(ctx context.Context, handle string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A duplicate handle reports ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateSavingsGoal sets the savings goal (cents) and bumps updated_at.
	UpdateSavingsGoal(ctx context.Context, userID string, goal int64) error

	// DeleteUser removes the user row only. Dependent rows are deleted
	// explicitly beforehand inside the same transaction.
	DeleteUser(ctx context.Context, userID string) error
}

type Categories interface {
	// GetCategory returns a category by id regardless of scope; scope
	// decisions belong to the service layer.
	GetCategory(ctx context.Context, id string) (domain.Category, error)

	// GetGlobalCategoryByName is used by idempotent seeding.
	GetGlobalCategoryByName(ctx context.Context, name string) (domain.Category, error)

	// ListVisibleCategories returns the union of global categories and the
	// user's own, ordered by name.
	ListVisibleCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// CreateCategory inserts a category. The caller has already fixed
	// IsGlobal/UserID; untrusted input never reaches these fields.
	CreateCategory(ctx context.Context, c domain.Category) error

	// UpdateCategory rewrites name and description, bumps updated_at.
	UpdateCategory(ctx context.Context, id, name, description string) error

	// DeleteCategory removes a single category.
	DeleteCategory(ctx context.Context, id string) error

	// DeleteUserCategories removes all personal categories of a user.
	DeleteUserCategories(ctx context.Context, userID string) error
}

type Expenses interface {
	GetExpense(ctx context.Context, id string) (domain.Expense, error)

	// ListExpenses returns all expenses owned by the user, newest date first.
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)

	CreateExpense(ctx context.Context, e domain.Expense) error

	// UpdateExpense rewrites the mutable fields, bumps updated_at.
	UpdateExpense(ctx context.Context, e domain.Expense) error

	DeleteExpense(ctx context.Context, id string) error

	// DeleteUserExpenses removes all expenses of a user.
	DeleteUserExpenses(ctx context.Context, userID string) error

	// SumExpenses totals the user's expense amounts in cents; 0 when none.
	SumExpenses(ctx context.Context, userID string) (int64, error)
}

type Incomes interface {
	GetIncome(ctx context.Context, id string) (domain.Income, error)

	// ListIncomes returns all incomes owned by the user, newest date first.
	ListIncomes(ctx context.Context, userID string) ([]domain.Income, error)

	CreateIncome(ctx context.Context, i domain.Income) error

	UpdateIncome(ctx context.Context, i domain.Income) error

	DeleteIncome(ctx context.Context, id string) error

	// DeleteUserIncomes removes all incomes of a user.
	DeleteUserIncomes(ctx context.Context, userID string) error

	// SumIncomes totals the user's income amounts in cents; 0 when none.
	SumIncomes(ctx context.Context, userID string) (int64, error)
}
