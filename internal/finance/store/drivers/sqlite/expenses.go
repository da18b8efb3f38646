package sqlite

import (
	"context"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
)

type expensesRepo struct {
	db dbtx
}

const expenseColumns = `id, description, amount, date, user_id, category_id, created_at, updated_at`

func scanExpense(row interface{ Scan(...any) error }) (domain.Expense, error) {
	var e domain.Expense
	var date string
	err := row.Scan(
		&e.ID,
		&e.Description,
		&e.Amount,
		&date,
		&e.UserID,
		&e.CategoryID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return domain.Expense{}, err
	}
	e.Date = parseDate(date)
	return e, nil
}

func (r *expensesRepo) GetExpense(ctx context.Context, id string) (domain.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	e, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, mapNotFound(err)
	}
	return e, nil
}

func (r *expensesRepo) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE user_id = ?
		 ORDER BY date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expensesRepo) CreateExpense(ctx context.Context, e domain.Expense) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, description, amount, date, user_id, category_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Description,
		e.Amount,
		formatDate(e.Date),
		e.UserID,
		e.CategoryID,
		now,
		now,
	)
	// A FK failure here means the category (or user) vanished between the
	// scope check and the insert.
	if isForeignKeyViolation(err) {
		return store.ErrNotFound
	}
	return err
}

func (r *expensesRepo) UpdateExpense(ctx context.Context, e domain.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, date = ?, category_id = ?, updated_at = ?
		 WHERE id = ?`,
		e.Description,
		e.Amount,
		formatDate(e.Date),
		e.CategoryID,
		time.Now().UTC(),
		e.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrNotFound
		}
		return err
	}
	return requireRow(res)
}

func (r *expensesRepo) DeleteExpense(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *expensesRepo) DeleteUserExpenses(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE user_id = ?`, userID)
	return err
}

func (r *expensesRepo) SumExpenses(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ?`, userID).Scan(&total)
	return total, err
}
