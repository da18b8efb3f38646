package sqlite

import (
	"context"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
)

type incomesRepo struct {
	db dbtx
}

const incomeColumns = `id, description, amount, date, user_id, created_at, updated_at`

func scanIncome(row interface{ Scan(...any) error }) (domain.Income, error) {
	var i domain.Income
	var date string
	err := row.Scan(
		&i.ID,
		&i.Description,
		&i.Amount,
		&date,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return domain.Income{}, err
	}
	i.Date = parseDate(date)
	return i, nil
}

func (r *incomesRepo) GetIncome(ctx context.Context, id string) (domain.Income, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE id = ?`, id)
	i, err := scanIncome(row)
	if err != nil {
		return domain.Income{}, mapNotFound(err)
	}
	return i, nil
}

func (r *incomesRepo) ListIncomes(ctx context.Context, userID string) ([]domain.Income, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+incomeColumns+` FROM incomes
		 WHERE user_id = ?
		 ORDER BY date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Income
	for rows.Next() {
		i, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *incomesRepo) CreateIncome(ctx context.Context, i domain.Income) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO incomes (id, description, amount, date, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		i.ID,
		i.Description,
		i.Amount,
		formatDate(i.Date),
		i.UserID,
		now,
		now,
	)
	return err
}

func (r *incomesRepo) UpdateIncome(ctx context.Context, i domain.Income) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE incomes SET description = ?, amount = ?, date = ?, updated_at = ?
		 WHERE id = ?`,
		i.Description,
		i.Amount,
		formatDate(i.Date),
		time.Now().UTC(),
		i.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *incomesRepo) DeleteIncome(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *incomesRepo) DeleteUserIncomes(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE user_id = ?`, userID)
	return err
}

func (r *incomesRepo) SumIncomes(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE user_id = ?`, userID).Scan(&total)
	return total, err
}
