package sqlite

import (
	"context"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, full_name, birth_date, location, savings_goal, password_hash, created_at, updated_at`

func (r *usersRepo) scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	var birthDate string
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&birthDate,
		&u.Location,
		&u.SavingsGoal,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.BirthDate = parseDate(birthDate)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := r.scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByHandle(ctx context.Context, handle string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE full_name = ?`, handle)
	u, err := r.scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, full_name, birth_date, location, savings_goal, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.FullName,
		formatDate(u.BirthDate),
		u.Location,
		u.SavingsGoal,
		u.PasswordHash,
		now,
		now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateSavingsGoal(ctx context.Context, userID string, goal int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET savings_goal = ?, updated_at = ? WHERE id = ?`,
		goal, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}
