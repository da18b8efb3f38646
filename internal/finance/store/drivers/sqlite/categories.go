package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
)

type categoriesRepo struct {
	db dbtx
}

const categoryColumns = `id, name, description, is_global, user_id, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (domain.Category, error) {
	var c domain.Category
	var description, userID sql.NullString
	err := row.Scan(
		&c.ID,
		&c.Name,
		&description,
		&c.IsGlobal,
		&userID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Category{}, err
	}
	c.Description = mapNullString(description)
	c.UserID = mapNullString(userID)
	return c, nil
}

func (r *categoriesRepo) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) GetGlobalCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE is_global = 1 AND name = ?`, name)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) ListVisibleCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE is_global = 1 OR user_id = ?
		 ORDER BY name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description, is_global, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.Name,
		mapStringNull(c.Description),
		c.IsGlobal,
		mapStringNull(c.UserID),
		now,
		now,
	)
	return mapConstraint(err)
}

func (r *categoriesRepo) UpdateCategory(ctx context.Context, id, name, description string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		name, mapStringNull(description), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrInUse
		}
		return err
	}
	return requireRow(res)
}

func (r *categoriesRepo) DeleteUserCategories(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE user_id = ?`, userID)
	return err
}
