package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type CategoryRepository interface {
	Store(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Store inserts the category at the end of the board: order becomes one more
// than the current maximum. The max read and the insert share a transaction
// so two creates cannot mint the same order.
func (r *categoryRepository) Store(ctx context.Context, category *models.Category) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var maxOrder int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX("order"), 0) FROM categories`).Scan(&maxOrder); err != nil {
		return err
	}
	category.Order = maxOrder + 1

	if err := tx.QueryRowContext(ctx,
		`INSERT INTO categories (name, color, "order") VALUES ($1, $2, $3) RETURNING id`,
		category.Name, category.Color, category.Order,
	).Scan(&category.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	category := &models.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, color, "order" FROM categories WHERE id = $1`, id,
	).Scan(&category.ID, &category.Name, &category.Color, &category.Order)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

// FindAll returns every category sorted by its order key, id as tie-break.
// Orders may carry gaps and ties after explicit reordering.
func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color, "order" FROM categories ORDER BY "order" ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Order); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, color = $2, "order" = $3 WHERE id = $4`,
		category.Name, category.Color, category.Order, category.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("category %d: %w", category.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes the category together with its tasks and their notes,
// children first, in one transaction.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM notes WHERE task_id IN (SELECT id FROM tasks WHERE category_id = $1)`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tasks WHERE category_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("category %d: %w", id, models.ErrNotFound)
	}
	return tx.Commit()
}
