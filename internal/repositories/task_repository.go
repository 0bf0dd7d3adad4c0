package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Store inserts the task at the end of its category: order is one more than
// the current maximum among siblings, computed in the insert transaction.
// A missing category fails with NotFound before anything is written.
func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM categories WHERE id = $1`, task.CategoryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("category %d: %w", task.CategoryID, models.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var maxOrder int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX("order"), 0) FROM tasks WHERE category_id = $1`,
		task.CategoryID).Scan(&maxOrder); err != nil {
		return err
	}
	task.Order = maxOrder + 1

	if err := tx.QueryRowContext(ctx,
		`INSERT INTO tasks (category_id, person_id, text, done, "order")
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		task.CategoryID, task.PersonID, task.Text, task.Done, task.Order,
	).Scan(&task.ID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, category_id, person_id, text, done, "order" FROM tasks WHERE id = $1`, id,
	).Scan(&task.ID, &task.CategoryID, &task.PersonID, &task.Text, &task.Done, &task.Order)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return task, nil
}

// FindAll returns every task grouped by category and sorted by the sibling
// order key, id as tie-break.
func (r *taskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category_id, person_id, text, done, "order"
		 FROM tasks ORDER BY category_id ASC, "order" ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.PersonID, &t.Text, &t.Done, &t.Order); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update writes the mutable fields. The category reference is owning and
// never moves; person_id is written as-is, including NULL to unassign.
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET person_id = $1, text = $2, done = $3, "order" = $4 WHERE id = $5`,
		task.PersonID, task.Text, task.Done, task.Order, task.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", task.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes the task and its notes in one transaction.
func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE task_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, models.ErrNotFound)
	}
	return tx.Commit()
}
