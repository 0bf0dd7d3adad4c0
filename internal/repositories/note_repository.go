package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type NoteRepository interface {
	Upsert(ctx context.Context, taskID int64, date, content string) (*models.Note, error)
	FindByRange(ctx context.Context, rng models.NoteRange) ([]models.Note, error)
	FindAll(ctx context.Context) ([]models.Note, error)
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Upsert keeps the (task, date) invariant: an existing note for the pair is
// overwritten in place and keeps its id, otherwise a fresh note is created.
// The whole look-up-then-write runs in one transaction; a unique index on
// (task_id, date) backs the invariant at the storage layer too. The task
// must exist — a dangling task_id fails with NotFound.
func (r *noteRepository) Upsert(ctx context.Context, taskID int64, date, content string) (*models.Note, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM tasks WHERE id = $1`, taskID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %d: %w", taskID, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	note := &models.Note{TaskID: taskID, Date: date, Content: content}
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM notes WHERE task_id = $1 AND date = $2`, taskID, date,
	).Scan(&note.ID)
	switch {
	case err == sql.ErrNoRows:
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO notes (task_id, date, content) VALUES ($1, $2, $3) RETURNING id`,
			taskID, date, content,
		).Scan(&note.ID); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE notes SET content = $1 WHERE id = $2`, content, note.ID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return note, nil
}

// FindByRange returns notes inside [start, end], both inclusive. The date
// column is fixed-width YYYY-MM-DD, so string comparison is chronological.
// With either bound missing the result is unfiltered.
func (r *noteRepository) FindByRange(ctx context.Context, rng models.NoteRange) ([]models.Note, error) {
	query := `SELECT id, task_id, date, COALESCE(content, '') FROM notes`
	args := []interface{}{}
	if rng.Start != nil && rng.End != nil {
		query += ` WHERE date >= $1 AND date <= $2`
		args = append(args, *rng.Start, *rng.End)
	}
	query += ` ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.TaskID, &n.Date, &n.Content); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepository) FindAll(ctx context.Context) ([]models.Note, error) {
	return r.FindByRange(ctx, models.NoteRange{})
}
