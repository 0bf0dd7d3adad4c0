package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type SnapshotRepository interface {
	Export(ctx context.Context) (*models.Snapshot, error)
	Restore(ctx context.Context, snapshot *models.RestoreSnapshot) error
}

type snapshotRepository struct {
	db     *sql.DB
	driver string
}

func NewSnapshotRepository(db *sql.DB, driver string) SnapshotRepository {
	return &snapshotRepository{db: db, driver: driver}
}

// Export reads all four tables into one document. No relative order inside a
// list is promised to consumers; the id scan order here is incidental.
func (r *snapshotRepository) Export(ctx context.Context) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{
		Categories: []models.Category{},
		People:     []models.Person{},
		Tasks:      []models.Task{},
		Notes:      []models.Note{},
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color, "order" FROM categories`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Order); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Categories = append(snapshot.Categories, c)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT id, name FROM people`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.People = append(snapshot.People, p)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT id, category_id, person_id, text, done, "order" FROM tasks`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.PersonID, &t.Text, &t.Done, &t.Order); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Tasks = append(snapshot.Tasks, t)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT id, task_id, date, COALESCE(content, '') FROM notes`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.TaskID, &n.Date, &n.Content); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Notes = append(snapshot.Notes, n)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Restore replaces the whole store with the document's records, keeping the
// document's ids so cross-references resolve by value. The caller has
// already validated required keys. Everything runs in one transaction:
// any failure rolls the store back to its pre-restore state.
//
// Delete order is children first (notes, tasks, people, categories);
// inserts run parent first. category_id/person_id/task_id values are
// trusted as-is, mirroring the export they came from.
func (r *snapshotRepository) Restore(ctx context.Context, snapshot *models.RestoreSnapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM notes`,
		`DELETE FROM tasks`,
		`DELETE FROM people`,
		`DELETE FROM categories`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: wipe: %v", models.ErrRestore, err)
		}
	}

	for i, c := range snapshot.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, color, "order") VALUES ($1, $2, $3, $4)`,
			*c.ID, *c.Name, *c.Color, c.Order); err != nil {
			return fmt.Errorf("%w: categories[%d]: %v", models.ErrRestore, i, err)
		}
	}
	for i, p := range snapshot.People {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO people (id, name) VALUES ($1, $2)`, *p.ID, *p.Name); err != nil {
			return fmt.Errorf("%w: people[%d]: %v", models.ErrRestore, i, err)
		}
	}
	for i, t := range snapshot.Tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, category_id, person_id, text, done, "order")
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			*t.ID, *t.CategoryID, t.PersonID, *t.Text, t.Done, t.Order); err != nil {
			return fmt.Errorf("%w: tasks[%d]: %v", models.ErrRestore, i, err)
		}
	}
	for i, n := range snapshot.Notes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes (id, task_id, date, content) VALUES ($1, $2, $3, $4)`,
			*n.ID, *n.TaskID, *n.Date, n.Content); err != nil {
			return fmt.Errorf("%w: notes[%d]: %v", models.ErrRestore, i, err)
		}
	}

	// Explicit ids bypass postgres sequences; advance them so normal
	// creation keeps minting fresh ids after the restore. SQLite keys its
	// next rowid off MAX(id) and needs nothing.
	if r.driver == "postgres" {
		for _, table := range []string{"categories", "people", "tasks", "notes"} {
			q := fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s`,
				table, table)
			if _, err := tx.ExecContext(ctx, q); err != nil {
				return fmt.Errorf("%w: resync %s sequence: %v", models.ErrRestore, table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", models.ErrRestore, err)
	}
	return nil
}
