package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type PersonRepository interface {
	Store(ctx context.Context, person *models.Person) error
	FindByID(ctx context.Context, id int64) (*models.Person, error)
	FindAll(ctx context.Context) ([]models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id int64) error
}

type personRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Store(ctx context.Context, person *models.Person) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO people (name) VALUES ($1) RETURNING id`,
		person.Name,
	).Scan(&person.ID)
}

func (r *personRepository) FindByID(ctx context.Context, id int64) (*models.Person, error) {
	person := &models.Person{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM people WHERE id = $1`, id,
	).Scan(&person.ID, &person.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("person %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return person, nil
}

func (r *personRepository) FindAll(ctx context.Context) ([]models.Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM people ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *personRepository) Update(ctx context.Context, person *models.Person) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE people SET name = $1 WHERE id = $2`, person.Name, person.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("person %d: %w", person.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes the person and clears the person reference on any task
// pointing at them. Tasks themselves survive; only the assignment goes.
func (r *personRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE tasks SET person_id = NULL WHERE person_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("person %d: %w", id, models.ErrNotFound)
	}
	return tx.Commit()
}
