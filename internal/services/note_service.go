package services

import (
	"context"
	"fmt"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// NoteService fronts the note upsert engine. Upsert is idempotent by
// construction: re-sending the same (task, date, content) is safe and
// converges on the same single note.
type NoteService interface {
	Upsert(ctx context.Context, taskID int64, date, content string) (*models.Note, error)
	List(ctx context.Context, rng models.NoteRange) ([]models.Note, error)
}

type noteService struct {
	repo repositories.NoteRepository
}

func NewNoteService(repo repositories.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) Upsert(ctx context.Context, taskID int64, date, content string) (*models.Note, error) {
	if taskID <= 0 {
		return nil, fmt.Errorf("%w: task_id is required", models.ErrValidation)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, taskID, date, content)
}

func (s *noteService) List(ctx context.Context, rng models.NoteRange) ([]models.Note, error) {
	if rng.Start != nil && rng.End != nil {
		if err := validateDate(*rng.Start); err != nil {
			return nil, err
		}
		if err := validateDate(*rng.End); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByRange(ctx, rng)
}

func validateDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", models.ErrValidation, date)
	}
	return nil
}
