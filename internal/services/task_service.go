package services

import (
	"context"
	"fmt"
	"strings"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// TaskService owns task lifecycle rules. Creation appends at the end of the
// task's category; the person reference is written without an existence
// check, matching the lenient contract of the rest of the system (deleting
// a person clears the reference, so normal operation never dangles).
type TaskService interface {
	Create(ctx context.Context, categoryID int64, text string, personID *int64) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Update(ctx context.Context, id int64, update models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	repo repositories.TaskRepository
}

func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, categoryID int64, text string, personID *int64) (*models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: task text is required", models.ErrValidation)
	}
	if len(text) > models.MaxTaskTextLen {
		return nil, fmt.Errorf("%w: task text exceeds %d characters", models.ErrValidation, models.MaxTaskTextLen)
	}
	task := &models.Task{CategoryID: categoryID, PersonID: personID, Text: text}
	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies only the fields present in the request. PersonID carries
// three states: absent (keep), null (unassign), value (assign as given).
func (s *taskService) Update(ctx context.Context, id int64, update models.TaskUpdate) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Text != nil {
		if strings.TrimSpace(*update.Text) == "" {
			return nil, fmt.Errorf("%w: task text cannot be empty", models.ErrValidation)
		}
		if len(*update.Text) > models.MaxTaskTextLen {
			return nil, fmt.Errorf("%w: task text exceeds %d characters", models.ErrValidation, models.MaxTaskTextLen)
		}
		task.Text = *update.Text
	}
	if update.Done != nil {
		task.Done = *update.Done
	}
	if update.PersonID != nil {
		task.PersonID = *update.PersonID
	}
	if update.Order != nil {
		task.Order = *update.Order
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
