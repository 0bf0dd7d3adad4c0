package services

import (
	"context"
	"fmt"
	"strings"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

type PersonService interface {
	Create(ctx context.Context, name string) (*models.Person, error)
	GetAll(ctx context.Context) ([]models.Person, error)
	Update(ctx context.Context, id int64, update models.PersonUpdate) (*models.Person, error)
	Delete(ctx context.Context, id int64) error
}

type personService struct {
	repo repositories.PersonRepository
}

func NewPersonService(repo repositories.PersonRepository) PersonService {
	return &personService{repo: repo}
}

func (s *personService) Create(ctx context.Context, name string) (*models.Person, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: person name is required", models.ErrValidation)
	}
	person := &models.Person{Name: name}
	if err := s.repo.Store(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *personService) GetAll(ctx context.Context) ([]models.Person, error) {
	return s.repo.FindAll(ctx)
}

func (s *personService) Update(ctx context.Context, id int64, update models.PersonUpdate) (*models.Person, error) {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: person name cannot be empty", models.ErrValidation)
		}
		person.Name = *update.Name
	}
	if err := s.repo.Update(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// Delete detaches the person from their tasks rather than deleting them;
// the repository handles both in one transaction.
func (s *personService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
