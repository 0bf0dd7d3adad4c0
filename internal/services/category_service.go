package services

import (
	"context"
	"fmt"
	"strings"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// CategoryService owns category lifecycle rules: new categories append at
// the end of the board, updates are partial, deletion cascades.
type CategoryService interface {
	Create(ctx context.Context, name, color string) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id int64, update models.CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, name, color string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name is required", models.ErrValidation)
	}
	if strings.TrimSpace(color) == "" {
		return nil, fmt.Errorf("%w: category color is required", models.ErrValidation)
	}
	category := &models.Category{Name: name, Color: color}
	if err := s.repo.Store(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

// Update applies only the fields present in the request; absent fields keep
// their current value. Writing to order is how explicit reordering happens;
// siblings are never renumbered.
func (s *categoryService) Update(ctx context.Context, id int64, update models.CategoryUpdate) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: category name cannot be empty", models.ErrValidation)
		}
		category.Name = *update.Name
	}
	if update.Color != nil {
		category.Color = *update.Color
	}
	if update.Order != nil {
		category.Order = *update.Order
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
