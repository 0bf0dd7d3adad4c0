package services

import (
	"context"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// BoardService assembles the initial-state document for the matrix UI:
// categories in board order, each with its tasks in sibling order, plus all
// people for the assignee selects.
type BoardService interface {
	State(ctx context.Context) (*models.BoardState, error)
}

type boardService struct {
	categories repositories.CategoryRepository
	tasks      repositories.TaskRepository
	people     repositories.PersonRepository
}

func NewBoardService(
	categories repositories.CategoryRepository,
	tasks repositories.TaskRepository,
	people repositories.PersonRepository,
) BoardService {
	return &boardService{categories: categories, tasks: tasks, people: people}
}

func (s *boardService) State(ctx context.Context) (*models.BoardState, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	people, err := s.people.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]models.Task, len(categories))
	for _, t := range tasks {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t)
	}

	state := &models.BoardState{
		Categories: make([]models.CategoryWithTasks, 0, len(categories)),
		People:     people,
	}
	if state.People == nil {
		state.People = []models.Person{}
	}
	for _, c := range categories {
		embedded := byCategory[c.ID]
		if embedded == nil {
			embedded = []models.Task{}
		}
		state.Categories = append(state.Categories, models.CategoryWithTasks{
			Category: c,
			Tasks:    embedded,
		})
	}
	return state, nil
}
