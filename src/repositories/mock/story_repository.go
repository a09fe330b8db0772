package mock

import (
	"context"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/google/uuid"
)

// StoryRepository is a mock implementation of repositories.StoryRepository
type StoryRepository struct {
	CreateFunc  func(ctx context.Context, story *models.Story) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.Story, error)
	ListFunc    func(ctx context.Context, activeOnly *bool) ([]*models.Story, error)
	UpdateFunc  func(ctx context.Context, story *models.Story) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ToggleFunc  func(ctx context.Context, id uuid.UUID) (*models.Story, error)

	Calls map[string][]interface{}
}

// NewStoryRepository creates a new mock story repository
func NewStoryRepository() *StoryRepository {
	return &StoryRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *StoryRepository) Create(ctx context.Context, story *models.Story) error {
	m.Calls["Create"] = append(m.Calls["Create"], story)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, story)
	}
	return nil
}

func (m *StoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, services.ErrNotFound
}

func (m *StoryRepository) List(ctx context.Context, activeOnly *bool) ([]*models.Story, error) {
	m.Calls["List"] = append(m.Calls["List"], activeOnly)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *StoryRepository) Update(ctx context.Context, story *models.Story) error {
	m.Calls["Update"] = append(m.Calls["Update"], story)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, story)
	}
	return nil
}

func (m *StoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *StoryRepository) Toggle(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	m.Calls["Toggle"] = append(m.Calls["Toggle"], id)
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, id)
	}
	return nil, services.ErrNotFound
}

// Ensure StoryRepository implements the interface
var _ repositories.StoryRepository = (*StoryRepository)(nil)
