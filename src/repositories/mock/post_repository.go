package mock

import (
	"context"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/google/uuid"
)

// PostRepository is a mock implementation of repositories.PostRepository
type PostRepository struct {
	CreateFunc            func(ctx context.Context, post *models.Post) error
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListFunc              func(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	UpdateFunc            func(ctx context.Context, post *models.Post) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	IncrementLikesFunc    func(ctx context.Context, id uuid.UUID) (int, error)
	IncrementCommentsFunc func(ctx context.Context, id uuid.UUID) (int, error)

	Calls map[string][]interface{}
}

// NewPostRepository creates a new mock post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *PostRepository) Create(ctx context.Context, post *models.Post) error {
	m.Calls["Create"] = append(m.Calls["Create"], post)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, services.ErrNotFound
}

func (m *PostRepository) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	m.Calls["List"] = append(m.Calls["List"], filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *PostRepository) Update(ctx context.Context, post *models.Post) error {
	m.Calls["Update"] = append(m.Calls["Update"], post)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *PostRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	m.Calls["IncrementLikes"] = append(m.Calls["IncrementLikes"], id)
	if m.IncrementLikesFunc != nil {
		return m.IncrementLikesFunc(ctx, id)
	}
	return 0, services.ErrNotFound
}

func (m *PostRepository) IncrementComments(ctx context.Context, id uuid.UUID) (int, error) {
	m.Calls["IncrementComments"] = append(m.Calls["IncrementComments"], id)
	if m.IncrementCommentsFunc != nil {
		return m.IncrementCommentsFunc(ctx, id)
	}
	return 0, services.ErrNotFound
}

// Ensure PostRepository implements the interface
var _ repositories.PostRepository = (*PostRepository)(nil)
