package mock

import (
	"context"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/google/uuid"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc              func(ctx context.Context, admin *models.AdminUser) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	GetActiveByUsernameFunc func(ctx context.Context, username string) (*models.AdminUser, error)
	ListFunc                func(ctx context.Context) ([]*models.AdminUser, error)
	UpdateFunc              func(ctx context.Context, admin *models.AdminUser) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	UpdateLastLoginFunc     func(ctx context.Context, id uuid.UUID, at time.Time) error
	CountFunc               func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, services.ErrNotFound
}

func (m *AdminRepository) GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	m.Calls["GetActiveByUsername"] = append(m.Calls["GetActiveByUsername"], username)
	if m.GetActiveByUsernameFunc != nil {
		return m.GetActiveByUsernameFunc(ctx, username)
	}
	return nil, services.ErrNotFound
}

func (m *AdminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *AdminRepository) Update(ctx context.Context, admin *models.AdminUser) error {
	m.Calls["Update"] = append(m.Calls["Update"], admin)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, admin)
	}
	return nil
}

func (m *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	m.Calls["UpdateLastLogin"] = append(m.Calls["UpdateLastLogin"], id)
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (m *AdminRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
