package repositories

import (
	"context"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/google/uuid"
)

// AdminRepository defines the interface for admin identity data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	// GetActiveByUsername looks up among active identities only; inactive
	// identities are reported as not found.
	GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	List(ctx context.Context) ([]*models.AdminUser, error)
	Update(ctx context.Context, admin *models.AdminUser) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
	IncrementComments(ctx context.Context, id uuid.UUID) (int, error)
}

// StoryRepository defines the interface for story data access
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Story, error)
	// List returns all stories; when activeOnly is non-nil it filters on
	// is_active matching the pointed-to value.
	List(ctx context.Context, activeOnly *bool) ([]*models.Story, error)
	Update(ctx context.Context, story *models.Story) error
	Delete(ctx context.Context, id uuid.UUID) error
	Toggle(ctx context.Context, id uuid.UUID) (*models.Story, error)
}
