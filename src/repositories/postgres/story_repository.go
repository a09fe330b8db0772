package postgres

import (
	"context"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StoryRepository is the PostgreSQL implementation of repositories.StoryRepository
type StoryRepository struct {
	pool *pgxpool.Pool
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(pool *pgxpool.Pool) *StoryRepository {
	return &StoryRepository{pool: pool}
}

const storyColumns = `id, title, type, url, thumbnail, duration, is_active, created_by, created_at, updated_at`

func scanStory(row pgx.Row) (*models.Story, error) {
	story := &models.Story{}
	var thumbnail *string
	err := row.Scan(
		&story.ID, &story.Title, &story.Type, &story.URL, &thumbnail,
		&story.Duration, &story.IsActive, &story.CreatedBy,
		&story.CreatedAt, &story.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if thumbnail != nil {
		story.Thumbnail = *thumbnail
	}
	return story, nil
}

// Create inserts a new story
func (r *StoryRepository) Create(ctx context.Context, story *models.Story) error {
	query := `
		INSERT INTO stories (id, title, type, url, thumbnail, duration, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		story.ID, story.Title, story.Type, story.URL, story.Thumbnail,
		story.Duration, story.IsActive, story.CreatedBy, story.CreatedAt, story.UpdatedAt,
	)
	return mapError(err)
}

// GetByID retrieves a story by id
func (r *StoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories WHERE id = $1`
	story, err := scanStory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return story, nil
}

// List returns stories, newest first, optionally filtered on is_active
func (r *StoryRepository) List(ctx context.Context, activeOnly *bool) ([]*models.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories`
	var args []interface{}
	if activeOnly != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *activeOnly)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var stories []*models.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

// Update persists all mutable story fields and bumps updated_at
func (r *StoryRepository) Update(ctx context.Context, story *models.Story) error {
	query := `
		UPDATE stories SET
			title = $1, type = $2, url = $3, thumbnail = NULLIF($4, ''),
			duration = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`
	result, err := r.pool.Exec(ctx, query,
		story.Title, story.Type, story.URL, story.Thumbnail,
		story.Duration, story.IsActive, story.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

// Delete removes a story
func (r *StoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

// Toggle flips is_active and returns the updated story
func (r *StoryRepository) Toggle(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	query := `
		UPDATE stories SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + storyColumns
	story, err := scanStory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return story, nil
}

// Ensure StoryRepository implements the interface
var _ repositories.StoryRepository = (*StoryRepository)(nil)
