package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/google/uuid"
)

// StoryService handles the stories strip CRUD
type StoryService struct {
	repo repositories.StoryRepository
}

// NewStoryService creates a new story service
func NewStoryService(repo repositories.StoryRepository) *StoryService {
	return &StoryService{repo: repo}
}

// StoryInput carries the writable fields of a story
type StoryInput struct {
	Title     string           `json:"title"`
	Type      models.StoryType `json:"type"`
	URL       string           `json:"url"`
	Thumbnail string           `json:"thumbnail"`
	Duration  *int             `json:"duration"`
	IsActive  *bool            `json:"is_active"`
}

func validateStory(in *StoryInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown story type %q", ErrValidation, in.Type)
	}
	if !isAbsoluteURL(in.URL) {
		return fmt.Errorf("%w: url must be a valid absolute URL", ErrValidation)
	}
	if in.Thumbnail != "" && !isAbsoluteURL(in.Thumbnail) {
		return fmt.Errorf("%w: thumbnail must be a valid absolute URL", ErrValidation)
	}
	// Video stories carry a play duration between 1 and 60 seconds
	if in.Type == models.StoryTypeVideo {
		if in.Duration == nil {
			return fmt.Errorf("%w: duration is required for video stories", ErrValidation)
		}
	}
	if in.Duration != nil && (*in.Duration < 1 || *in.Duration > 60) {
		return fmt.Errorf("%w: duration must be between 1 and 60 seconds", ErrValidation)
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Create creates a new story. Stories default to active.
func (s *StoryService) Create(ctx context.Context, actor *Claims, in StoryInput) (*models.Story, error) {
	if err := validateStory(&in); err != nil {
		return nil, err
	}

	creatorID, err := uuid.Parse(actor.AdminID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := time.Now()
	story := &models.Story{
		ID:        uuid.New(),
		Title:     in.Title,
		Type:      in.Type,
		URL:       in.URL,
		Thumbnail: in.Thumbnail,
		Duration:  in.Duration,
		IsActive:  isActive,
		CreatedBy: &creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// List returns stories, optionally filtered to active/inactive only
func (s *StoryService) List(ctx context.Context, activeOnly *bool) ([]*models.Story, error) {
	return s.repo.List(ctx, activeOnly)
}

// Update replaces a story's writable fields
func (s *StoryService) Update(ctx context.Context, id uuid.UUID, in StoryInput) (*models.Story, error) {
	if err := validateStory(&in); err != nil {
		return nil, err
	}

	story, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	story.Title = in.Title
	story.Type = in.Type
	story.URL = in.URL
	story.Thumbnail = in.Thumbnail
	story.Duration = in.Duration
	if in.IsActive != nil {
		story.IsActive = *in.IsActive
	}
	story.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// Delete removes a story
func (s *StoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Toggle flips a story's active flag and returns the updated story
func (s *StoryService) Toggle(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	return s.repo.Toggle(ctx, id)
}
