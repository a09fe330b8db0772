package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/content"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/google/uuid"
)

// PostService handles post CRUD and engagement counters
type PostService struct {
	repo       repositories.PostRepository
	categories *content.Registry
}

// NewPostService creates a new post service
func NewPostService(repo repositories.PostRepository, categories *content.Registry) *PostService {
	return &PostService{repo: repo, categories: categories}
}

// PostInput carries the writable fields of a post
type PostInput struct {
	Title     string                `json:"title"`
	TitleNp   string                `json:"title_np"`
	Excerpt   string                `json:"excerpt"`
	ExcerptNp string                `json:"excerpt_np"`
	Content   []models.ContentBlock `json:"content"`
	ContentNp []models.ContentBlock `json:"content_np"`
	Category  string                `json:"category"`
	Images    []models.PostImage    `json:"images"`
	Author    string                `json:"author"`
	IsPinned  bool                  `json:"is_pinned"`
	Status    models.PostStatus     `json:"status"`
}

var validBlockTypes = map[string]bool{
	"text": true, "image": true, "video": true, "quote": true, "heading": true,
}

var validImagePositions = map[string]bool{
	"header": true, "content": true, "gallery": true,
}

func (s *PostService) validate(in *PostInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Excerpt == "" {
		return fmt.Errorf("%w: excerpt is required", ErrValidation)
	}
	if in.Author == "" {
		return fmt.Errorf("%w: author is required", ErrValidation)
	}
	if !s.categories.IsValid(in.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if in.Status == "" {
		in.Status = models.PostStatusDraft
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	for _, blocks := range [][]models.ContentBlock{in.Content, in.ContentNp} {
		for _, block := range blocks {
			if !validBlockTypes[block.Type] {
				return fmt.Errorf("%w: unknown content block type %q", ErrValidation, block.Type)
			}
		}
	}
	for _, img := range in.Images {
		if !validImagePositions[img.Position] {
			return fmt.Errorf("%w: unknown image position %q", ErrValidation, img.Position)
		}
	}
	return nil
}

// Create creates a new post authored by the acting admin
func (s *PostService) Create(ctx context.Context, actor *Claims, in PostInput) (*models.Post, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	creatorID, err := uuid.Parse(actor.AdminID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	now := time.Now()
	post := &models.Post{
		ID:          uuid.New(),
		Title:       in.Title,
		TitleNp:     in.TitleNp,
		Excerpt:     in.Excerpt,
		ExcerptNp:   in.ExcerptNp,
		Content:     in.Content,
		ContentNp:   in.ContentNp,
		Category:    in.Category,
		Images:      in.Images,
		Author:      in.Author,
		IsPinned:    in.IsPinned,
		Status:      in.Status,
		CreatedBy:   &creatorID,
		PublishedAt: now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get returns one post
func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns posts matching the filter
func (s *PostService) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// Update replaces a post's writable fields
func (s *PostService) Update(ctx context.Context, id uuid.UUID, in PostInput) (*models.Post, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.TitleNp = in.TitleNp
	post.Excerpt = in.Excerpt
	post.ExcerptNp = in.ExcerptNp
	post.Content = in.Content
	post.ContentNp = in.ContentNp
	post.Category = in.Category
	post.Images = in.Images
	post.Author = in.Author
	post.IsPinned = in.IsPinned
	post.Status = in.Status
	post.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Like bumps a post's like counter and returns the new count
func (s *PostService) Like(ctx context.Context, id uuid.UUID) (int, error) {
	return s.repo.IncrementLikes(ctx, id)
}

// Comment bumps a post's comment counter and returns the new count
func (s *PostService) Comment(ctx context.Context, id uuid.UUID) (int, error) {
	return s.repo.IncrementComments(ctx, id)
}
