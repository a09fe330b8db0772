package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostRepository is the PostgreSQL implementation of repositories.PostRepository
type PostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository creates a new post repository
func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, title, title_np, excerpt, excerpt_np, content, content_np, category, images, author, is_pinned, likes, comments, status, created_by, created_at, updated_at`

func scanPost(row pgx.Row) (*models.Post, error) {
	post := &models.Post{}
	var content, contentNp, images []byte
	err := row.Scan(
		&post.ID, &post.Title, &post.TitleNp, &post.Excerpt, &post.ExcerptNp,
		&content, &contentNp, &post.Category, &images, &post.Author,
		&post.IsPinned, &post.Likes, &post.Comments, &post.Status,
		&post.CreatedBy, &post.PublishedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(content, &post.Content); err != nil {
		return nil, fmt.Errorf("failed to decode content blocks: %w", err)
	}
	if err := json.Unmarshal(contentNp, &post.ContentNp); err != nil {
		return nil, fmt.Errorf("failed to decode nepali content blocks: %w", err)
	}
	if err := json.Unmarshal(images, &post.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	return post, nil
}

func marshalPostJSON(post *models.Post) (content, contentNp, images []byte, err error) {
	if post.Content == nil {
		post.Content = []models.ContentBlock{}
	}
	if post.ContentNp == nil {
		post.ContentNp = []models.ContentBlock{}
	}
	if post.Images == nil {
		post.Images = []models.PostImage{}
	}
	if content, err = json.Marshal(post.Content); err != nil {
		return
	}
	if contentNp, err = json.Marshal(post.ContentNp); err != nil {
		return
	}
	images, err = json.Marshal(post.Images)
	return
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	content, contentNp, images, err := marshalPostJSON(post)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (id, title, title_np, excerpt, excerpt_np, content, content_np, category, images, author, is_pinned, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.pool.Exec(ctx, query,
		post.ID, post.Title, post.TitleNp, post.Excerpt, post.ExcerptNp,
		content, contentNp, post.Category, images, post.Author,
		post.IsPinned, post.Status, post.CreatedBy, post.PublishedAt, post.UpdatedAt,
	)
	return mapError(err)
}

// GetByID retrieves a post by id
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return post, nil
}

// List returns posts matching the filter, newest first, pinned posts leading
func (r *PostRepository) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	var args []interface{}
	var conditions []string

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY is_pinned DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update persists all mutable post fields and bumps updated_at
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	content, contentNp, images, err := marshalPostJSON(post)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts SET
			title = $1, title_np = $2, excerpt = $3, excerpt_np = $4,
			content = $5, content_np = $6, category = $7, images = $8,
			author = $9, is_pinned = $10, status = $11, updated_at = NOW()
		WHERE id = $12
	`
	result, err := r.pool.Exec(ctx, query,
		post.Title, post.TitleNp, post.Excerpt, post.ExcerptNp,
		content, contentNp, post.Category, images,
		post.Author, post.IsPinned, post.Status, post.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

// Delete removes a post
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

// IncrementLikes bumps the like counter and returns the new value
func (r *PostRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	var likes int
	err := r.pool.QueryRow(ctx, `
		UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes
	`, id).Scan(&likes)
	if err != nil {
		return 0, mapError(err)
	}
	return likes, nil
}

// IncrementComments bumps the comment counter and returns the new value
func (r *PostRepository) IncrementComments(ctx context.Context, id uuid.UUID) (int, error) {
	var comments int
	err := r.pool.QueryRow(ctx, `
		UPDATE posts SET comments = comments + 1 WHERE id = $1 RETURNING comments
	`, id).Scan(&comments)
	if err != nil {
		return 0, mapError(err)
	}
	return comments, nil
}

// Ensure PostRepository implements the interface
var _ repositories.PostRepository = (*PostRepository)(nil)
