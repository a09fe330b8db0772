package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/chemical081/nepali-star-buzz-pulse/src/database"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
)

func testPost(title, category string, status models.PostStatus) *models.Post {
	now := time.Now()
	return &models.Post{
		ID:       uuid.New(),
		Title:    title,
		TitleNp:  title + " (np)",
		Excerpt:  "excerpt",
		Category: category,
		Author:   "newsdesk",
		Status:   status,
		Content: []models.ContentBlock{
			{ID: "b1", Type: "text", Content: "body", Order: 1},
		},
		Images: []models.PostImage{
			{ID: "i1", URL: "https://cdn.example.com/a.jpg", Alt: "a", Position: "header", Order: 1},
		},
		PublishedAt: now,
		UpdatedAt:   now,
	}
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewPostRepository(tdb.Pool)
		ctx := context.Background()

		post := testPost("Festival gossip", "gossips", models.PostStatusPublished)
		if err := repo.Create(ctx, post); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, post.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Title != post.Title || got.Category != "gossips" {
			t.Errorf("round-trip mismatch: %s / %s", got.Title, got.Category)
		}
		if len(got.Content) != 1 || got.Content[0].Type != "text" {
			t.Errorf("expected content blocks to round-trip, got %v", got.Content)
		}
		if len(got.Images) != 1 || got.Images[0].Position != "header" {
			t.Errorf("expected images to round-trip, got %v", got.Images)
		}
	})
}

func TestPostRepository_ListFilters(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewPostRepository(tdb.Pool)
		ctx := context.Background()

		for _, p := range []*models.Post{
			testPost("published movie", "movies", models.PostStatusPublished),
			testPost("draft movie", "movies", models.PostStatusDraft),
			testPost("published gossip", "gossips", models.PostStatusPublished),
		} {
			if err := repo.Create(ctx, p); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		published, err := repo.List(ctx, models.PostFilter{Status: models.PostStatusPublished})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(published) != 2 {
			t.Errorf("expected 2 published posts, got %d", len(published))
		}

		movies, err := repo.List(ctx, models.PostFilter{Category: "movies"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(movies) != 2 {
			t.Errorf("expected 2 movie posts, got %d", len(movies))
		}

		both, err := repo.List(ctx, models.PostFilter{
			Status:   models.PostStatusPublished,
			Category: "movies",
		})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(both) != 1 {
			t.Errorf("expected 1 published movie post, got %d", len(both))
		}
	})
}

func TestPostRepository_PinnedFirst(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewPostRepository(tdb.Pool)
		ctx := context.Background()

		older := testPost("older pinned", "gossips", models.PostStatusPublished)
		older.IsPinned = true
		if err := repo.Create(ctx, older); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		newer := testPost("newer unpinned", "gossips", models.PostStatusPublished)
		if err := repo.Create(ctx, newer); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		posts, err := repo.List(ctx, models.PostFilter{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(posts))
		}
		if !posts[0].IsPinned {
			t.Error("expected the pinned post to sort first")
		}
	})
}

func TestPostRepository_Counters(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewPostRepository(tdb.Pool)
		ctx := context.Background()

		post := testPost("liked post", "music", models.PostStatusPublished)
		if err := repo.Create(ctx, post); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		for want := 1; want <= 3; want++ {
			got, err := repo.IncrementLikes(ctx, post.ID)
			if err != nil {
				t.Fatalf("IncrementLikes failed: %v", err)
			}
			if got != want {
				t.Errorf("expected like count %d, got %d", want, got)
			}
		}

		count, err := repo.IncrementComments(ctx, post.ID)
		if err != nil {
			t.Fatalf("IncrementComments failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected comment count 1, got %d", count)
		}

		if _, err := repo.IncrementLikes(ctx, uuid.New()); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unknown post, got %v", err)
		}
	})
}
