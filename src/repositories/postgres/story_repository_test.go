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

func testStory(title string, active bool) *models.Story {
	now := time.Now()
	return &models.Story{
		ID:        uuid.New(),
		Title:     title,
		Type:      models.StoryTypeImage,
		URL:       "https://cdn.example.com/stories/a.jpg",
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStoryRepository_CreateAndGet(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewStoryRepository(tdb.Pool)
		ctx := context.Background()

		duration := 30
		story := testStory("premiere clip", true)
		story.Type = models.StoryTypeVideo
		story.URL = "https://cdn.example.com/stories/a.mp4"
		story.Thumbnail = "https://cdn.example.com/stories/a.jpg"
		story.Duration = &duration

		if err := repo.Create(ctx, story); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, story.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Type != models.StoryTypeVideo {
			t.Errorf("expected video story, got %s", got.Type)
		}
		if got.Duration == nil || *got.Duration != 30 {
			t.Errorf("expected duration 30, got %v", got.Duration)
		}
		if got.Thumbnail == "" {
			t.Error("expected thumbnail to round-trip")
		}
	})
}

func TestStoryRepository_ListActiveOnly(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewStoryRepository(tdb.Pool)
		ctx := context.Background()

		if err := repo.Create(ctx, testStory("active one", true)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := repo.Create(ctx, testStory("hidden one", false)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		all, err := repo.List(ctx, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("expected 2 stories without filter, got %d", len(all))
		}

		activeOnly := true
		active, err := repo.List(ctx, &activeOnly)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(active) != 1 || !active[0].IsActive {
			t.Errorf("expected 1 active story, got %d", len(active))
		}
	})
}

func TestStoryRepository_Toggle(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewStoryRepository(tdb.Pool)
		ctx := context.Background()

		story := testStory("toggle me", true)
		if err := repo.Create(ctx, story); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		toggled, err := repo.Toggle(ctx, story.ID)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if toggled.IsActive {
			t.Error("expected story to be inactive after toggle")
		}

		toggled, err = repo.Toggle(ctx, story.ID)
		if err != nil {
			t.Fatalf("second Toggle failed: %v", err)
		}
		if !toggled.IsActive {
			t.Error("expected story to be active after second toggle")
		}

		if _, err := repo.Toggle(ctx, uuid.New()); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unknown story, got %v", err)
		}
	})
}
