package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories/mock"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func validStoryInput() services.StoryInput {
	return services.StoryInput{
		Title: "Red carpet moments",
		Type:  models.StoryTypeImage,
		URL:   "https://cdn.example.com/stories/red-carpet.jpg",
	}
}

func TestStoryCreate_DefaultsToActive(t *testing.T) {
	repo := mock.NewStoryRepository()
	svc := services.NewStoryService(repo)
	actor := actorClaims(models.RoleAdmin)

	story, err := svc.Create(context.Background(), actor, validStoryInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !story.IsActive {
		t.Error("expected story to default to active")
	}
	if story.CreatedBy == nil || story.CreatedBy.String() != actor.AdminID {
		t.Error("expected created_by to record the actor")
	}

	in := validStoryInput()
	in.IsActive = boolPtr(false)
	story, err = svc.Create(context.Background(), actor, in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if story.IsActive {
		t.Error("expected explicit is_active=false to be honored")
	}
}

func TestStoryCreate_Validation(t *testing.T) {
	svc := services.NewStoryService(mock.NewStoryRepository())
	actor := actorClaims(models.RoleAdmin)

	cases := []struct {
		name   string
		mutate func(*services.StoryInput)
	}{
		{"missing title", func(in *services.StoryInput) { in.Title = "" }},
		{"unknown type", func(in *services.StoryInput) { in.Type = "reel" }},
		{"relative url", func(in *services.StoryInput) { in.URL = "/stories/a.jpg" }},
		{"empty url", func(in *services.StoryInput) { in.URL = "" }},
		{"relative thumbnail", func(in *services.StoryInput) { in.Thumbnail = "thumb.jpg" }},
		{"video without duration", func(in *services.StoryInput) {
			in.Type = models.StoryTypeVideo
			in.URL = "https://cdn.example.com/stories/a.mp4"
		}},
		{"duration too short", func(in *services.StoryInput) { in.Duration = intPtr(0) }},
		{"duration too long", func(in *services.StoryInput) { in.Duration = intPtr(61) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validStoryInput()
			tc.mutate(&in)
			_, err := svc.Create(context.Background(), actor, in)
			if !errors.Is(err, services.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestStoryCreate_VideoWithDuration(t *testing.T) {
	svc := services.NewStoryService(mock.NewStoryRepository())

	in := services.StoryInput{
		Title:     "Backstage interview",
		Type:      models.StoryTypeVideo,
		URL:       "https://cdn.example.com/stories/interview.mp4",
		Thumbnail: "https://cdn.example.com/stories/interview.jpg",
		Duration:  intPtr(30),
	}

	story, err := svc.Create(context.Background(), actorClaims(models.RoleAdmin), in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if story.Duration == nil || *story.Duration != 30 {
		t.Error("expected duration to be stored")
	}
}

func TestStoryUpdate_NotFound(t *testing.T) {
	svc := services.NewStoryService(mock.NewStoryRepository())

	_, err := svc.Update(context.Background(), uuid.New(), validStoryInput())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoryList_PassesFilter(t *testing.T) {
	repo := mock.NewStoryRepository()
	var gotFilter *bool
	repo.ListFunc = func(ctx context.Context, activeOnly *bool) ([]*models.Story, error) {
		gotFilter = activeOnly
		return nil, nil
	}
	svc := services.NewStoryService(repo)

	if _, err := svc.List(context.Background(), boolPtr(true)); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if gotFilter == nil || !*gotFilter {
		t.Error("expected active-only filter to reach the repository")
	}
}
