package models

import (
	"time"

	"github.com/google/uuid"
)

// StoryType distinguishes image stories from video stories
type StoryType string

const (
	StoryTypeImage StoryType = "image"
	StoryTypeVideo StoryType = "video"
)

// Valid reports whether t is a known story type
func (t StoryType) Valid() bool {
	return t == StoryTypeImage || t == StoryTypeVideo
}

// Story is a short-lived visual item shown in the stories strip
type Story struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Type      StoryType  `json:"type"`
	URL       string     `json:"url"`
	Thumbnail string     `json:"thumbnail,omitempty"`
	Duration  *int       `json:"duration,omitempty"` // seconds, video only
	IsActive  bool       `json:"is_active"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
