package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is the publication state of a post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// Valid reports whether s is a known post status
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// ContentBlock is one ordered block of post body content.
// Posts store separate English and Nepali block lists.
type ContentBlock struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // text, image, video, quote, heading
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// PostImage is an image attached to a post
type PostImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Caption  string `json:"caption,omitempty"`
	Position string `json:"position"` // header, content, gallery
	Order    int    `json:"order"`
}

// Post is a bilingual news article
type Post struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	TitleNp     string         `json:"title_np"`
	Excerpt     string         `json:"excerpt"`
	ExcerptNp   string         `json:"excerpt_np"`
	Content     []ContentBlock `json:"content"`
	ContentNp   []ContentBlock `json:"content_np"`
	Category    string         `json:"category"`
	Images      []PostImage    `json:"images"`
	Author      string         `json:"author"`
	IsPinned    bool           `json:"is_pinned"`
	Likes       int            `json:"likes"`
	Comments    int            `json:"comments"`
	Status      PostStatus     `json:"status"`
	CreatedBy   *uuid.UUID     `json:"created_by,omitempty"`
	PublishedAt time.Time      `json:"published_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PostFilter narrows post listings
type PostFilter struct {
	Status   PostStatus
	Category string
	Limit    int
	Offset   int
}
