package handlers

import (
	"net/http"

	"github.com/chemical081/nepali-star-buzz-pulse/src/middleware"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoryHandler handles the stories strip endpoints
type StoryHandler struct {
	storyService *services.StoryService
}

// NewStoryHandler creates a new story handler
func NewStoryHandler(storyService *services.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// StoryListResponse represents a list of stories
type StoryListResponse struct {
	Stories []*models.Story `json:"stories"`
	Total   int             `json:"total"`
}

// HandleList returns stories, optionally filtered on ?active=true|false
func (h *StoryHandler) HandleList(c *gin.Context) {
	var activeOnly *bool
	switch c.Query("active") {
	case "true":
		v := true
		activeOnly = &v
	case "false":
		v := false
		activeOnly = &v
	}

	stories, err := h.storyService.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "failed to fetch stories")
		return
	}

	c.JSON(http.StatusOK, StoryListResponse{
		Stories: stories,
		Total:   len(stories),
	})
}

// HandleCreate creates a new story
func (h *StoryHandler) HandleCreate(c *gin.Context) {
	var req services.StoryInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	story, err := h.storyService.Create(c.Request.Context(), middleware.GetClaims(c), req)
	if err != nil {
		respondError(c, err, "failed to create story")
		return
	}

	c.JSON(http.StatusCreated, story)
}

// HandleUpdate updates a story
func (h *StoryHandler) HandleUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
		return
	}

	var req services.StoryInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	story, err := h.storyService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "failed to update story")
		return
	}

	c.JSON(http.StatusOK, story)
}

// HandleDelete deletes a story
func (h *StoryHandler) HandleDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
		return
	}

	if err := h.storyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete story")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// HandleToggle flips a story's active flag
func (h *StoryHandler) HandleToggle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
		return
	}

	story, err := h.storyService.Toggle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to toggle story status")
		return
	}

	c.JSON(http.StatusOK, story)
}
