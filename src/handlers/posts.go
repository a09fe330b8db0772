package handlers

import (
	"net/http"
	"strconv"

	"github.com/chemical081/nepali-star-buzz-pulse/src/middleware"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostHandler handles post CRUD and engagement endpoints
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostListResponse represents a page of posts
type PostListResponse struct {
	Posts []*models.Post `json:"posts"`
	Total int            `json:"total"`
}

// HandleList returns posts filtered by status and category
func (h *PostHandler) HandleList(c *gin.Context) {
	filter := models.PostFilter{
		Status:   models.PostStatus(c.Query("status")),
		Category: c.Query("category"),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filter.Offset = offset
	}

	posts, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, PostListResponse{
		Posts: posts,
		Total: len(posts),
	})
}

// HandleGet returns a single post
func (h *PostHandler) HandleGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// HandleCreate creates a new post
func (h *PostHandler) HandleCreate(c *gin.Context) {
	var req services.PostInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), middleware.GetClaims(c), req)
	if err != nil {
		respondError(c, err, "failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// HandleUpdate updates a post
func (h *PostHandler) HandleUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req services.PostInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// HandleDelete deletes a post
func (h *PostHandler) HandleDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// HandleLike bumps a post's like counter (public endpoint)
func (h *PostHandler) HandleLike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	likes, err := h.postService.Like(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to like post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// HandleComment bumps a post's comment counter (public endpoint)
func (h *PostHandler) HandleComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	comments, err := h.postService.Comment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to record comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
