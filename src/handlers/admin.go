package handlers

import (
	"net/http"

	"github.com/chemical081/nepali-star-buzz-pulse/src/middleware"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles admin identity management
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminListResponse represents a list of admin identities with total count
type AdminListResponse struct {
	Admins []*models.AdminUser `json:"admins"`
	Total  int                 `json:"total"`
}

// HandleList returns all admin identities
func (h *AdminHandler) HandleList(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context(), middleware.GetClaims(c))
	if err != nil {
		respondError(c, err, "failed to list admin users")
		return
	}

	c.JSON(http.StatusOK, AdminListResponse{
		Admins: admins,
		Total:  len(admins),
	})
}

// HandleGet returns one admin identity
func (h *AdminHandler) HandleGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err, "failed to fetch admin user")
		return
	}

	c.JSON(http.StatusOK, admin)
}

// HandleCreate creates a new admin identity
func (h *AdminHandler) HandleCreate(c *gin.Context) {
	var req services.CreateAdminInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	admin, err := h.adminService.Create(c.Request.Context(), middleware.GetClaims(c), req)
	if err != nil {
		respondError(c, err, "failed to create admin user")
		return
	}

	c.JSON(http.StatusCreated, admin)
}

// HandleUpdate updates an admin identity
func (h *AdminHandler) HandleUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	var req services.UpdateAdminInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	admin, err := h.adminService.Update(c.Request.Context(), middleware.GetClaims(c), id, req)
	if err != nil {
		respondError(c, err, "failed to update admin user")
		return
	}

	c.JSON(http.StatusOK, admin)
}

// HandleDelete deletes an admin identity
func (h *AdminHandler) HandleDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), middleware.GetClaims(c), id); err != nil {
		respondError(c, err, "failed to delete admin user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// HandleCapabilities returns the static capability registry grouped by category
func (h *AdminHandler) HandleCapabilities(c *gin.Context) {
	grouped := make(map[models.CapabilityCategory][]models.Capability)
	for _, capability := range models.AllCapabilities {
		grouped[capability.Category] = append(grouped[capability.Category], capability)
	}

	c.JSON(http.StatusOK, gin.H{
		"capabilities": models.AllCapabilities,
		"by_category":  grouped,
	})
}
