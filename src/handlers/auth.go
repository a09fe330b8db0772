package handlers

import (
	"net/http"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/middleware"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin login, token verification, and logout
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for successful login
type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"`
	Admin     *models.AdminUser `json:"admin"`
}

// HandleLogin authenticates an admin and returns a session token
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	admin, token, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "login failed")
		return
	}

	c.SetCookie(
		middleware.TokenCookieName,
		token,
		int(services.TokenLifetime.Seconds()),
		"/",
		"",
		true, // Secure
		true, // HttpOnly
	)

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(services.TokenLifetime).Unix(),
		Admin:     admin,
	})
}

// VerifyResponse represents the response for a token check
type VerifyResponse struct {
	Authenticated bool        `json:"authenticated"`
	AdminID       string      `json:"admin_id"`
	Username      string      `json:"username"`
	Role          models.Role `json:"role"`
}

// HandleVerify returns the claims of the presented token. Claims come from
// the token itself, not the store, so no database round-trip happens here.
func (h *AuthHandler) HandleVerify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication token"})
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{
		Authenticated: true,
		AdminID:       claims.AdminID,
		Username:      claims.Username,
		Role:          claims.Role,
	})
}

// HandleLogout clears the session cookie. Tokens stay valid until expiry;
// there is no server-side revocation list.
func (h *AuthHandler) HandleLogout(c *gin.Context) {
	c.SetCookie(
		middleware.TokenCookieName,
		"",
		-1,
		"/",
		"",
		true, // Secure
		true, // HttpOnly
	)

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
