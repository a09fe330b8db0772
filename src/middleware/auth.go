package middleware

import (
	"net/http"
	"strings"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/services"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the context key under which validated claims are stored
const ClaimsKey = "claims"

// TokenCookieName is the cookie the admin UI stores its session token in
const TokenCookieName = "admin_token"

// AdminAuthMiddleware validates the session token from the admin_token
// cookie or the Authorization header and attaches the claims to the request
// context. Missing or invalid tokens answer 401; authorization failures are
// left to RequireCapability, which answers 403.
func AdminAuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Cookie first, then bearer header
		if cookie, err := c.Cookie(TokenCookieName); err == nil {
			token = cookie
		}
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					token = parts[1]
				}
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication token"})
			c.Abort()
			return
		}

		claims, err := authService.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims retrieves the validated claims from the request context
func GetClaims(c *gin.Context) *services.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*services.Claims); ok {
			return claims
		}
	}
	return nil
}

// RequireCapability is the canonical authorization gate. Every mutating
// route declares the capability it needs and runs through here; handlers
// never compare role strings inline. Runs after AdminAuthMiddleware.
func RequireCapability(capabilityID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication token"})
			c.Abort()
			return
		}

		if !models.RoleHasCapability(claims.Role, capabilityID) {
			// 403, never 401: the caller is authenticated but lacks rights
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
