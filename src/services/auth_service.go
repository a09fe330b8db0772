package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/logging"
	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenLifetime is the fixed session token lifetime. Tokens are not
// refreshable; expiry requires re-authentication.
const TokenLifetime = 24 * time.Hour

// tokenIssuer identifies tokens minted by this service
const tokenIssuer = "star-buzz"

// Claims is the identity data embedded in a session token
type Claims struct {
	AdminID  string      `json:"admin_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService authenticates credentials and issues and validates session tokens
type AuthService struct {
	repo      repositories.AdminRepository
	jwtSecret []byte
}

// NewAuthService creates a new auth service. The signing secret must be at
// least 32 characters; rotating it invalidates every outstanding token.
func NewAuthService(repo repositories.AdminRepository, jwtSecret string) (*AuthService, error) {
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("JWT secret must be at least 32 characters long")
	}
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
	}, nil
}

// Authenticate verifies a username/password pair and issues a session token.
// Every failure mode (unknown username, wrong password, deactivated account)
// returns the same ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	admin, err := s.repo.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// Best effort: a failed last_login write must not block token issuance
	now := time.Now()
	if err := s.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		logger := logging.NewLogger("auth")
		logger.Error().Err(err).
			Str("username", admin.Username).
			Msg("failed to update last_login")
	}
	admin.LastLogin = &now

	token, err := s.IssueToken(admin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return admin, token, nil
}

// IssueToken mints a signed session token for an admin
func (s *AuthService) IssueToken(admin *models.AdminUser) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// Validate checks a session token's signature and expiry and returns its
// claims. No database round-trip: a role change takes effect on held tokens
// only when they expire. Malformed, forged, and expired tokens all fail with
// the same ErrInvalidToken.
func (s *AuthService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
