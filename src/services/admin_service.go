package services

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/chemical081/nepali-star-buzz-pulse/src/models"
	"github.com/chemical081/nepali-star-buzz-pulse/src/repositories"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminService handles admin identity lifecycle operations. Every mutation
// is gated on the manage_admins capability, which only super_admin holds.
type AdminService struct {
	repo repositories.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// CreateAdminInput carries the fields for a new admin identity
type CreateAdminInput struct {
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Role        models.Role `json:"role"`
	Permissions []string    `json:"permissions"`
}

// UpdateAdminInput carries the mutable fields of an admin identity
type UpdateAdminInput struct {
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	Permissions []string    `json:"permissions"`
	IsActive    bool        `json:"is_active"`
}

// requireManageAdmins is the authorization gate for every identity mutation.
// It runs before anything touches the store.
func requireManageAdmins(actor *Claims) error {
	if actor == nil || !models.RoleHasCapability(actor.Role, models.CapManageAdmins) {
		return ErrForbidden
	}
	return nil
}

// Create creates a new admin identity with a hashed password and a capability
// snapshot derived from the role template.
func (s *AdminService) Create(ctx context.Context, actor *Claims, in CreateAdminInput) (*models.AdminUser, error) {
	if err := requireManageAdmins(actor); err != nil {
		return nil, err
	}
	// Role escalation: only a super_admin may mint another super_admin.
	// Checked here as well as at the transport gate so the rule holds no
	// matter how the service is driven.
	if in.Role == models.RoleSuperAdmin && actor.Role != models.RoleSuperAdmin {
		return nil, ErrForbidden
	}

	if err := validateAdminFields(in.Username, in.Email, in.Role); err != nil {
		return nil, err
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	snapshot, err := deriveSnapshot(in.Role, in.Permissions)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	creatorID, err := uuid.Parse(actor.AdminID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	admin := &models.AdminUser{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  snapshot,
		CreatedAt:    time.Now(),
		IsActive:     true,
		CreatedBy:    &creatorID,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Update changes an admin identity's role, contact fields, activation flag,
// and capability snapshot. The snapshot is re-derived and re-validated
// against the (possibly new) role template.
func (s *AdminService) Update(ctx context.Context, actor *Claims, id uuid.UUID, in UpdateAdminInput) (*models.AdminUser, error) {
	if err := requireManageAdmins(actor); err != nil {
		return nil, err
	}
	if in.Role == models.RoleSuperAdmin && actor.Role != models.RoleSuperAdmin {
		return nil, ErrForbidden
	}

	if err := validateAdminFields(in.Username, in.Email, in.Role); err != nil {
		return nil, err
	}

	snapshot, err := deriveSnapshot(in.Role, in.Permissions)
	if err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.Username = in.Username
	admin.Email = in.Email
	admin.Role = in.Role
	admin.Permissions = snapshot
	admin.IsActive = in.IsActive

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete hard-deletes an admin identity. Self-deletion is forbidden for
// every role, and the check runs before any mutation is attempted.
func (s *AdminService) Delete(ctx context.Context, actor *Claims, id uuid.UUID) error {
	if err := requireManageAdmins(actor); err != nil {
		return err
	}
	if actor.AdminID == id.String() {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

// List returns all admin identities. Password hashes are never serialized.
func (s *AdminService) List(ctx context.Context, actor *Claims) ([]*models.AdminUser, error) {
	if err := requireManageAdmins(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// GetByID returns one admin identity
func (s *AdminService) GetByID(ctx context.Context, actor *Claims, id uuid.UUID) (*models.AdminUser, error) {
	if err := requireManageAdmins(actor); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// HasAdmins reports whether any admin identities exist
func (s *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count admin users: %w", err)
	}
	return count > 0, nil
}

// Bootstrap creates the initial super_admin on first run. It bypasses the
// authorization gate because no identity exists yet to hold it.
func (s *AdminService) Bootstrap(ctx context.Context, username, email, password string) (*models.AdminUser, error) {
	if err := validateAdminFields(username, email, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		Permissions:  capabilityIDs(models.PermissionsFor(models.RoleSuperAdmin)),
		CreatedAt:    time.Now(),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func validateAdminFields(username, email string, role models.Role) error {
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("%w: username must be between 3 and 50 characters", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	return nil
}

// deriveSnapshot resolves the capability snapshot for a role. An empty
// request takes the full role template; an explicit request must be a subset
// of it (ad hoc per-user grants are not supported).
func deriveSnapshot(role models.Role, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return capabilityIDs(models.PermissionsFor(role)), nil
	}
	if !models.ValidSnapshot(role, requested) {
		return nil, fmt.Errorf("%w: permissions exceed the %s role template", ErrValidation, role)
	}
	return requested, nil
}

func capabilityIDs(caps []models.Capability) []string {
	ids := make([]string, 0, len(caps))
	for _, c := range caps {
		ids = append(ids, c.ID)
	}
	return ids
}
