package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser represents one administrative account
type AdminUser struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never expose
	Role         Role       `json:"role"`
	Permissions  []string   `json:"permissions"` // capability snapshot, subset of the role template
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
	IsActive     bool       `json:"is_active"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
}

// HasCapability reports whether the stored capability snapshot includes the
// given capability id. Inactive accounts never hold capabilities.
func (a *AdminUser) HasCapability(capabilityID string) bool {
	if a == nil || !a.IsActive {
		return false
	}
	for _, id := range a.Permissions {
		if id == capabilityID {
			return true
		}
	}
	return false
}
