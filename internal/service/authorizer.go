package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
	"github.com/Omer-KISAKOL/site-builder/internal/repository"
)

// Authorizer decides whether an identity holds the admin capability.
//
// The role is read from the store at check time. Token claims are never
// consulted: a role can change after the token was issued.
type Authorizer struct {
	users repository.UserRepository
}

// NewAuthorizer creates an authorization policy over the user store.
func NewAuthorizer(users repository.UserRepository) *Authorizer {
	return &Authorizer{users: users}
}

// RequireAdmin fails with ErrAdminRequired unless the user's current role
// is admin.
func (a *Authorizer) RequireAdmin(ctx context.Context, userID uuid.UUID) error {
	role, err := a.users.FindRoleByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrUserNotFound
		}
		return fmt.Errorf("load role: %w", err)
	}
	if role != model.RoleAdmin {
		return apperr.ErrAdminRequired
	}
	return nil
}
