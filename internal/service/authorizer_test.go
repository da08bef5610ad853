package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
)

// The role is read fresh from the store at check time; a token issued
// before a demotion must not keep admin access.
func TestAuthorizer_RequireAdmin(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		role          string
		roleErr       error
		expectedError error
	}{
		{name: "admin allowed", role: model.RoleAdmin},
		{name: "user forbidden", role: model.RoleUser, expectedError: apperr.ErrAdminRequired},
		{name: "deleted user", roleErr: gorm.ErrRecordNotFound, expectedError: apperr.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("FindRoleByID", mock.Anything, userID).Return(tt.role, tt.roleErr)

			authz := NewAuthorizer(mockRepo)
			err := authz.RequireAdmin(context.Background(), userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
