package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "admin role accepted",
			email:    "b@x.com",
			password: "password123",
			role:     model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "b@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "empty role defaults to user",
			email:    "c@x.com",
			password: "password123",
			role:     "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "c@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:          "unknown role rejected",
			email:         "d@x.com",
			password:      "password123",
			role:          "superuser",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperr.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.Create(context.Background(), tt.email, tt.password, "", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				if tt.role == "" {
					assert.Equal(t, model.RoleUser, user.Role)
				} else {
					assert.Equal(t, tt.role, user.Role)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("email conflict with another user", func(t *testing.T) {
		email := "taken@x.com"
		mockRepo := new(MockUserRepository)
		mockRepo.On("EmailInUseByOther", mock.Anything, email, userID).Return(true, nil)

		svc := NewUserService(mockRepo)
		_, err := svc.Update(context.Background(), userID, UpdateUserInput{Email: &email})
		assert.ErrorIs(t, err, apperr.ErrEmailTaken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)
		_, err := svc.Update(context.Background(), userID, UpdateUserInput{})
		assert.ErrorIs(t, err, apperr.ErrEmptyUpdate)
	})

	t.Run("weak replacement password", func(t *testing.T) {
		pw := "short"
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)
		_, err := svc.Update(context.Background(), userID, UpdateUserInput{Password: &pw})
		assert.ErrorIs(t, err, apperr.ErrWeakPassword)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		pw := "newpassword"
		mockRepo := new(MockUserRepository)
		mockRepo.On("Updates", mock.Anything, userID, mock.MatchedBy(func(fields map[string]interface{}) bool {
			hash, ok := fields["password_hash"].(string)
			if !ok {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
		})).Return(&model.User{ID: userID}, nil)

		svc := NewUserService(mockRepo)
		_, err := svc.Update(context.Background(), userID, UpdateUserInput{Password: &pw})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		name := "New Name"
		mockRepo := new(MockUserRepository)
		mockRepo.On("Updates", mock.Anything, userID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		_, err := svc.Update(context.Background(), userID, UpdateUserInput{Name: &name})
		assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	t.Run("self-delete denied, store never touched", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		err := svc.Delete(context.Background(), actorID, actorID)
		assert.ErrorIs(t, err, apperr.ErrSelfDelete)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("other user deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, targetID).Return(nil)

		svc := NewUserService(mockRepo)
		err := svc.Delete(context.Background(), actorID, targetID)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, targetID).Return(gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		err := svc.Delete(context.Background(), actorID, targetID)
		assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	})
}
