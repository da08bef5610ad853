package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
	"github.com/Omer-KISAKOL/site-builder/internal/repository"
)

// UpdateUserInput carries the optional fields of an admin user update.
// Nil means "leave unchanged".
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Role     *string
	Password *string
}

// UserService handles the admin-only user management operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, email, password, name, role string) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error)
	// Delete removes a user. actorID is the caller's identity; deleting
	// yourself is refused regardless of role.
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates the admin user management service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create inserts a user with an arbitrary (but valid) role. Validation
// matches self-registration; only the role choice is admin-specific.
func (s *userService) Create(ctx context.Context, email, password, name, role string) (*model.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, apperr.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, apperr.ErrWeakPassword
	}
	if role == "" {
		role = model.RoleUser
	}
	if !model.IsValidRole(role) {
		return nil, apperr.ErrInvalidRole
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperr.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	fields := map[string]interface{}{}

	if in.Email != nil {
		if !emailPattern.MatchString(*in.Email) {
			return nil, apperr.ErrInvalidEmail
		}
		taken, err := s.users.EmailInUseByOther(ctx, *in.Email, id)
		if err != nil {
			return nil, fmt.Errorf("check email conflict: %w", err)
		}
		if taken {
			return nil, apperr.ErrEmailTaken
		}
		fields["email"] = *in.Email
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Role != nil {
		if !model.IsValidRole(*in.Role) {
			return nil, apperr.ErrInvalidRole
		}
		fields["role"] = *in.Role
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return nil, apperr.ErrWeakPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hashed)
	}

	if len(fields) == 0 {
		return nil, apperr.ErrEmptyUpdate
	}

	user, err := s.users.Updates(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	// The self-delete rule is independent of role and checked first.
	if actorID == id {
		return apperr.ErrSelfDelete
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
