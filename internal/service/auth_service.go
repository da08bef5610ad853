package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Omer-KISAKOL/site-builder/internal/auth"
	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
	"github.com/Omer-KISAKOL/site-builder/internal/repository"
)

const bcryptCost = 10

const minPasswordLength = 6

// emailPattern accepts anything with a local part, an @ and a dot in the
// domain, with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration, login and identity resolution.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
	codec auth.Codec
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, codec auth.Codec) AuthService {
	return &authService{users: users, codec: codec}
}

// Register creates a new user with a hashed password and the default role.
func (s *authService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, apperr.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, apperr.ErrWeakPassword
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
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and issues a session credential. An unknown
// email and a wrong password fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Email, auth.TokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// Me returns the current user record, read fresh from the store.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
