package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Omer-KISAKOL/site-builder/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindRoleByID(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) EmailInUseByOther(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, id)
	return args.Bool(0), args.Error(1)
}

// MockSiteRepository is a mock implementation of repository.SiteRepository.
type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) CreateWithComponents(ctx context.Context, site *model.Site, components []model.SiteComponent) error {
	args := m.Called(ctx, site, components)
	return args.Error(0)
}

func (m *MockSiteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Site, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Site), args.Error(1)
}

func (m *MockSiteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Site, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Site), args.Error(1)
}

func (m *MockSiteRepository) Updates(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (*model.Site, error) {
	args := m.Called(ctx, id, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Site), args.Error(1)
}

func (m *MockSiteRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

// MockComponentRepository is a mock implementation of repository.ComponentRepository.
type MockComponentRepository struct {
	mock.Mock
}

func (m *MockComponentRepository) ListBySite(ctx context.Context, siteID uuid.UUID) ([]model.SiteComponent, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SiteComponent), args.Error(1)
}

func (m *MockComponentRepository) ListActiveBySite(ctx context.Context, siteID uuid.UUID) ([]model.SiteComponent, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SiteComponent), args.Error(1)
}

func (m *MockComponentRepository) FindByIDAndSite(ctx context.Context, id, siteID uuid.UUID) (*model.SiteComponent, error) {
	args := m.Called(ctx, id, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteComponent), args.Error(1)
}

func (m *MockComponentRepository) UpdateData(ctx context.Context, id uuid.UUID, data json.RawMessage) (*model.SiteComponent, error) {
	args := m.Called(ctx, id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteComponent), args.Error(1)
}
