package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
)

func newSiteService(sites *MockSiteRepository, components *MockComponentRepository) SiteService {
	// nil cache degrades to a miss on every lookup
	return NewSiteService(sites, components, nil)
}

func TestSiteService_Create(t *testing.T) {
	ownerID := uuid.New()

	t.Run("default components created with the site", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockComponents := new(MockComponentRepository)
		mockSites.On("CreateWithComponents", mock.Anything, mock.AnythingOfType("*model.Site"),
			mock.MatchedBy(func(components []model.SiteComponent) bool {
				if len(components) != 3 {
					return false
				}
				return components[0].Type == model.ComponentNavbar && components[0].Position == 1 &&
					components[1].Type == model.ComponentSidebar && components[1].Position == 2 &&
					components[2].Type == model.ComponentContent && components[2].Position == 3
			})).Return(nil)

		svc := newSiteService(mockSites, mockComponents)
		site, err := svc.Create(context.Background(), ownerID, "My Site", "", "")
		require.NoError(t, err)
		assert.Equal(t, ownerID, site.UserID)
		assert.Equal(t, "My Site", site.Name)
		mockSites.AssertExpectations(t)
	})

	t.Run("default payloads pass their own validation", func(t *testing.T) {
		components, err := defaultComponents()
		require.NoError(t, err)
		for _, component := range components {
			assert.NoError(t, model.ValidateComponentData(component.Type, component.Data))
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := newSiteService(new(MockSiteRepository), new(MockComponentRepository))
		_, err := svc.Create(context.Background(), ownerID, "   ", "", "")
		assert.ErrorIs(t, err, apperr.ErrSiteNameRequired)
	})
}

func TestSiteService_Get(t *testing.T) {
	ownerID := uuid.New()
	siteID := uuid.New()

	t.Run("not owned looks like not found", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockSites.On("FindByIDAndOwner", mock.Anything, siteID, ownerID).Return(nil, gorm.ErrRecordNotFound)

		svc := newSiteService(mockSites, new(MockComponentRepository))
		_, err := svc.Get(context.Background(), ownerID, siteID)
		assert.ErrorIs(t, err, apperr.ErrSiteNotFound)
	})

	t.Run("components ordered by position", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockComponents := new(MockComponentRepository)
		mockSites.On("FindByIDAndOwner", mock.Anything, siteID, ownerID).
			Return(&model.Site{ID: siteID, UserID: ownerID, Name: "s"}, nil)
		mockComponents.On("ListBySite", mock.Anything, siteID).Return([]model.SiteComponent{
			{Type: model.ComponentNavbar, Position: 1},
			{Type: model.ComponentContent, Position: 3},
		}, nil)

		svc := newSiteService(mockSites, mockComponents)
		view, err := svc.Get(context.Background(), ownerID, siteID)
		require.NoError(t, err)
		assert.Len(t, view.Components, 2)
		mockComponents.AssertExpectations(t)
	})
}

func TestSiteService_UpdateComponent(t *testing.T) {
	ownerID := uuid.New()
	siteID := uuid.New()
	componentID := uuid.New()

	site := &model.Site{ID: siteID, UserID: ownerID, Name: "s"}

	t.Run("payload failing typed validation rejected", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockComponents := new(MockComponentRepository)
		mockSites.On("FindByIDAndOwner", mock.Anything, siteID, ownerID).Return(site, nil)
		mockComponents.On("FindByIDAndSite", mock.Anything, componentID, siteID).
			Return(&model.SiteComponent{ID: componentID, SiteID: siteID, Type: model.ComponentNavbar}, nil)

		svc := newSiteService(mockSites, mockComponents)
		_, err := svc.UpdateComponent(context.Background(), ownerID, siteID, componentID,
			json.RawMessage(`{"bogus": true}`))
		assert.ErrorIs(t, err, apperr.ErrInvalidComponentData)
		mockComponents.AssertNotCalled(t, "UpdateData", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid payload stored", func(t *testing.T) {
		data := json.RawMessage(`{"logo":"L","items":[{"label":"Home","link":"/"}],"style":{}}`)
		mockSites := new(MockSiteRepository)
		mockComponents := new(MockComponentRepository)
		mockSites.On("FindByIDAndOwner", mock.Anything, siteID, ownerID).Return(site, nil)
		mockComponents.On("FindByIDAndSite", mock.Anything, componentID, siteID).
			Return(&model.SiteComponent{ID: componentID, SiteID: siteID, Type: model.ComponentNavbar}, nil)
		mockComponents.On("UpdateData", mock.Anything, componentID, data).
			Return(&model.SiteComponent{ID: componentID, SiteID: siteID, Type: model.ComponentNavbar, Data: data}, nil)

		svc := newSiteService(mockSites, mockComponents)
		component, err := svc.UpdateComponent(context.Background(), ownerID, siteID, componentID, data)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(component.Data))
		mockComponents.AssertExpectations(t)
	})

	t.Run("component not in site", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockComponents := new(MockComponentRepository)
		mockSites.On("FindByIDAndOwner", mock.Anything, siteID, ownerID).Return(site, nil)
		mockComponents.On("FindByIDAndSite", mock.Anything, componentID, siteID).
			Return(nil, gorm.ErrRecordNotFound)

		svc := newSiteService(mockSites, mockComponents)
		_, err := svc.UpdateComponent(context.Background(), ownerID, siteID, componentID,
			json.RawMessage(`{}`))
		assert.ErrorIs(t, err, apperr.ErrComponentNotFound)
	})
}

func TestSiteService_Update(t *testing.T) {
	ownerID := uuid.New()
	siteID := uuid.New()

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("only provided fields written", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockSites.On("Updates", mock.Anything, siteID, ownerID,
			map[string]interface{}{"name": "Renamed", "is_published": true}).
			Return(&model.Site{ID: siteID, UserID: ownerID, Name: "Renamed", IsPublished: true}, nil)

		svc := newSiteService(mockSites, new(MockComponentRepository))
		site, err := svc.Update(context.Background(), ownerID, siteID, UpdateSiteInput{
			Name:        strPtr("  Renamed "),
			IsPublished: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", site.Name)
		mockSites.AssertExpectations(t)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		svc := newSiteService(new(MockSiteRepository), new(MockComponentRepository))
		_, err := svc.Update(context.Background(), ownerID, siteID, UpdateSiteInput{})
		assert.ErrorIs(t, err, apperr.ErrEmptyUpdate)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := newSiteService(new(MockSiteRepository), new(MockComponentRepository))
		_, err := svc.Update(context.Background(), ownerID, siteID, UpdateSiteInput{Name: strPtr("  ")})
		assert.ErrorIs(t, err, apperr.ErrSiteNameRequired)
	})

	t.Run("missing site", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockSites.On("Updates", mock.Anything, siteID, ownerID, mock.Anything).
			Return(nil, gorm.ErrRecordNotFound)

		svc := newSiteService(mockSites, new(MockComponentRepository))
		_, err := svc.Update(context.Background(), ownerID, siteID, UpdateSiteInput{Name: strPtr("x")})
		assert.ErrorIs(t, err, apperr.ErrSiteNotFound)
	})
}

func TestSiteService_Delete(t *testing.T) {
	ownerID := uuid.New()
	siteID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockSites.On("Delete", mock.Anything, siteID, ownerID).Return(nil)

		svc := newSiteService(mockSites, new(MockComponentRepository))
		assert.NoError(t, svc.Delete(context.Background(), ownerID, siteID))
		mockSites.AssertExpectations(t)
	})

	t.Run("missing site", func(t *testing.T) {
		mockSites := new(MockSiteRepository)
		mockSites.On("Delete", mock.Anything, siteID, ownerID).Return(gorm.ErrRecordNotFound)

		svc := newSiteService(mockSites, new(MockComponentRepository))
		err := svc.Delete(context.Background(), ownerID, siteID)
		assert.ErrorIs(t, err, apperr.ErrSiteNotFound)
	})
}

func TestSiteService_Preview(t *testing.T) {
	ownerID := uuid.New()
	siteID := uuid.New()

	mockSites := new(MockSiteRepository)
	mockComponents := new(MockComponentRepository)
	mockSites.On("FindByIDAndOwner", mock.Anything, siteID, ownerID).
		Return(&model.Site{ID: siteID, UserID: ownerID, Name: "s", IsPublished: true}, nil)
	mockComponents.On("ListActiveBySite", mock.Anything, siteID).Return([]model.SiteComponent{
		{Type: model.ComponentNavbar, Position: 1, IsActive: true},
	}, nil)

	svc := newSiteService(mockSites, mockComponents)
	view, err := svc.Preview(context.Background(), ownerID, siteID)
	require.NoError(t, err)
	assert.Len(t, view.Components, 1)
	assert.True(t, view.Components[0].IsActive)
	mockComponents.AssertExpectations(t)
}
