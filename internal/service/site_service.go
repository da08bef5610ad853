package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Omer-KISAKOL/site-builder/internal/cache"
	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
	"github.com/Omer-KISAKOL/site-builder/internal/repository"
)

const previewCacheTTL = 5 * time.Minute

// UpdateSiteInput carries the optional fields of a site update. Nil means
// "leave unchanged".
type UpdateSiteInput struct {
	Name        *string
	Domain      *string
	Description *string
	IsPublished *bool
}

// SiteView is a site together with its components, as rendered to clients.
type SiteView struct {
	Site       *model.Site           `json:"site"`
	Components []model.SiteComponent `json:"components"`
}

// SiteService handles the owner-scoped site and component operations.
type SiteService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Site, error)
	Create(ctx context.Context, ownerID uuid.UUID, name, domain, description string) (*model.Site, error)
	Get(ctx context.Context, ownerID, siteID uuid.UUID) (*SiteView, error)
	Update(ctx context.Context, ownerID, siteID uuid.UUID, in UpdateSiteInput) (*model.Site, error)
	Delete(ctx context.Context, ownerID, siteID uuid.UUID) error
	UpdateComponent(ctx context.Context, ownerID, siteID, componentID uuid.UUID, data json.RawMessage) (*model.SiteComponent, error)
	// Preview returns the site with its active components only, served
	// from the snapshot cache when warm.
	Preview(ctx context.Context, ownerID, siteID uuid.UUID) (*SiteView, error)
}

type siteService struct {
	sites      repository.SiteRepository
	components repository.ComponentRepository
	cache      *cache.Client
}

// NewSiteService creates the site service.
func NewSiteService(sites repository.SiteRepository, components repository.ComponentRepository, cacheClient *cache.Client) SiteService {
	return &siteService{sites: sites, components: components, cache: cacheClient}
}

func previewCacheKey(siteID uuid.UUID) string {
	return "site:preview:" + siteID.String()
}

func (s *siteService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Site, error) {
	sites, err := s.sites.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return sites, nil
}

// Create inserts the site together with its default navbar, sidebar and
// content components in a single transaction.
func (s *siteService) Create(ctx context.Context, ownerID uuid.UUID, name, domain, description string) (*model.Site, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ErrSiteNameRequired
	}

	site := &model.Site{
		UserID:      ownerID,
		Name:        name,
		Domain:      strings.TrimSpace(domain),
		Description: strings.TrimSpace(description),
	}
	components, err := defaultComponents()
	if err != nil {
		return nil, fmt.Errorf("build default components: %w", err)
	}
	if err := s.sites.CreateWithComponents(ctx, site, components); err != nil {
		return nil, fmt.Errorf("create site: %w", err)
	}
	return site, nil
}

func (s *siteService) Get(ctx context.Context, ownerID, siteID uuid.UUID) (*SiteView, error) {
	site, err := s.findOwned(ctx, ownerID, siteID)
	if err != nil {
		return nil, err
	}
	components, err := s.components.ListBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return &SiteView{Site: site, Components: components}, nil
}

func (s *siteService) Update(ctx context.Context, ownerID, siteID uuid.UUID, in UpdateSiteInput) (*model.Site, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.ErrSiteNameRequired
		}
		fields["name"] = name
	}
	if in.Domain != nil {
		fields["domain"] = strings.TrimSpace(*in.Domain)
	}
	if in.Description != nil {
		fields["description"] = strings.TrimSpace(*in.Description)
	}
	if in.IsPublished != nil {
		fields["is_published"] = *in.IsPublished
	}
	if len(fields) == 0 {
		return nil, apperr.ErrEmptyUpdate
	}

	site, err := s.sites.Updates(ctx, siteID, ownerID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSiteNotFound
		}
		return nil, fmt.Errorf("update site: %w", err)
	}
	s.cache.Delete(ctx, previewCacheKey(siteID))
	return site, nil
}

func (s *siteService) Delete(ctx context.Context, ownerID, siteID uuid.UUID) error {
	// Components go with the site via the store-level cascade.
	if err := s.sites.Delete(ctx, siteID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrSiteNotFound
		}
		return fmt.Errorf("delete site: %w", err)
	}
	s.cache.Delete(ctx, previewCacheKey(siteID))
	return nil
}

func (s *siteService) UpdateComponent(ctx context.Context, ownerID, siteID, componentID uuid.UUID, data json.RawMessage) (*model.SiteComponent, error) {
	if _, err := s.findOwned(ctx, ownerID, siteID); err != nil {
		return nil, err
	}
	component, err := s.components.FindByIDAndSite(ctx, componentID, siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrComponentNotFound
		}
		return nil, fmt.Errorf("find component: %w", err)
	}

	if err := model.ValidateComponentData(component.Type, data); err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalidComponentData, err)
	}

	updated, err := s.components.UpdateData(ctx, componentID, data)
	if err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}
	s.cache.Delete(ctx, previewCacheKey(siteID))
	return updated, nil
}

func (s *siteService) Preview(ctx context.Context, ownerID, siteID uuid.UUID) (*SiteView, error) {
	site, err := s.findOwned(ctx, ownerID, siteID)
	if err != nil {
		return nil, err
	}

	key := previewCacheKey(siteID)
	if raw, _ := s.cache.Get(ctx, key); raw != nil {
		var view SiteView
		if err := json.Unmarshal(raw, &view); err == nil {
			return &view, nil
		}
		// stale or corrupt snapshot, fall through to the store
	}

	components, err := s.components.ListActiveBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	view := &SiteView{Site: site, Components: components}
	if raw, err := json.Marshal(view); err == nil {
		s.cache.Set(ctx, key, raw, previewCacheTTL)
	}
	return view, nil
}

func (s *siteService) findOwned(ctx context.Context, ownerID, siteID uuid.UUID) (*model.Site, error) {
	site, err := s.sites.FindByIDAndOwner(ctx, siteID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSiteNotFound
		}
		return nil, fmt.Errorf("find site: %w", err)
	}
	return site, nil
}

// defaultComponents builds the navbar, sidebar and content every new site
// starts with, positions 1..3.
func defaultComponents() ([]model.SiteComponent, error) {
	navbar, err := json.Marshal(model.NavbarData{
		Logo: "Site Logo",
		Items: []model.NavItem{
			{Label: "Home", Link: "/"},
			{Label: "About", Link: "/about"},
			{Label: "Contact", Link: "/contact"},
		},
		Style: model.Style{BackgroundColor: "#ffffff", TextColor: "#000000"},
	})
	if err != nil {
		return nil, err
	}
	sidebar, err := json.Marshal(model.SidebarData{
		Title: "Menu",
		Items: []model.SidebarItem{
			{Label: "Dashboard", Link: "/dashboard", Icon: "home"},
			{Label: "Settings", Link: "/settings", Icon: "settings"},
		},
		Style: model.Style{BackgroundColor: "#f8f9fa", TextColor: "#000000"},
	})
	if err != nil {
		return nil, err
	}
	content, err := json.Marshal(model.ContentData{
		Sections: []model.ContentSection{
			{
				Type:       "hero",
				Title:      "Welcome",
				Subtitle:   "This is demo content",
				ButtonText: "Get started",
				ButtonLink: "#",
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return []model.SiteComponent{
		{Type: model.ComponentNavbar, Data: navbar, Position: 1, IsActive: true},
		{Type: model.ComponentSidebar, Data: sidebar, Position: 2, IsActive: true},
		{Type: model.ComponentContent, Data: content, Position: 3, IsActive: true},
	}, nil
}
