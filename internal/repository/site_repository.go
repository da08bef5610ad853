package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Omer-KISAKOL/site-builder/internal/model"
)

// SiteRepository defines site persistence operations. Every lookup is
// scoped to the owning user; a site is never visible across owners.
type SiteRepository interface {
	// CreateWithComponents inserts the site and its components in one
	// transaction so a partial failure cannot leave a site without them.
	CreateWithComponents(ctx context.Context, site *model.Site, components []model.SiteComponent) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Site, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Site, error)
	Updates(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (*model.Site, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository builds a GORM-backed repository.
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) CreateWithComponents(ctx context.Context, site *model.Site, components []model.SiteComponent) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(site).Error; err != nil {
			return err
		}
		for i := range components {
			components[i].SiteID = site.ID
		}
		if len(components) > 0 {
			if err := tx.Create(&components).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *siteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Site, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	var site model.Site
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Site, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	var sites []model.Site
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("created_at DESC").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

func (r *siteRepository) Updates(ctx context.Context, id, ownerID uuid.UUID, fields map[string]interface{}) (*model.Site, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	res := r.db.WithContext(ctx).Model(&model.Site{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var site model.Site
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Site{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
