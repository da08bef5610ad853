package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Omer-KISAKOL/site-builder/internal/model"
)

// ComponentRepository defines site component persistence operations.
type ComponentRepository interface {
	ListBySite(ctx context.Context, siteID uuid.UUID) ([]model.SiteComponent, error)
	ListActiveBySite(ctx context.Context, siteID uuid.UUID) ([]model.SiteComponent, error)
	FindByIDAndSite(ctx context.Context, id, siteID uuid.UUID) (*model.SiteComponent, error)
	UpdateData(ctx context.Context, id uuid.UUID, data json.RawMessage) (*model.SiteComponent, error)
}

type componentRepository struct {
	db *gorm.DB
}

// NewComponentRepository builds a GORM-backed repository.
func NewComponentRepository(db *gorm.DB) ComponentRepository {
	return &componentRepository{db: db}
}

func (r *componentRepository) ListBySite(ctx context.Context, siteID uuid.UUID) ([]model.SiteComponent, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	var components []model.SiteComponent
	if err := r.db.WithContext(ctx).Where("site_id = ?", siteID).Order("position ASC").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

func (r *componentRepository) ListActiveBySite(ctx context.Context, siteID uuid.UUID) ([]model.SiteComponent, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	var components []model.SiteComponent
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND is_active = ?", siteID, true).
		Order("position ASC").
		Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

func (r *componentRepository) FindByIDAndSite(ctx context.Context, id, siteID uuid.UUID) (*model.SiteComponent, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	var component model.SiteComponent
	if err := r.db.WithContext(ctx).Where("id = ? AND site_id = ?", id, siteID).First(&component).Error; err != nil {
		return nil, err
	}
	return &component, nil
}

func (r *componentRepository) UpdateData(ctx context.Context, id uuid.UUID, data json.RawMessage) (*model.SiteComponent, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	res := r.db.WithContext(ctx).Model(&model.SiteComponent{}).
		Where("id = ?", id).
		Update("component_data", data)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var component model.SiteComponent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&component).Error; err != nil {
		return nil, err
	}
	return &component, nil
}
