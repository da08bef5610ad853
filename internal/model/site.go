package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site is a user's site. Every site is owned by exactly one user and is
// deleted together with its owner.
type Site struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Domain      string    `json:"domain,omitempty" gorm:"size:255"`
	Description string    `json:"description,omitempty"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Components []SiteComponent `json:"-" gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BeforeCreate sets the UUID before creating the record.
func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
