package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Component types. Payload shape is validated per type at the store boundary.
const (
	ComponentNavbar  = "navbar"
	ComponentSidebar = "sidebar"
	ComponentContent = "content"
)

// SiteComponent is a typed, positioned building block of a site. Data holds
// the type-specific payload as JSON; ValidateComponentData is the shape gate.
type SiteComponent struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	SiteID    uuid.UUID       `json:"site_id" gorm:"type:uuid;not null;index"`
	Type      string          `json:"component_type" gorm:"column:component_type;size:50;not null"`
	Data      json.RawMessage `json:"component_data" gorm:"column:component_data;type:jsonb"`
	Position  int             `json:"position" gorm:"not null"`
	IsActive  bool            `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate sets the UUID before creating the record.
func (c *SiteComponent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Style is shared presentation config for navbar and sidebar payloads.
type Style struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

// NavItem is a single navbar link.
type NavItem struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}

// NavbarData is the payload for navbar components.
type NavbarData struct {
	Logo  string    `json:"logo"`
	Items []NavItem `json:"items"`
	Style Style     `json:"style"`
}

// SidebarItem is a single sidebar entry.
type SidebarItem struct {
	Label string `json:"label"`
	Link  string `json:"link"`
	Icon  string `json:"icon,omitempty"`
}

// SidebarData is the payload for sidebar components.
type SidebarData struct {
	Title string        `json:"title"`
	Items []SidebarItem `json:"items"`
	Style Style         `json:"style"`
}

// ContentSection is one block of a content component.
type ContentSection struct {
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonLink string `json:"buttonLink,omitempty"`
}

// ContentData is the payload for content components.
type ContentData struct {
	Sections []ContentSection `json:"sections"`
}

// ValidateComponentData checks that data is a well-formed payload for the
// given component type. Unknown fields and unknown types are rejected.
func ValidateComponentData(componentType string, data json.RawMessage) error {
	if len(data) == 0 {
		return fmt.Errorf("component data is empty")
	}

	switch componentType {
	case ComponentNavbar:
		var v NavbarData
		if err := strictUnmarshal(data, &v); err != nil {
			return err
		}
		for i, item := range v.Items {
			if item.Label == "" {
				return fmt.Errorf("navbar item %d: label is required", i)
			}
		}
	case ComponentSidebar:
		var v SidebarData
		if err := strictUnmarshal(data, &v); err != nil {
			return err
		}
		for i, item := range v.Items {
			if item.Label == "" {
				return fmt.Errorf("sidebar item %d: label is required", i)
			}
		}
	case ComponentContent:
		var v ContentData
		if err := strictUnmarshal(data, &v); err != nil {
			return err
		}
		for i, section := range v.Sections {
			if section.Type == "" {
				return fmt.Errorf("content section %d: type is required", i)
			}
		}
	default:
		return fmt.Errorf("unknown component type %q", componentType)
	}
	return nil
}

func strictUnmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
