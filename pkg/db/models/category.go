package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the catalog tree, stored flat with a parent pointer.
type Category struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ParentID     *uuid.UUID `gorm:"column:parent_id;type:uuid;index"`
	Name         string     `gorm:"column:name;not null"`
	Slug         string     `gorm:"column:slug;not null;uniqueIndex"`
	Description  string     `gorm:"column:description;not null;default:''"`
	ImageURL     string     `gorm:"column:image_url;not null;default:''"`
	ProductCount int        `gorm:"column:product_count;not null;default:0"`
	SortOrder    int        `gorm:"column:sort_order;not null;default:0"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
