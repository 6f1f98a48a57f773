package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/enums"
	"github.com/techstore/storefront-backend/pkg/types"
)

// User represents a storefront customer profile.
type User struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email       string             `gorm:"column:email;type:text;not null;uniqueIndex"`
	FirstName   string             `gorm:"column:first_name;not null"`
	LastName    string             `gorm:"column:last_name;not null"`
	Phone       *string            `gorm:"column:phone"`
	AvatarURL   *string            `gorm:"column:avatar_url"`
	DateOfBirth *time.Time         `gorm:"column:date_of_birth"`
	Gender      *string            `gorm:"column:gender"`
	Preferences *types.Preferences `gorm:"column:preferences;type:jsonb;serializer:json"`
	// No gorm default: with a default tag GORM drops the zero value from
	// INSERTs and a deactivated user would persist as active.
	IsActive    bool               `gorm:"column:is_active;not null"`
	Addresses   []UserAddress      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// UserAddress is a saved shipping or billing address on a profile.
type UserAddress struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Type       enums.AddressType `gorm:"column:type;type:text;not null"`
	Name       string            `gorm:"column:name;not null"`
	Address    string            `gorm:"column:address;not null"`
	City       string            `gorm:"column:city;not null"`
	State      string            `gorm:"column:state;not null;default:''"`
	Country    string            `gorm:"column:country;not null"`
	PostalCode string            `gorm:"column:postal_code;not null"`
	Phone      string            `gorm:"column:phone;not null;default:''"`
	IsDefault  bool              `gorm:"column:is_default;not null;default:false"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
