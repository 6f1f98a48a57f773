package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/enums"
	"github.com/techstore/storefront-backend/pkg/types"
)

// AddressView is one saved address on the profile.
type AddressView struct {
	ID         uuid.UUID         `json:"id"`
	Type       enums.AddressType `json:"type"`
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	State      string            `json:"state,omitempty"`
	Country    string            `json:"country"`
	PostalCode string            `json:"postal_code"`
	Phone      string            `json:"phone,omitempty"`
	IsDefault  bool              `json:"is_default"`
}

// ProfileView is the user profile payload.
type ProfileView struct {
	ID          uuid.UUID          `json:"id"`
	Email       string             `json:"email"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Phone       *string            `json:"phone,omitempty"`
	AvatarURL   *string            `json:"avatar_url,omitempty"`
	DateOfBirth *time.Time         `json:"date_of_birth,omitempty"`
	Gender      *string            `json:"gender,omitempty"`
	Preferences *types.Preferences `json:"preferences,omitempty"`
	Addresses   []AddressView      `json:"addresses"`
	CreatedAt   time.Time          `json:"created_at"`
}

// UpdateProfileInput carries the editable profile fields. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	AvatarURL   *string
	Preferences *types.Preferences
}

func toProfileView(user *models.User) *ProfileView {
	addresses := make([]AddressView, 0, len(user.Addresses))
	for _, a := range user.Addresses {
		addresses = append(addresses, AddressView{
			ID:         a.ID,
			Type:       a.Type,
			Name:       a.Name,
			Address:    a.Address,
			City:       a.City,
			State:      a.State,
			Country:    a.Country,
			PostalCode: a.PostalCode,
			Phone:      a.Phone,
			IsDefault:  a.IsDefault,
		})
	}
	return &ProfileView{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		AvatarURL:   user.AvatarURL,
		DateOfBirth: user.DateOfBirth,
		Gender:      user.Gender,
		Preferences: user.Preferences,
		Addresses:   addresses,
		CreatedAt:   user.CreatedAt,
	}
}
