package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/enums"
	pkgerrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/types"
)

type stubUsersRepo struct {
	user    *models.User
	updates map[string]any
}

func (s *stubUsersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubUsersRepo) FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubUsersRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]any) error {
	s.updates = updates
	return nil
}

func (s *stubUsersRepo) FindAddress(ctx context.Context, userID, addressID uuid.UUID) (*models.UserAddress, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsersRepo) DefaultAddresses(ctx context.Context, userID uuid.UUID) ([]models.UserAddress, error) {
	return nil, nil
}

func sampleUser() *models.User {
	return &models.User{
		ID:        uuid.New(),
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Addresses: []models.UserAddress{{
			ID:        uuid.New(),
			Type:      enums.AddressTypeShipping,
			Name:      "Home",
			Address:   "123 Main St",
			City:      "Tech City",
			Country:   "US",
			IsDefault: true,
		}},
	}
}

func TestGetProfile(t *testing.T) {
	user := sampleUser()
	svc, err := NewService(&stubUsersRepo{user: user})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	view, err := svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if view.Email != "john.doe@example.com" || len(view.Addresses) != 1 {
		t.Fatalf("unexpected view %+v", view)
	}
	if !view.Addresses[0].IsDefault {
		t.Fatal("default flag lost")
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := NewService(&stubUsersRepo{})

	_, err := svc.GetProfile(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProfileBuildsSparseUpdates(t *testing.T) {
	user := sampleUser()
	repo := &stubUsersRepo{user: user}
	svc, _ := NewService(repo)

	name := "Jane"
	prefs := &types.Preferences{Language: "en", Currency: "USD", Newsletter: true}
	_, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{
		FirstName:   &name,
		Preferences: prefs,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if len(repo.updates) != 2 {
		t.Fatalf("expected 2 updates, got %v", repo.updates)
	}
	if repo.updates["first_name"] != "Jane" {
		t.Fatalf("first_name update missing: %v", repo.updates)
	}
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	user := sampleUser()
	svc, _ := NewService(&stubUsersRepo{user: user})

	empty := ""
	_, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{FirstName: &empty})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
