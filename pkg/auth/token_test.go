package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/config"
)

func jwtTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "techstore",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := jwtTestConfig()
	userID := uuid.New()

	token, err := MintAccessToken(cfg, time.Now(), userID, "john.doe@example.com")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "john.doe@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.Issuer != "techstore" {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := jwtTestConfig()

	token, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), uuid.New(), "")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(jwtTestConfig(), time.Now(), uuid.New(), "")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := jwtTestConfig()
	other.Secret = "different-secret"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to be rejected")
	}
}

func TestMintValidatesInputs(t *testing.T) {
	cfg := jwtTestConfig()

	if _, err := MintAccessToken(cfg, time.Now(), uuid.Nil, ""); err == nil {
		t.Fatal("expected nil user id to be rejected")
	}

	cfg.Secret = ""
	if _, err := MintAccessToken(cfg, time.Now(), uuid.New(), ""); err == nil {
		t.Fatal("expected missing secret to be rejected")
	}
}
