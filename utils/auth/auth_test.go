package auth

import (
	"errors"
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("supersecret1")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "supersecret1" {
		t.Fatal("hash equals plaintext")
	}

	if err := VerifyPassword(hash, "supersecret1"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := VerifyPassword(hash, "wrongpassword"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestHashPasswordAcceptsShortPasswords(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("short password rejected: %v", err)
	}
	if err := VerifyPassword(hash, "pw123"); err != nil {
		t.Errorf("round trip failed: %v", err)
	}
}

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "test",
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, jti, err := m.GenerateAccessToken(42, "intern@example.com", false)
	if err != nil {
		t.Fatal(err)
	}
	if jti == "" {
		t.Error("expected a JTI")
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 || claims.Email != "intern@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type %q", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testManager().GenerateAccessToken(1, "a@b.com", false)
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTManager(JWTConfig{Secret: "different", Expiry: time.Hour})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewJWTManager(JWTConfig{Secret: "s", Expiry: -time.Minute})

	token, _, err := m.GenerateAccessToken(1, "a@b.com", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestRefreshAccessToken(t *testing.T) {
	m := testManager()

	refresh, _, err := m.GenerateRefreshToken(7, "a@b.com", true)
	if err != nil {
		t.Fatal(err)
	}

	access, _, err := m.RefreshAccessToken(refresh)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.ValidateToken(access)
	if err != nil {
		t.Fatal(err)
	}
	if claims.TokenType != "access" || claims.UserID != 7 || !claims.IsAdmin {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	m := testManager()

	access, _, err := m.GenerateAccessToken(7, "a@b.com", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.RefreshAccessToken(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
