package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/database"
	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/utils/auth"
)

// Registration and login flow against a real database.
//
// Requires a running Postgres configured via the usual DB_* variables.
func TestRegisterAndLoginFlow(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	store, err := database.StartGORM()
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		t.Fatal("failed to get GORM DB instance")
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        "test-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "test",
	})

	handler := NewAuthHandler(db, jwtManager)

	app := fiber.New()
	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	username := "flow_" + suffix
	email := "flow_" + suffix + "@example.com"

	t.Cleanup(func() {
		db.Where("username = ?", username).Delete(&model.User{})
	})

	// Register. Any non-empty password is accepted.
	resp := postJSON(t, app, "/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "pw123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d", resp.StatusCode)
	}

	// Duplicate registration conflicts
	resp = postJSON(t, app, "/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "pw123",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate register status %d, want 409", resp.StatusCode)
	}

	// Missing password rejected
	resp = postJSON(t, app, "/register", map[string]string{
		"username": username + "b",
		"email":    "b" + email,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing password status %d, want 400", resp.StatusCode)
	}

	// Login succeeds and returns tokens; the fresh account has no
	// completed profile yet.
	resp = postJSON(t, app, "/login", map[string]string{
		"email":    email,
		"password": "pw123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}
	var body struct {
		Data LoginResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if body.Data.AccessToken == "" || body.Data.RefreshToken == "" {
		t.Error("expected access and refresh tokens")
	}
	if body.Data.User.ProfileCompleted {
		t.Error("new account should not have a completed profile")
	}

	// Wrong password is unauthorized
	resp = postJSON(t, app, "/login", map[string]string{
		"email":    email,
		"password": "wrongpassword",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password status %d, want 401", resp.StatusCode)
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}
