package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/jcastellanos/salon-reservas/models"
)

func signTestToken(t *testing.T, secret string, id uint, role models.UserRole) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":       id,
		"username": "tester",
		"role":     string(role),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func protectedTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/ping", Protected(), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestProtectedRejectsDeletedSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	orig := findUserByID
	defer func() { findUserByID = orig }()
	findUserByID = func(id uint) (*models.User, error) {
		return nil, fmt.Errorf("user %d not found", id)
	}

	app := protectedTestApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", 42, models.RoleAdmin))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestProtectedAcceptsLiveSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	orig := findUserByID
	defer func() { findUserByID = orig }()
	findUserByID = func(id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "tester", Role: models.RoleAdmin}, nil
	}

	app := protectedTestApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", 42, models.RoleAdmin))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := protectedTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestProtectedRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := protectedTestApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", 42, models.RoleAdmin))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
