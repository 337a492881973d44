package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Miguel123456css/Zeraty.gym/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthRequired(secret), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	secret := "supersecret"
	token, err := utils.GenerateToken("42", secret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := newProtectedApp(secret)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp("supersecret")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredRejectsMalformedHeader(t *testing.T) {
	app := newProtectedApp("supersecret")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredRejectsForeignSignature(t *testing.T) {
	token, err := utils.GenerateToken("42", "othersecret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := newProtectedApp("supersecret")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
