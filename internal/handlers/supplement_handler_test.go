package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubSupplementStore struct {
	added      []string
	names      []string
	lastUserID int64
}

func (s *stubSupplementStore) Add(_ context.Context, userID int64, name string) error {
	s.lastUserID = userID
	s.added = append(s.added, name)
	return nil
}

func (s *stubSupplementStore) ListNames(_ context.Context, userID int64) ([]string, error) {
	s.lastUserID = userID
	return s.names, nil
}

func newSupplementApp(store supplementStore) *fiber.App {
	handler := NewSupplementHandler(store)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "7")
		return c.Next()
	})
	app.Post("/api/v1/supplements/add", handler.AddSupplement)
	app.Get("/api/v1/supplements", handler.ListSupplements)
	return app
}

func TestAddSupplementTrimsName(t *testing.T) {
	store := &stubSupplementStore{}
	app := newSupplementApp(store)

	resp := postJSON(t, app, "/api/v1/supplements/add", fiber.Map{"name": "  Creatine  "})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(store.added) != 1 || store.added[0] != "Creatine" {
		t.Fatalf("expected trimmed name, got %v", store.added)
	}
	if store.lastUserID != 7 {
		t.Fatalf("expected user id 7, got %d", store.lastUserID)
	}
}

func TestAddSupplementRejectsEmptyName(t *testing.T) {
	store := &stubSupplementStore{}
	app := newSupplementApp(store)

	resp := postJSON(t, app, "/api/v1/supplements/add", fiber.Map{"name": "   "})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(store.added) != 0 {
		t.Fatalf("expected nothing stored, got %v", store.added)
	}
}

func TestListSupplements(t *testing.T) {
	store := &stubSupplementStore{names: []string{"Creatine", "Whey"}}
	app := newSupplementApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/supplements", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Items []string `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(payload.Items) != 2 || payload.Items[0] != "Creatine" {
		t.Fatalf("unexpected items %v", payload.Items)
	}
}
