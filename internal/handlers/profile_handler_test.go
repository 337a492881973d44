package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
	"github.com/Miguel123456css/Zeraty.gym/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type stubProfileStore struct {
	saved      *models.Profile
	getResult  *models.Profile
	getErr     error
	lastUserID int64
}

func (s *stubProfileStore) Upsert(_ context.Context, userID int64, input repository.SaveProfileInput) (*models.Profile, error) {
	s.lastUserID = userID
	s.saved = &models.Profile{
		UserID:   userID,
		HeightCM: input.HeightCM,
		WeightKG: input.WeightKG,
		Biotype:  input.Biotype,
		Goal:     input.Goal,
	}
	return s.saved, nil
}

func (s *stubProfileStore) GetByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	s.lastUserID = userID
	return s.getResult, s.getErr
}

func newProfileApp(store profileStore) *fiber.App {
	handler := NewProfileHandler(store)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "7")
		return c.Next()
	})
	app.Post("/api/v1/profile", handler.SaveProfile)
	app.Get("/api/v1/profile", handler.GetProfile)
	return app
}

func TestSaveProfileReturnsRecommendation(t *testing.T) {
	store := &stubProfileStore{}
	app := newProfileApp(store)

	resp := postJSON(t, app, "/api/v1/profile", fiber.Map{
		"height_cm": 180,
		"weight_kg": 80,
		"biotype":   "meso",
		"goal":      "hipertrofia",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastUserID != 7 {
		t.Fatalf("expected user id 7, got %d", store.lastUserID)
	}

	var payload struct {
		BMI      *float64 `json:"bmi"`
		Guidance struct {
			Training    string `json:"training"`
			BiotypeNote string `json:"biotype_note"`
		} `json:"recommendation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.BMI == nil || *payload.BMI < 24.6 || *payload.BMI > 24.8 {
		t.Fatalf("expected BMI around 24.7, got %v", payload.BMI)
	}
	if payload.Guidance.Training == "" || payload.Guidance.BiotypeNote == "" {
		t.Fatalf("expected guidance texts, got %+v", payload.Guidance)
	}
}

func TestSaveProfileRequiresHeightAndWeight(t *testing.T) {
	app := newProfileApp(&stubProfileStore{})

	resp := postJSON(t, app, "/api/v1/profile", fiber.Map{"weight_kg": 80})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing height: expected 400, got %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/v1/profile", fiber.Map{"height_cm": 180})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing weight: expected 400, got %d", resp.StatusCode)
	}
}

func TestGetProfileReturnsEmptyObjectWhenUnset(t *testing.T) {
	app := newProfileApp(&stubProfileStore{getErr: pgx.ErrNoRows})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(payload) != 0 {
		t.Fatalf("expected empty object, got %v", payload)
	}
}

func TestGetProfileReturnsStoredRow(t *testing.T) {
	store := &stubProfileStore{
		getResult: &models.Profile{UserID: 7, HeightCM: 175, WeightKG: 72, Biotype: "ecto", Goal: "massa"},
	}
	app := newProfileApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload models.Profile
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.HeightCM != 175 || payload.Biotype != "ecto" {
		t.Fatalf("unexpected profile %+v", payload)
	}
}
