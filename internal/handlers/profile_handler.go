package handlers

import (
	"context"
	"errors"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
	"github.com/Miguel123456css/Zeraty.gym/internal/repository"
	"github.com/Miguel123456css/Zeraty.gym/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type profileStore interface {
	Upsert(ctx context.Context, userID int64, input repository.SaveProfileInput) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type ProfileHandler struct {
	profileRepo profileStore
}

func NewProfileHandler(profileRepo profileStore) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type saveProfileRequest struct {
	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
	Biotype  string   `json:"biotype"`
	Goal     string   `json:"goal"`
}

// SaveProfile replaces the caller's profile and answers with the
// recommendation computed from the just-saved values.
func (h *ProfileHandler) SaveProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req saveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.HeightCM == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "height_cm is required"})
	}
	if req.WeightKG == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight_kg is required"})
	}

	profile, err := h.profileRepo.Upsert(c.Context(), userID, repository.SaveProfileInput{
		HeightCM: *req.HeightCM,
		WeightKG: *req.WeightKG,
		Biotype:  req.Biotype,
		Goal:     req.Goal,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}

	return c.JSON(services.Recommend(profile.HeightCM, profile.WeightKG, profile.Biotype, profile.Goal))
}

// GetProfile returns the stored row, or an empty object when the caller has
// never saved one. Absence is not an error here.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(fiber.Map{})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(profile)
}
