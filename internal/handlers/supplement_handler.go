package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type supplementStore interface {
	Add(ctx context.Context, userID int64, name string) error
	ListNames(ctx context.Context, userID int64) ([]string, error)
}

type SupplementHandler struct {
	supplementRepo supplementStore
}

func NewSupplementHandler(supplementRepo supplementStore) *SupplementHandler {
	return &SupplementHandler{supplementRepo: supplementRepo}
}

type addSupplementRequest struct {
	Name string `json:"name"`
}

// AddSupplement registers a supplement name for the caller. Adding a name
// that already exists is a silent success.
func (h *SupplementHandler) AddSupplement(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req addSupplementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	if err := h.supplementRepo.Add(c.Context(), userID, name); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add supplement"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *SupplementHandler) ListSupplements(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	names, err := h.supplementRepo.ListNames(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list supplements"})
	}

	return c.JSON(fiber.Map{"items": names})
}
