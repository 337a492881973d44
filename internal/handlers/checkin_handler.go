package handlers

import (
	"context"
	"strings"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
	"github.com/gofiber/fiber/v2"
)

type checkinStore interface {
	SetTrained(ctx context.Context, userID int64, day string, trained bool) error
	SetSupplementTaken(ctx context.Context, userID int64, day, supplementName string, took bool) error
	ListTrainedByMonth(ctx context.Context, userID int64, month string) ([]models.Checkin, error)
	ListSupplementsByMonth(ctx context.Context, userID int64, month string) ([]models.SupplementCheckin, error)
}

type CheckinHandler struct {
	checkinRepo checkinStore
}

func NewCheckinHandler(checkinRepo checkinStore) *CheckinHandler {
	return &CheckinHandler{checkinRepo: checkinRepo}
}

type setCheckinRequest struct {
	Day     string `json:"day"`
	Trained bool   `json:"trained"`
}

type setSupplementCheckinRequest struct {
	Day            string `json:"day"`
	SupplementName string `json:"supplement_name"`
	Took           bool   `json:"took"`
}

type supplementCheckinResponse struct {
	Day  string `json:"day"`
	Name string `json:"name"`
	Took bool   `json:"took"`
}

// SetCheckin upserts the trained flag for (caller, day). Repeating a day
// overwrites the previous flag.
func (h *CheckinHandler) SetCheckin(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req setCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !isISODay(req.Day) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "day must be YYYY-MM-DD"})
	}

	if err := h.checkinRepo.SetTrained(c.Context(), userID, req.Day, req.Trained); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save check-in"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *CheckinHandler) SetSupplementCheckin(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req setSupplementCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !isISODay(req.Day) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "day must be YYYY-MM-DD"})
	}

	name := strings.TrimSpace(req.SupplementName)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "supplement_name is required"})
	}

	if err := h.checkinRepo.SetSupplementTaken(c.Context(), userID, req.Day, name, req.Took); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save supplement check-in"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// GetMonth answers the calendar view: a day-to-trained map plus the
// supplement check-ins for the requested YYYY-MM month.
func (h *CheckinHandler) GetMonth(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	month := c.Query("month")
	if !isISOMonth(month) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be YYYY-MM"})
	}

	checkins, err := h.checkinRepo.ListTrainedByMonth(c.Context(), userID, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch check-ins"})
	}

	supplementCheckins, err := h.checkinRepo.ListSupplementsByMonth(c.Context(), userID, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch supplement check-ins"})
	}

	trained := map[string]bool{}
	for _, checkin := range checkins {
		trained[checkin.Day] = checkin.Trained
	}

	supplements := make([]supplementCheckinResponse, 0, len(supplementCheckins))
	for _, checkin := range supplementCheckins {
		supplements = append(supplements, supplementCheckinResponse{
			Day:  checkin.Day,
			Name: checkin.SupplementName,
			Took: checkin.Took,
		})
	}

	return c.JSON(fiber.Map{
		"trained":     trained,
		"supplements": supplements,
	})
}
