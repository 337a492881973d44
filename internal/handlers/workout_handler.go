package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
	"github.com/Miguel123456css/Zeraty.gym/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type workoutStore interface {
	Create(ctx context.Context, input repository.CreateWorkoutInput) (*models.Workout, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutSummary, error)
	GetByID(ctx context.Context, userID, workoutID int64) (*models.Workout, error)
}

type WorkoutHandler struct {
	workoutRepo workoutStore
}

func NewWorkoutHandler(workoutRepo workoutStore) *WorkoutHandler {
	return &WorkoutHandler{workoutRepo: workoutRepo}
}

type saveWorkoutRequest struct {
	Title string          `json:"title"`
	Split string          `json:"split"`
	Plan  json.RawMessage `json:"plan"`
}

// SaveWorkout stores a plan verbatim. The plan must parse as JSON; its
// structure is never interpreted.
func (h *WorkoutHandler) SaveWorkout(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req saveWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}
	split := strings.TrimSpace(req.Split)
	if split == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "split is required"})
	}
	if len(req.Plan) == 0 || !json.Valid(req.Plan) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "plan must be valid JSON"})
	}

	workout, err := h.workoutRepo.Create(c.Context(), repository.CreateWorkoutInput{
		UserID: userID,
		Title:  title,
		Split:  split,
		Plan:   string(req.Plan),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save workout"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": newWorkoutResponse(workout)})
}

func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workouts, err := h.workoutRepo.ListByUserID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list workouts"})
	}

	return c.JSON(fiber.Map{"items": workouts})
}

// GetWorkout fetches one workout by id. A workout owned by another user is
// reported as not found, never as forbidden.
func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workoutID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || workoutID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	workout, err := h.workoutRepo.GetByID(c.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workout"})
	}

	return c.JSON(fiber.Map{"workout": newWorkoutResponse(workout)})
}

type workoutResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Split     string          `json:"split"`
	Plan      json.RawMessage `json:"plan"`
	CreatedAt time.Time       `json:"created_at"`
}

func newWorkoutResponse(workout *models.Workout) *workoutResponse {
	if workout == nil {
		return nil
	}
	return &workoutResponse{
		ID:        workout.ID,
		Title:     workout.Title,
		Split:     workout.Split,
		Plan:      json.RawMessage(workout.Plan),
		CreatedAt: workout.CreatedAt,
	}
}
