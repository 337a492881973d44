package handlers

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
	"github.com/Miguel123456css/Zeraty.gym/internal/repository"
	"github.com/Miguel123456css/Zeraty.gym/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxPhotoSizeBytes = 10 * 1024 * 1024

type photoStore interface {
	Create(ctx context.Context, input repository.CreatePhotoInput) (*models.Photo, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Photo, error)
}

type PhotoHandler struct {
	photoRepo photoStore
	storage   *services.PhotoStorage
}

func NewPhotoHandler(photoRepo photoStore, storage *services.PhotoStorage) *PhotoHandler {
	return &PhotoHandler{
		photoRepo: photoRepo,
		storage:   storage,
	}
}

// UploadPhoto stores one progress photo. The stored filename is generated
// server-side; the client-supplied name only contributes its extension.
func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	takenDay := strings.TrimSpace(c.FormValue("taken_day"))
	if !isISODay(takenDay) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "taken_day must be YYYY-MM-DD"})
	}

	var note *string
	if rawNote := strings.TrimSpace(c.FormValue("note")); rawNote != "" {
		note = &rawNote
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	if fileHeader.Size <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is empty"})
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file exceeds 10MB limit"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file must be a jpg, jpeg, png, or webp image"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open file"})
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxPhotoSizeBytes+1))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read file"})
	}
	if len(content) > maxPhotoSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file exceeds 10MB limit"})
	}

	filename := services.BuildFilename(takenDay, fileHeader.Filename)
	if err := h.storage.Save(userID, filename, content); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	photo, err := h.photoRepo.Create(c.Context(), repository.CreatePhotoInput{
		UserID:   userID,
		Filename: filename,
		TakenDay: takenDay,
		Note:     note,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save photo metadata"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"photo": photo})
}

func (h *PhotoHandler) ListPhotos(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	photos, err := h.photoRepo.ListByUserID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list photos"})
	}

	return c.JSON(fiber.Map{"items": photos})
}

// GetPhotoFile serves the raw bytes of one of the caller's photos. Lookups
// never escape the caller's own directory.
func (h *PhotoHandler) GetPhotoFile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	path, err := h.storage.Resolve(userID, c.Params("filename"))
	if err != nil {
		if errors.Is(err, services.ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve photo"})
	}

	return c.SendFile(path)
}
