package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrPhotoNotFound = errors.New("photo file not found")

// PhotoStorage persists uploaded photo bytes in a directory tree with one
// subdirectory per user. Filenames are always generated server-side, so a
// client can never choose a path.
type PhotoStorage struct {
	baseDir string
}

func NewPhotoStorage(baseDir string) *PhotoStorage {
	return &PhotoStorage{baseDir: baseDir}
}

// BuildFilename derives a stored name from the taken day, the upload
// timestamp and the original extension. A short uuid suffix keeps two
// uploads within the same second from colliding.
func BuildFilename(takenDay string, originalName string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(originalName)))
	ts := time.Now().UTC().Format("20060102_150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s_%s%s", takenDay, ts, suffix, ext)
}

func (s *PhotoStorage) Save(userID int64, filename string, content []byte) error {
	userDir := filepath.Join(s.baseDir, strconv.FormatInt(userID, 10))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return fmt.Errorf("create photo directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(userDir, filename), content, 0o644); err != nil {
		return fmt.Errorf("write photo: %w", err)
	}
	return nil
}

// Resolve returns the on-disk path of a stored photo, scoped to the user's
// own directory. Names carrying separators or traversal sequences never
// resolve; absent files report ErrPhotoNotFound.
func (s *PhotoStorage) Resolve(userID int64, filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", ErrPhotoNotFound
	}

	path := filepath.Join(s.baseDir, strconv.FormatInt(userID, 10), filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrPhotoNotFound
	}
	return path, nil
}
