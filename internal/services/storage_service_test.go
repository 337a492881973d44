package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildFilenameUsesServerGeneratedName(t *testing.T) {
	name := BuildFilename("2024-03-10", "../../etc/passwd.PNG")
	if !strings.HasPrefix(name, "2024-03-10_") {
		t.Fatalf("expected taken-day prefix, got %q", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected lowercased extension, got %q", name)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Fatalf("expected no path components in generated name, got %q", name)
	}

	other := BuildFilename("2024-03-10", "../../etc/passwd.PNG")
	if name == other {
		t.Fatalf("expected distinct names for repeated uploads, got %q twice", name)
	}
}

func TestPhotoStorageSaveAndResolve(t *testing.T) {
	storage := NewPhotoStorage(t.TempDir())

	if err := storage.Save(7, "2024-03-10_photo.png", []byte("png-bytes")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path, err := storage.Resolve(7, "2024-03-10_photo.png")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "png-bytes" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestPhotoStorageScopesToOwner(t *testing.T) {
	storage := NewPhotoStorage(t.TempDir())

	if err := storage.Save(7, "owned.png", []byte("data")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := storage.Resolve(8, "owned.png"); !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound for another user, got %v", err)
	}
}

func TestPhotoStorageRejectsTraversal(t *testing.T) {
	baseDir := t.TempDir()
	storage := NewPhotoStorage(baseDir)

	secret := filepath.Join(baseDir, "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, name := range []string{"../secret.txt", "..", ".", "a/b.png", ""} {
		if _, err := storage.Resolve(7, name); !errors.Is(err, ErrPhotoNotFound) {
			t.Fatalf("expected ErrPhotoNotFound for %q, got %v", name, err)
		}
	}
}

func TestPhotoStorageMissingFile(t *testing.T) {
	storage := NewPhotoStorage(t.TempDir())
	if _, err := storage.Resolve(7, "missing.png"); !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}
}
