package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MockBackend stores photos on the local filesystem and hands out URLs that
// point back at our own upload/download endpoints. Good enough for
// development and tests; production uses the firebase backend.
type MockBackend struct {
	baseURL   string
	photosDir string
}

func NewMockBackend(baseURL, uploadsDir string) (*MockBackend, error) {
	photosDir := filepath.Join(uploadsDir, "photos")
	if err := os.MkdirAll(photosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create photos directory: %w", err)
	}
	return &MockBackend{baseURL: baseURL, photosDir: photosDir}, nil
}

func (m *MockBackend) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	token := uuid.New().String()
	// The key rides along as a query parameter so the upload handler knows
	// where to put the bytes.
	return fmt.Sprintf("%s/api/v1/uploads/%s?key=%s", m.baseURL, token, key), nil
}

func (m *MockBackend) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/downloads/%s?key=%s", m.baseURL, hashKey(key), key), nil
}

func (m *MockBackend) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(filepath.Join(m.photosDir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (m *MockBackend) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(m.photosDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (m *MockBackend) SaveFile(key string, reader io.Reader) error {
	fullPath := filepath.Join(m.photosDir, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()
	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (m *MockBackend) ReadFile(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(m.photosDir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:16])
}
