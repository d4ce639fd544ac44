package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/repository"
	"bicirent-backend/internal/storage"
)

const (
	uploadURLExpiry   = 15 * time.Minute
	downloadURLExpiry = 1 * time.Hour
	pendingPhotoTTL   = 1 * time.Hour
)

type photoService struct {
	bicycleRepo repository.BicycleRepository
	backend     storage.Backend
}

func NewPhotoService(bicycleRepo repository.BicycleRepository, backend storage.Backend) PhotoService {
	return &photoService{bicycleRepo: bicycleRepo, backend: backend}
}

// GetUploadURL reserves a pending photo row and hands back a presigned URL.
// The row expires if the client never confirms; a cron job sweeps those up.
func (s *photoService) GetUploadURL(ctx context.Context, userID, bicycleID int32, fileName, contentType string, isPrimary bool) (*domain.BicyclePhoto, string, error) {
	if _, err := s.bicycleRepo.GetByID(ctx, bicycleID); err != nil {
		return nil, "", err
	}

	key := fmt.Sprintf("bicycles/%d/%s%s", bicycleID, uuid.New().String(), filepath.Ext(fileName))
	expiresAt := time.Now().Add(pendingPhotoTTL)

	photo := &domain.BicyclePhoto{
		BicycleID: bicycleID,
		UserID:    userID,
		FileName:  fileName,
		FilePath:  key,
		MimeType:  contentType,
		IsPrimary: isPrimary,
		Status:    "PENDING",
		ExpiresAt: &expiresAt,
	}
	if err := s.bicycleRepo.CreatePhoto(ctx, photo); err != nil {
		return nil, "", err
	}

	uploadURL, err := s.backend.GenerateUploadURL(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, "", err
	}
	return photo, uploadURL, nil
}

func (s *photoService) ConfirmUpload(ctx context.Context, userID, photoID int32) (*domain.BicyclePhoto, error) {
	photo, err := s.bicycleRepo.GetPhotoByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	if photo.Status != "PENDING" {
		return nil, domain.ErrPhotoNotFound
	}

	exists, size, err := s.backend.FileExists(ctx, photo.FilePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("uploaded file not found in storage: %s", photo.FilePath)
	}

	if err := s.bicycleRepo.ConfirmPhoto(ctx, photoID, size); err != nil {
		return nil, err
	}
	if photo.IsPrimary {
		if err := s.bicycleRepo.SetPrimaryPhoto(ctx, photo.BicycleID, photoID); err != nil {
			return nil, err
		}
	}

	logger.Info("Photo confirmed", "photo_id", photoID, "bicycle_id", photo.BicycleID, "size", size)
	return s.bicycleRepo.GetPhotoByID(ctx, photoID)
}

func (s *photoService) GetDownloadURL(ctx context.Context, photoID int32, thumbnail bool) (string, error) {
	photo, err := s.bicycleRepo.GetPhotoByID(ctx, photoID)
	if err != nil {
		return "", err
	}
	if photo.Status != "CONFIRMED" {
		return "", domain.ErrPhotoNotFound
	}

	key := photo.FilePath
	if thumbnail && photo.ThumbnailPath != "" {
		key = photo.ThumbnailPath
	}
	return s.backend.GenerateDownloadURL(ctx, key, downloadURLExpiry)
}

func (s *photoService) ListPhotos(ctx context.Context, bicycleID int32) ([]domain.BicyclePhoto, error) {
	return s.bicycleRepo.GetPhotos(ctx, bicycleID)
}

// DeletePhoto does not check ownership; the admin route guard is the
// authorization boundary here.
func (s *photoService) DeletePhoto(ctx context.Context, userID, photoID int32) error {
	photo, err := s.bicycleRepo.GetPhotoByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := s.bicycleRepo.DeletePhoto(ctx, photoID); err != nil {
		return err
	}
	// The database row is the source of truth; a failed blob delete just
	// leaves an orphan for the cleanup job.
	if err := s.backend.DeleteFile(ctx, photo.FilePath); err != nil {
		logger.Warn("Failed to delete photo blob", "photo_id", photoID, "key", photo.FilePath, "error", err)
	}
	return nil
}

func (s *photoService) SetPrimaryPhoto(ctx context.Context, userID, bicycleID, photoID int32) error {
	photo, err := s.bicycleRepo.GetPhotoByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.BicycleID != bicycleID || photo.Status != "CONFIRMED" {
		return domain.ErrPhotoNotFound
	}
	return s.bicycleRepo.SetPrimaryPhoto(ctx, bicycleID, photoID)
}
