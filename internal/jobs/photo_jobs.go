package jobs

import (
	"context"

	"bicirent-backend/internal/logger"
)

// CleanupExpiredPhotos drops pending photo rows whose upload window lapsed
// without a confirmation.
func (jr *JobRunner) CleanupExpiredPhotos() {
	jr.runWithRecovery("CleanupExpiredPhotos", func() {
		ctx := context.Background()

		deleted, err := jr.store.BicycleRepository.DeleteExpiredPendingPhotos(ctx)
		if err != nil {
			logger.Error("Failed to clean up expired photos", "error", err)
			return
		}
		logger.Info("Cleaned up expired pending photos", "count", deleted)
	})
}
