package service

import (
	"context"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/repository"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	bicycleRepo     repository.BicycleRepository
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, bicycleRepo repository.BicycleRepository) MaintenanceService {
	return &maintenanceService{maintenanceRepo: maintenanceRepo, bicycleRepo: bicycleRepo}
}

// CreateLog records history only. It deliberately does not move the bicycle
// into maintenance status; admins do that through the status override.
func (s *maintenanceService) CreateLog(ctx context.Context, log *domain.MaintenanceLog) error {
	if _, err := s.bicycleRepo.GetByID(ctx, log.BicycleID); err != nil {
		return err
	}
	if log.MaintenanceDate.IsZero() {
		log.MaintenanceDate = time.Now()
	}
	if err := s.maintenanceRepo.Create(ctx, log); err != nil {
		return err
	}
	logger.Info("Maintenance log created", "log_id", log.ID, "bicycle_id", log.BicycleID, "type", log.MaintenanceType)
	return nil
}

func (s *maintenanceService) GetLog(ctx context.Context, id int32) (*domain.MaintenanceLog, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) UpdateLog(ctx context.Context, log *domain.MaintenanceLog) error {
	existing, err := s.maintenanceRepo.GetByID(ctx, log.ID)
	if err != nil {
		return err
	}
	if existing.Completed {
		return domain.ErrMaintenanceDone
	}
	return s.maintenanceRepo.Update(ctx, log)
}

func (s *maintenanceService) DeleteLog(ctx context.Context, id int32) error {
	return s.maintenanceRepo.Delete(ctx, id)
}

func (s *maintenanceService) ListLogs(ctx context.Context, page, pageSize int32) ([]domain.MaintenanceLog, int32, error) {
	return s.maintenanceRepo.List(ctx, page, pageSize)
}

func (s *maintenanceService) ListByBicycle(ctx context.Context, bicycleID int32) ([]domain.MaintenanceLog, error) {
	return s.maintenanceRepo.ListByBicycle(ctx, bicycleID)
}

func (s *maintenanceService) ListUpcoming(ctx context.Context) ([]domain.MaintenanceLog, error) {
	return s.maintenanceRepo.ListUpcoming(ctx, time.Now())
}

func (s *maintenanceService) ListOverdue(ctx context.Context) ([]domain.MaintenanceLog, error) {
	return s.maintenanceRepo.ListOverdue(ctx, time.Now())
}

func (s *maintenanceService) CompleteLog(ctx context.Context, id int32) (*domain.MaintenanceLog, error) {
	if err := s.maintenanceRepo.Complete(ctx, id, time.Now()); err != nil {
		return nil, err
	}
	log, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("Maintenance completed", "log_id", id, "bicycle_id", log.BicycleID)
	return log, nil
}
