package service

import (
	"context"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/repository"
)

type bicycleService struct {
	bicycleRepo  repository.BicycleRepository
	regionalRepo repository.RegionalRepository
}

func NewBicycleService(bicycleRepo repository.BicycleRepository, regionalRepo repository.RegionalRepository) BicycleService {
	return &bicycleService{bicycleRepo: bicycleRepo, regionalRepo: regionalRepo}
}

func (s *bicycleService) CreateBicycle(ctx context.Context, bicycle *domain.Bicycle) error {
	if _, err := s.regionalRepo.GetByID(ctx, bicycle.RegionalID); err != nil {
		return err
	}
	if bicycle.Status == "" {
		bicycle.Status = domain.BicycleStatusAvailable
	}
	if err := s.bicycleRepo.Create(ctx, bicycle); err != nil {
		return err
	}
	logger.Info("Bicycle created", "bicycle_id", bicycle.ID, "code", bicycle.Code)
	return nil
}

func (s *bicycleService) GetBicycle(ctx context.Context, id int32) (*domain.Bicycle, error) {
	return s.bicycleRepo.GetByID(ctx, id)
}

func (s *bicycleService) GetBicycleByCode(ctx context.Context, code string) (*domain.Bicycle, error) {
	return s.bicycleRepo.GetByCode(ctx, code)
}

func (s *bicycleService) UpdateBicycle(ctx context.Context, bicycle *domain.Bicycle) error {
	// Status changes go through SetStatus so the transition table and the
	// compare-and-set apply; a plain update never touches the status column.
	return s.bicycleRepo.Update(ctx, bicycle)
}

func (s *bicycleService) DeleteBicycle(ctx context.Context, id int32) error {
	return s.bicycleRepo.Delete(ctx, id)
}

func (s *bicycleService) ListBicycles(ctx context.Context, status domain.BicycleStatus, regionalID, page, pageSize int32) ([]domain.Bicycle, int32, error) {
	return s.bicycleRepo.List(ctx, status, regionalID, page, pageSize)
}

func (s *bicycleService) ListAvailable(ctx context.Context, regionalID int32) ([]domain.Bicycle, error) {
	return s.bicycleRepo.ListAvailable(ctx, regionalID)
}

func (s *bicycleService) SetStatus(ctx context.Context, id int32, newStatus domain.BicycleStatus) (*domain.Bicycle, error) {
	bicycle, err := s.bicycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.ValidStatusTransition(bicycle.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}

	ok, err := s.bicycleRepo.CompareAndSetStatus(ctx, id, bicycle.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		// A concurrent writer moved the bicycle between our read and the
		// swap. Report it like any other unsatisfied precondition.
		return nil, domain.ErrInvalidTransition
	}

	logger.Info("Bicycle status changed", "bicycle_id", id, "from", bicycle.Status, "to", newStatus)
	bicycle.Status = newStatus
	return bicycle, nil
}
