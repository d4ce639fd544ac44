package service

import (
	"context"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type regionalService struct {
	regionalRepo repository.RegionalRepository
}

func NewRegionalService(regionalRepo repository.RegionalRepository) RegionalService {
	return &regionalService{regionalRepo: regionalRepo}
}

func (s *regionalService) CreateRegional(ctx context.Context, regional *domain.Regional) error {
	return s.regionalRepo.Create(ctx, regional)
}

func (s *regionalService) GetRegional(ctx context.Context, id int32) (*domain.Regional, error) {
	return s.regionalRepo.GetByID(ctx, id)
}

func (s *regionalService) ListRegionals(ctx context.Context) ([]domain.Regional, error) {
	return s.regionalRepo.List(ctx)
}
