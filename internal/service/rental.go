package service

import (
	"context"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/repository"
	"bicirent-backend/internal/utils"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	bicycleRepo repository.BicycleRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	bicycleRepo repository.BicycleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		bicycleRepo: bicycleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (s *rentalService) Rent(ctx context.Context, userID, bicycleID int32, startLocation *domain.Location) (*domain.Rental, error) {
	// Friendly precheck; the partial unique index on rentals is the real
	// guard against a racing second rental by the same user.
	active, err := s.rentalRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrUserHasActiveRental
	}

	bicycle, err := s.bicycleRepo.GetByID(ctx, bicycleID)
	if err != nil {
		return nil, err
	}
	if !bicycle.IsRentable() {
		return nil, domain.ErrBicycleNotAvailable
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The estimate shown to the renter assumes a one-hour ride; the final
	// charge is computed at return time from the real duration.
	estimate := utils.CalculateRentalCost(bicycle.RentalPricePerHour, 1, user.SocioeconomicStratum)

	rental := &domain.Rental{
		UserID:        userID,
		BicycleID:     bicycleID,
		StartDate:     time.Now(),
		StartLocation: startLocation,
		Status:        domain.RentalStatusActive,
		EstimatedCost: estimate.Total,
	}
	if err := s.rentalRepo.CreateActive(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental opened", "rental_id", rental.ID, "user_id", userID, "bicycle_id", bicycleID)
	return rental, nil
}

func (s *rentalService) Return(ctx context.Context, userID, rentalID int32, endLocation *domain.Location) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}

	bicycle, err := s.bicycleRepo.GetByID(ctx, rental.BicycleID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hours := utils.BillableHours(rental.StartDate, now)
	cost := utils.CalculateRentalCost(bicycle.RentalPricePerHour, hours, user.SocioeconomicStratum)

	rental.EndDate = &now
	rental.EndLocation = endLocation
	rental.DurationInHours = &hours
	rental.DiscountPercentage = &cost.DiscountPercentage
	rental.Discount = &cost.Discount
	rental.TotalCost = &cost.Total
	rental.FinalCost = &cost.Total
	rental.Status = domain.RentalStatusCompleted

	if err := s.rentalRepo.Complete(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental completed", "rental_id", rental.ID, "user_id", userID,
		"bicycle_id", rental.BicycleID, "hours", hours, "total", cost.Total)

	if err := s.emailSvc.SendRentalReceipt(ctx, user.Email, user.FirstName, bicycle.Code, hours, cost); err != nil {
		logger.Warn("Failed to send rental receipt", "rental_id", rental.ID, "error", err)
	}

	return rental, nil
}

func (s *rentalService) Cancel(ctx context.Context, userID, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}

	rental.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Cancel(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental cancelled", "rental_id", rental.ID, "user_id", userID, "bicycle_id", rental.BicycleID)
	return rental, nil
}

func (s *rentalService) GetActiveRental(ctx context.Context, userID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetActiveByUser(ctx, userID)
}

func (s *rentalService) GetRental(ctx context.Context, userID int32, isAdmin bool, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && rental.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return rental, nil
}

func (s *rentalService) ListMyRentals(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.ListByUser(ctx, userID, status, page, pageSize)
}

func (s *rentalService) ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.List(ctx, status, page, pageSize)
}

func (s *rentalService) EstimateCost(ctx context.Context, userID, bicycleID, hours int32) (*utils.CostBreakdown, error) {
	if hours < 1 {
		hours = 1
	}
	bicycle, err := s.bicycleRepo.GetByID(ctx, bicycleID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cost := utils.CalculateRentalCost(bicycle.RentalPricePerHour, hours, user.SocioeconomicStratum)
	return &cost, nil
}
