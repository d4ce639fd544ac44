package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/service"
)

func TestMaintenanceService_CreateLog(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a log without touching bicycle status", func(t *testing.T) {
		maintenanceRepo := new(MockMaintenanceRepo)
		bicycleRepo := new(MockBicycleRepo)
		svc := service.NewMaintenanceService(maintenanceRepo, bicycleRepo)

		bicycleRepo.On("GetByID", ctx, int32(3)).Return(&domain.Bicycle{
			ID: 3, Status: domain.BicycleStatusAvailable,
		}, nil).Once()
		maintenanceRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.MaintenanceLog) bool {
			return !l.Completed && !l.MaintenanceDate.IsZero()
		})).Return(nil).Once()

		err := svc.CreateLog(ctx, &domain.MaintenanceLog{
			BicycleID: 3, MaintenanceType: domain.MaintenanceTypePreventive,
		})
		assert.NoError(t, err)
		bicycleRepo.AssertNotCalled(t, "CompareAndSetStatus")
		maintenanceRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown bicycle", func(t *testing.T) {
		bicycleRepo := new(MockBicycleRepo)
		svc := service.NewMaintenanceService(new(MockMaintenanceRepo), bicycleRepo)

		bicycleRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrBicycleNotFound).Once()

		err := svc.CreateLog(ctx, &domain.MaintenanceLog{BicycleID: 99})
		assert.ErrorIs(t, err, domain.ErrBicycleNotFound)
	})
}

func TestMaintenanceService_CompleteLog(t *testing.T) {
	ctx := context.Background()

	t.Run("completes and returns the refreshed log", func(t *testing.T) {
		maintenanceRepo := new(MockMaintenanceRepo)
		svc := service.NewMaintenanceService(maintenanceRepo, new(MockBicycleRepo))

		now := time.Now()
		maintenanceRepo.On("Complete", ctx, int32(11), mock.Anything).Return(nil).Once()
		maintenanceRepo.On("GetByID", ctx, int32(11)).Return(&domain.MaintenanceLog{
			ID: 11, BicycleID: 3, Completed: true, CompletedOn: &now,
		}, nil).Once()

		log, err := svc.CompleteLog(ctx, 11)
		assert.NoError(t, err)
		assert.True(t, log.Completed)
		maintenanceRepo.AssertExpectations(t)
	})

	t.Run("surfaces a double completion", func(t *testing.T) {
		maintenanceRepo := new(MockMaintenanceRepo)
		svc := service.NewMaintenanceService(maintenanceRepo, new(MockBicycleRepo))

		maintenanceRepo.On("Complete", ctx, int32(11), mock.Anything).
			Return(domain.ErrMaintenanceDone).Once()

		_, err := svc.CompleteLog(ctx, 11)
		assert.ErrorIs(t, err, domain.ErrMaintenanceDone)
	})
}

func TestMaintenanceService_UpdateLog(t *testing.T) {
	ctx := context.Background()
	maintenanceRepo := new(MockMaintenanceRepo)
	svc := service.NewMaintenanceService(maintenanceRepo, new(MockBicycleRepo))

	maintenanceRepo.On("GetByID", ctx, int32(11)).Return(&domain.MaintenanceLog{
		ID: 11, Completed: true,
	}, nil).Once()

	err := svc.UpdateLog(ctx, &domain.MaintenanceLog{ID: 11, Description: "late edit"})
	assert.ErrorIs(t, err, domain.ErrMaintenanceDone)
	maintenanceRepo.AssertNotCalled(t, "Update")
}
