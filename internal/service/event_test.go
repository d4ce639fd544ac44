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

func maxP(v int32) *int32 { return &v }

func TestEventService_Register(t *testing.T) {
	ctx := context.Background()
	tomorrow := time.Now().Add(24 * time.Hour)

	t.Run("registers and sends a confirmation", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewEventService(eventRepo, userRepo, emailSvc)

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{
			ID: 5, Name: "Sunday Ride", EventDate: tomorrow,
			Status: domain.EventStatusPublished, MaxParticipants: maxP(20), CurrentParticipants: 3,
		}, nil).Once()
		eventRepo.On("Register", ctx, int32(5), int32(7), mock.Anything).Return(nil).Once()
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{
			ID: 7, Email: "rider@test.com", FirstName: "Rider",
		}, nil).Once()
		emailSvc.On("SendEventRegistrationConfirmation", ctx, "rider@test.com", "Rider", "Sunday Ride", tomorrow).
			Return(nil).Once()

		err := svc.Register(ctx, 5, 7)
		assert.NoError(t, err)
		eventRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("rejects a draft event", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{
			ID: 5, EventDate: tomorrow, Status: domain.EventStatusDraft,
		}, nil).Once()

		err := svc.Register(ctx, 5, 7)
		assert.ErrorIs(t, err, domain.ErrEventNotPublished)
		eventRepo.AssertNotCalled(t, "Register")
	})

	t.Run("rejects a past event", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{
			ID: 5, EventDate: time.Now().Add(-time.Hour), Status: domain.EventStatusPublished,
		}, nil).Once()

		err := svc.Register(ctx, 5, 7)
		assert.ErrorIs(t, err, domain.ErrEventInPast)
	})

	t.Run("rejects a full event", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{
			ID: 5, EventDate: tomorrow, Status: domain.EventStatusPublished,
			MaxParticipants: maxP(10), CurrentParticipants: 10,
		}, nil).Once()

		err := svc.Register(ctx, 5, 7)
		assert.ErrorIs(t, err, domain.ErrEventFull)
	})

	t.Run("surfaces duplicate registration from the repository", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{
			ID: 5, EventDate: tomorrow, Status: domain.EventStatusPublished,
		}, nil).Once()
		eventRepo.On("Register", ctx, int32(5), int32(7), mock.Anything).
			Return(domain.ErrAlreadyRegistered).Once()

		err := svc.Register(ctx, 5, 7)
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("surfaces losing the last slot", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

		// The read sees one slot left; the guarded update then loses the race.
		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{
			ID: 5, EventDate: tomorrow, Status: domain.EventStatusPublished,
			MaxParticipants: maxP(10), CurrentParticipants: 9,
		}, nil).Once()
		eventRepo.On("Register", ctx, int32(5), int32(7), mock.Anything).
			Return(domain.ErrEventFull).Once()

		err := svc.Register(ctx, 5, 7)
		assert.ErrorIs(t, err, domain.ErrEventFull)
	})

	t.Run("registration succeeds even if the confirmation email fails", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewEventService(eventRepo, userRepo, emailSvc)

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{
			ID: 5, Name: "Sunday Ride", EventDate: tomorrow, Status: domain.EventStatusPublished,
		}, nil).Once()
		eventRepo.On("Register", ctx, int32(5), int32(7), mock.Anything).Return(nil).Once()
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Email: "r@test.com"}, nil).Once()
		emailSvc.On("SendEventRegistrationConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError).Once()

		err := svc.Register(ctx, 5, 7)
		assert.NoError(t, err)
	})
}

func TestEventService_CancelRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels an existing registration", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{ID: 5}, nil).Once()
		eventRepo.On("Unregister", ctx, int32(5), int32(7)).Return(nil).Once()

		assert.NoError(t, svc.CancelRegistration(ctx, 5, 7))
		eventRepo.AssertExpectations(t)
	})

	t.Run("surfaces an unknown registration", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

		eventRepo.On("GetByID", ctx, int32(5)).Return(&domain.Event{ID: 5}, nil).Once()
		eventRepo.On("Unregister", ctx, int32(5), int32(7)).Return(domain.ErrNotRegistered).Once()

		assert.ErrorIs(t, svc.CancelRegistration(ctx, 5, 7), domain.ErrNotRegistered)
	})
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	eventRepo := new(MockEventRepo)
	svc := service.NewEventService(eventRepo, new(MockUserRepo), new(MockEmailService))

	eventRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Status == domain.EventStatusDraft
	})).Return(nil).Once()

	err := svc.CreateEvent(ctx, &domain.Event{Name: "Night Ride", EventDate: time.Now().Add(48 * time.Hour)})
	assert.NoError(t, err)
	eventRepo.AssertExpectations(t)
}
