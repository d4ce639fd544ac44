package service

import (
	"context"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	emailSvc  EmailService
}

func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, emailSvc EmailService) EventService {
	return &eventService{eventRepo: eventRepo, userRepo: userRepo, emailSvc: emailSvc}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.Status == "" {
		event.Status = domain.EventStatusDraft
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return err
	}
	logger.Info("Event created", "event_id", event.ID, "name", event.Name, "status", event.Status)
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// UpdateEvent is the admin edit path. Setting the status here is an admin
// override; registrations remain gated by the published check on the
// registration path itself.
func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	return s.eventRepo.Update(ctx, event)
}

func (s *eventService) DeleteEvent(ctx context.Context, id int32) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	return s.eventRepo.List(ctx, status, page, pageSize)
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.ListUpcoming(ctx, time.Now())
}

func (s *eventService) ListMyEvents(ctx context.Context, userID int32) ([]domain.Event, error) {
	return s.eventRepo.ListByParticipant(ctx, userID)
}

func (s *eventService) ListParticipants(ctx context.Context, eventID int32) ([]domain.EventParticipant, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.eventRepo.ListParticipants(ctx, eventID)
}

func (s *eventService) Register(ctx context.Context, eventID, userID int32) error {
	now := time.Now()

	// Precheck for friendly rejections; the repository repeats these guards
	// atomically so a race still resolves to one winner.
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status != domain.EventStatusPublished {
		return domain.ErrEventNotPublished
	}
	if !event.EventDate.After(now) {
		return domain.ErrEventInPast
	}
	if event.IsFull() {
		return domain.ErrEventFull
	}

	if err := s.eventRepo.Register(ctx, eventID, userID, now); err != nil {
		return err
	}
	logger.Info("Event registration", "event_id", eventID, "user_id", userID)

	if user, uErr := s.userRepo.GetByID(ctx, userID); uErr == nil {
		if err := s.emailSvc.SendEventRegistrationConfirmation(ctx, user.Email, user.FirstName, event.Name, event.EventDate); err != nil {
			logger.Warn("Failed to send registration confirmation", "event_id", eventID, "error", err)
		}
	}
	return nil
}

// CancelRegistration has no timing restriction: participants may withdraw
// even from past events.
func (s *eventService) CancelRegistration(ctx context.Context, eventID, userID int32) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.Unregister(ctx, eventID, userID); err != nil {
		return err
	}
	logger.Info("Event registration cancelled", "event_id", eventID, "user_id", userID)
	return nil
}

func (s *eventService) MarkAttendance(ctx context.Context, eventID, userID int32) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}
	return s.eventRepo.MarkAttendance(ctx, eventID, userID)
}
