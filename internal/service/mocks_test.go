package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/utils"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}

type MockRegionalRepo struct{ mock.Mock }

func (m *MockRegionalRepo) Create(ctx context.Context, regional *domain.Regional) error {
	return m.Called(ctx, regional).Error(0)
}
func (m *MockRegionalRepo) GetByID(ctx context.Context, id int32) (*domain.Regional, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Regional), args.Error(1)
}
func (m *MockRegionalRepo) List(ctx context.Context) ([]domain.Regional, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Regional), args.Error(1)
}

type MockBicycleRepo struct{ mock.Mock }

func (m *MockBicycleRepo) Create(ctx context.Context, bicycle *domain.Bicycle) error {
	return m.Called(ctx, bicycle).Error(0)
}
func (m *MockBicycleRepo) GetByID(ctx context.Context, id int32) (*domain.Bicycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bicycle), args.Error(1)
}
func (m *MockBicycleRepo) GetByCode(ctx context.Context, code string) (*domain.Bicycle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bicycle), args.Error(1)
}
func (m *MockBicycleRepo) Update(ctx context.Context, bicycle *domain.Bicycle) error {
	return m.Called(ctx, bicycle).Error(0)
}
func (m *MockBicycleRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockBicycleRepo) List(ctx context.Context, status domain.BicycleStatus, regionalID, page, pageSize int32) ([]domain.Bicycle, int32, error) {
	args := m.Called(ctx, status, regionalID, page, pageSize)
	return args.Get(0).([]domain.Bicycle), args.Get(1).(int32), args.Error(2)
}
func (m *MockBicycleRepo) ListAvailable(ctx context.Context, regionalID int32) ([]domain.Bicycle, error) {
	args := m.Called(ctx, regionalID)
	return args.Get(0).([]domain.Bicycle), args.Error(1)
}
func (m *MockBicycleRepo) CompareAndSetStatus(ctx context.Context, id int32, from, to domain.BicycleStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockBicycleRepo) CreatePhoto(ctx context.Context, photo *domain.BicyclePhoto) error {
	return m.Called(ctx, photo).Error(0)
}
func (m *MockBicycleRepo) GetPhotoByID(ctx context.Context, photoID int32) (*domain.BicyclePhoto, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BicyclePhoto), args.Error(1)
}
func (m *MockBicycleRepo) GetPhotos(ctx context.Context, bicycleID int32) ([]domain.BicyclePhoto, error) {
	args := m.Called(ctx, bicycleID)
	return args.Get(0).([]domain.BicyclePhoto), args.Error(1)
}
func (m *MockBicycleRepo) ConfirmPhoto(ctx context.Context, photoID int32, fileSize int64) error {
	return m.Called(ctx, photoID, fileSize).Error(0)
}
func (m *MockBicycleRepo) DeletePhoto(ctx context.Context, photoID int32) error {
	return m.Called(ctx, photoID).Error(0)
}
func (m *MockBicycleRepo) SetPrimaryPhoto(ctx context.Context, bicycleID, photoID int32) error {
	return m.Called(ctx, bicycleID, photoID).Error(0)
}
func (m *MockBicycleRepo) DeleteExpiredPendingPhotos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockRentalRepo struct{ mock.Mock }

func (m *MockRentalRepo) CreateActive(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *MockRentalRepo) Complete(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *MockRentalRepo) Cancel(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetActiveByUser(ctx context.Context, userID int32) (*domain.Rental, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

type MockEventRepo struct{ mock.Mock }

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}
func (m *MockEventRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockEventRepo) List(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Event), args.Get(1).(int32), args.Error(2)
}
func (m *MockEventRepo) ListUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListByParticipant(ctx context.Context, userID int32) ([]domain.Event, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) Register(ctx context.Context, eventID, userID int32, now time.Time) error {
	return m.Called(ctx, eventID, userID, now).Error(0)
}
func (m *MockEventRepo) Unregister(ctx context.Context, eventID, userID int32) error {
	return m.Called(ctx, eventID, userID).Error(0)
}
func (m *MockEventRepo) MarkAttendance(ctx context.Context, eventID, userID int32) error {
	return m.Called(ctx, eventID, userID).Error(0)
}
func (m *MockEventRepo) ListParticipants(ctx context.Context, eventID int32) ([]domain.EventParticipant, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.EventParticipant), args.Error(1)
}

type MockMaintenanceRepo struct{ mock.Mock }

func (m *MockMaintenanceRepo) Create(ctx context.Context, log *domain.MaintenanceLog) error {
	return m.Called(ctx, log).Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.MaintenanceLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceLog), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, log *domain.MaintenanceLog) error {
	return m.Called(ctx, log).Error(0)
}
func (m *MockMaintenanceRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockMaintenanceRepo) List(ctx context.Context, page, pageSize int32) ([]domain.MaintenanceLog, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.MaintenanceLog), args.Get(1).(int32), args.Error(2)
}
func (m *MockMaintenanceRepo) ListByBicycle(ctx context.Context, bicycleID int32) ([]domain.MaintenanceLog, error) {
	args := m.Called(ctx, bicycleID)
	return args.Get(0).([]domain.MaintenanceLog), args.Error(1)
}
func (m *MockMaintenanceRepo) ListUpcoming(ctx context.Context, now time.Time) ([]domain.MaintenanceLog, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.MaintenanceLog), args.Error(1)
}
func (m *MockMaintenanceRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.MaintenanceLog, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.MaintenanceLog), args.Error(1)
}
func (m *MockMaintenanceRepo) Complete(ctx context.Context, id int32, now time.Time) error {
	return m.Called(ctx, id, now).Error(0)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendRentalReceipt(ctx context.Context, email, name, bicycleCode string, hours int32, cost utils.CostBreakdown) error {
	return m.Called(ctx, email, name, bicycleCode, hours, cost).Error(0)
}
func (m *MockEmailService) SendEventRegistrationConfirmation(ctx context.Context, email, name, eventName string, eventDate time.Time) error {
	return m.Called(ctx, email, name, eventName, eventDate).Error(0)
}
func (m *MockEmailService) SendMaintenanceReminder(ctx context.Context, email, bicycleCode string, due time.Time, overdue bool) error {
	return m.Called(ctx, email, bicycleCode, due, overdue).Error(0)
}
