package service

import (
	"context"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, user *domain.User, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, firstName, lastName, phone string, stratum *int) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
}

type BicycleService interface {
	CreateBicycle(ctx context.Context, bicycle *domain.Bicycle) error
	GetBicycle(ctx context.Context, id int32) (*domain.Bicycle, error)
	GetBicycleByCode(ctx context.Context, code string) (*domain.Bicycle, error)
	UpdateBicycle(ctx context.Context, bicycle *domain.Bicycle) error
	DeleteBicycle(ctx context.Context, id int32) error
	ListBicycles(ctx context.Context, status domain.BicycleStatus, regionalID, page, pageSize int32) ([]domain.Bicycle, int32, error)
	ListAvailable(ctx context.Context, regionalID int32) ([]domain.Bicycle, error)

	// SetStatus is the admin override. It still goes through the allowed
	// transition table and the storage-level compare-and-set.
	SetStatus(ctx context.Context, id int32, newStatus domain.BicycleStatus) (*domain.Bicycle, error)
}

type RentalService interface {
	Rent(ctx context.Context, userID, bicycleID int32, startLocation *domain.Location) (*domain.Rental, error)
	Return(ctx context.Context, userID, rentalID int32, endLocation *domain.Location) (*domain.Rental, error)
	Cancel(ctx context.Context, userID, rentalID int32) (*domain.Rental, error)
	// GetActiveRental returns nil when the user has no active rental.
	GetActiveRental(ctx context.Context, userID int32) (*domain.Rental, error)
	GetRental(ctx context.Context, userID int32, isAdmin bool, rentalID int32) (*domain.Rental, error)
	ListMyRentals(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	// EstimateCost previews the charge for renting a bicycle for the given
	// number of hours, applying the caller's stratum discount.
	EstimateCost(ctx context.Context, userID, bicycleID, hours int32) (*utils.CostBreakdown, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, id int32) error
	ListEvents(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error)
	ListUpcoming(ctx context.Context) ([]domain.Event, error)
	ListMyEvents(ctx context.Context, userID int32) ([]domain.Event, error)
	ListParticipants(ctx context.Context, eventID int32) ([]domain.EventParticipant, error)

	Register(ctx context.Context, eventID, userID int32) error
	CancelRegistration(ctx context.Context, eventID, userID int32) error
	MarkAttendance(ctx context.Context, eventID, userID int32) error
}

type MaintenanceService interface {
	CreateLog(ctx context.Context, log *domain.MaintenanceLog) error
	GetLog(ctx context.Context, id int32) (*domain.MaintenanceLog, error)
	UpdateLog(ctx context.Context, log *domain.MaintenanceLog) error
	DeleteLog(ctx context.Context, id int32) error
	ListLogs(ctx context.Context, page, pageSize int32) ([]domain.MaintenanceLog, int32, error)
	ListByBicycle(ctx context.Context, bicycleID int32) ([]domain.MaintenanceLog, error)
	ListUpcoming(ctx context.Context) ([]domain.MaintenanceLog, error)
	ListOverdue(ctx context.Context) ([]domain.MaintenanceLog, error)
	// CompleteLog marks the entry done and frees the bicycle from
	// maintenance status.
	CompleteLog(ctx context.Context, id int32) (*domain.MaintenanceLog, error)
}

type RegionalService interface {
	CreateRegional(ctx context.Context, regional *domain.Regional) error
	GetRegional(ctx context.Context, id int32) (*domain.Regional, error)
	ListRegionals(ctx context.Context) ([]domain.Regional, error)
}

type ReportService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	MonthlyRevenue(ctx context.Context, year int) ([]domain.RevenueReport, error)
	StratumReport(ctx context.Context) ([]domain.UserStratumReport, error)
	BicycleStats(ctx context.Context) ([]domain.BicycleRentalStats, error)
}

type PhotoService interface {
	GetUploadURL(ctx context.Context, userID, bicycleID int32, fileName, contentType string, isPrimary bool) (*domain.BicyclePhoto, string, error)
	ConfirmUpload(ctx context.Context, userID, photoID int32) (*domain.BicyclePhoto, error)
	GetDownloadURL(ctx context.Context, photoID int32, thumbnail bool) (string, error)
	ListPhotos(ctx context.Context, bicycleID int32) ([]domain.BicyclePhoto, error)
	DeletePhoto(ctx context.Context, userID, photoID int32) error
	SetPrimaryPhoto(ctx context.Context, userID, bicycleID, photoID int32) error
}

type EmailService interface {
	SendRentalReceipt(ctx context.Context, email, name, bicycleCode string, hours int32, cost utils.CostBreakdown) error
	SendEventRegistrationConfirmation(ctx context.Context, email, name, eventName string, eventDate time.Time) error
	SendMaintenanceReminder(ctx context.Context, email, bicycleCode string, due time.Time, overdue bool) error
}
