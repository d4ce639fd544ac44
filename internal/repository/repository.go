package repository

import (
	"context"
	"time"

	"bicirent-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
}

type RegionalRepository interface {
	Create(ctx context.Context, regional *domain.Regional) error
	GetByID(ctx context.Context, id int32) (*domain.Regional, error)
	List(ctx context.Context) ([]domain.Regional, error)
}

type BicycleRepository interface {
	Create(ctx context.Context, bicycle *domain.Bicycle) error
	GetByID(ctx context.Context, id int32) (*domain.Bicycle, error)
	GetByCode(ctx context.Context, code string) (*domain.Bicycle, error)
	Update(ctx context.Context, bicycle *domain.Bicycle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.BicycleStatus, regionalID, page, pageSize int32) ([]domain.Bicycle, int32, error)
	ListAvailable(ctx context.Context, regionalID int32) ([]domain.Bicycle, error)

	// CompareAndSetStatus flips the status only if the bicycle is still in
	// the expected state. Returns false when a concurrent writer won the
	// race (zero rows matched).
	CompareAndSetStatus(ctx context.Context, id int32, from, to domain.BicycleStatus) (bool, error)

	// Photo management (pending + confirmed)
	CreatePhoto(ctx context.Context, photo *domain.BicyclePhoto) error
	GetPhotoByID(ctx context.Context, photoID int32) (*domain.BicyclePhoto, error)
	GetPhotos(ctx context.Context, bicycleID int32) ([]domain.BicyclePhoto, error)
	ConfirmPhoto(ctx context.Context, photoID int32, fileSize int64) error
	DeletePhoto(ctx context.Context, photoID int32) error
	SetPrimaryPhoto(ctx context.Context, bicycleID, photoID int32) error
	DeleteExpiredPendingPhotos(ctx context.Context) (int64, error)
}

type RentalRepository interface {
	// CreateActive atomically flips the bicycle available→rented and inserts
	// the rental row. Fails with domain.ErrBicycleNotAvailable when the flip
	// matches no row and domain.ErrUserHasActiveRental when the renter
	// already holds an active rental.
	CreateActive(ctx context.Context, rental *domain.Rental) error

	// Complete atomically marks an active rental completed, stores the cost
	// fields carried on the rental, and frees the bicycle. Fails with
	// domain.ErrRentalNotActive on a concurrent double return.
	Complete(ctx context.Context, rental *domain.Rental) error

	// Cancel atomically marks an active rental cancelled and frees the
	// bicycle. No cost fields are written.
	Cancel(ctx context.Context, rental *domain.Rental) error

	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// GetActiveByUser returns nil, nil when the user has no active rental.
	GetActiveByUser(ctx context.Context, userID int32) (*domain.Rental, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error)
	ListByParticipant(ctx context.Context, userID int32) ([]domain.Event, error)

	// Register atomically appends a participant and increments the counter.
	// The counter update is guarded by status, date and capacity so two
	// racing registrations at the last open slot yield exactly one success.
	Register(ctx context.Context, eventID, userID int32, now time.Time) error
	Unregister(ctx context.Context, eventID, userID int32) error
	MarkAttendance(ctx context.Context, eventID, userID int32) error
	ListParticipants(ctx context.Context, eventID int32) ([]domain.EventParticipant, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, log *domain.MaintenanceLog) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceLog, error)
	Update(ctx context.Context, log *domain.MaintenanceLog) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.MaintenanceLog, int32, error)
	ListByBicycle(ctx context.Context, bicycleID int32) ([]domain.MaintenanceLog, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]domain.MaintenanceLog, error)
	ListOverdue(ctx context.Context, now time.Time) ([]domain.MaintenanceLog, error)

	// Complete atomically marks the log completed and flips the bicycle
	// maintenance→available.
	Complete(ctx context.Context, id int32, now time.Time) error
}

type ReportRepository interface {
	Dashboard(ctx context.Context, now time.Time) (*domain.DashboardStats, error)
	MonthlyRevenue(ctx context.Context, year int) ([]domain.RevenueReport, error)
	StratumReport(ctx context.Context) ([]domain.UserStratumReport, error)
	BicycleStats(ctx context.Context) ([]domain.BicycleRentalStats, error)
}
