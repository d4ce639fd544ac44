package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.RegionalRepository
	repository.BicycleRepository
	repository.RentalRepository
	repository.EventRepository
	repository.MaintenanceRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		RegionalRepository:    NewRegionalRepository(db),
		BicycleRepository:     NewBicycleRepository(db),
		RentalRepository:      NewRentalRepository(db),
		EventRepository:       NewEventRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique_violation,
// optionally narrowed to one constraint name.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// locationArgs flattens an optional point into two nullable columns.
func locationArgs(loc *domain.Location) (lng, lat sql.NullFloat64) {
	if loc != nil {
		lng = sql.NullFloat64{Float64: loc.Longitude, Valid: true}
		lat = sql.NullFloat64{Float64: loc.Latitude, Valid: true}
	}
	return lng, lat
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func scanLocation(lng, lat sql.NullFloat64) *domain.Location {
	if !lng.Valid || !lat.Valid {
		return nil
	}
	return &domain.Location{Longitude: lng.Float64, Latitude: lat.Float64}
}
