package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, user_id, bicycle_id, start_date, end_date, start_longitude, start_latitude,
       end_longitude, end_latitude, status, estimated_cost, duration_in_hours, discount_percentage,
       discount, total_cost, final_cost, created_on, updated_on`

func (r *rentalRepository) CreateActive(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Flip the bicycle first: the conditional update is the gate that makes
	// two concurrent rent attempts on the same bicycle resolve to exactly
	// one winner.
	res, err := tx.ExecContext(ctx,
		`UPDATE bicycles SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`,
		domain.BicycleStatusRented, time.Now(), rt.BicycleID, domain.BicycleStatusAvailable)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBicycleNotAvailable
	}

	lng, lat := locationArgs(rt.StartLocation)
	query := `INSERT INTO rentals (user_id, bicycle_id, start_date, start_longitude, start_latitude,
	          status, estimated_cost, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, query, rt.UserID, rt.BicycleID, rt.StartDate, lng, lat,
		rt.Status, rt.EstimatedCost, time.Now()).Scan(&rt.ID)
	if err != nil {
		// rentals_one_active_per_user is a partial unique index on
		// user_id WHERE status = 'active'.
		if isUniqueViolation(err, "rentals_one_active_per_user") {
			return domain.ErrUserHasActiveRental
		}
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) Complete(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lng, lat := locationArgs(rt.EndLocation)
	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status=$1, end_date=$2, end_longitude=$3, end_latitude=$4,
		 duration_in_hours=$5, discount_percentage=$6, discount=$7, total_cost=$8, final_cost=$9, updated_on=$10
		 WHERE id=$11 AND status=$12`,
		domain.RentalStatusCompleted, rt.EndDate, lng, lat,
		rt.DurationInHours, rt.DiscountPercentage, rt.Discount, rt.TotalCost, rt.FinalCost,
		time.Now(), rt.ID, domain.RentalStatusActive)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRentalNotActive
	}

	if err := r.freeBicycle(ctx, tx, rt.BicycleID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) Cancel(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`,
		domain.RentalStatusCancelled, time.Now(), rt.ID, domain.RentalStatusActive)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRentalNotActive
	}

	if err := r.freeBicycle(ctx, tx, rt.BicycleID); err != nil {
		return err
	}
	return tx.Commit()
}

// freeBicycle flips rented→available inside the caller's transaction. The
// flip is conditional so a bicycle an admin retired mid-rental stays retired;
// the rental row is still closed.
func (r *rentalRepository) freeBicycle(ctx context.Context, tx *sql.Tx, bicycleID int32) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE bicycles SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`,
		domain.BicycleStatusAvailable, time.Now(), bicycleID, domain.BicycleStatusRented)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrRentalNotFound
	}
	return rt, err
}

func (r *rentalRepository) GetActiveByUser(ctx context.Context, userID int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1 AND status = $2`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, userID, domain.RentalStatusActive))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rt, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var startLng, startLat, endLng, endLat sql.NullFloat64
	err := row.Scan(&rt.ID, &rt.UserID, &rt.BicycleID, &rt.StartDate, &rt.EndDate,
		&startLng, &startLat, &endLng, &endLat, &rt.Status, &rt.EstimatedCost,
		&rt.DurationInHours, &rt.DiscountPercentage, &rt.Discount, &rt.TotalCost, &rt.FinalCost,
		&rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	rt.StartLocation = scanLocation(startLng, startLat)
	rt.EndLocation = scanLocation(endLng, endLat)
	return rt, nil
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, "WHERE user_id = $1", []interface{}{userID}, status, page, pageSize)
}

func (r *rentalRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, "", nil, status, page, pageSize)
}

func (r *rentalRepository) list(ctx context.Context, where string, args []interface{}, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalColumns + ` FROM rentals ` + where

	argIdx := len(args) + 1
	if status != "" {
		if where == "" {
			query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		} else {
			query += fmt.Sprintf(" AND status = $%d", argIdx)
		}
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}
