package postgres

import (
	"context"
	"database/sql"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, bicycle_id, maintenance_type, description, cost, performed_by,
       maintenance_date, next_maintenance_date, completed, completed_on, created_on, updated_on`

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceLog) error {
	query := `INSERT INTO maintenance_logs (bicycle_id, maintenance_type, description, cost, performed_by,
	          maintenance_date, next_maintenance_date, completed, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.BicycleID, m.MaintenanceType, m.Description, m.Cost,
		m.PerformedBy, m.MaintenanceDate, m.NextMaintenanceDate, time.Now()).Scan(&m.ID)
}

func scanMaintenance(row rowScanner) (*domain.MaintenanceLog, error) {
	m := &domain.MaintenanceLog{}
	var desc, performedBy sql.NullString
	err := row.Scan(&m.ID, &m.BicycleID, &m.MaintenanceType, &desc, &m.Cost, &performedBy,
		&m.MaintenanceDate, &m.NextMaintenanceDate, &m.Completed, &m.CompletedOn, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	m.Description = desc.String
	m.PerformedBy = performedBy.String
	return m, nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs WHERE id = $1`
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrMaintenanceNotFound
	}
	return m, err
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceLog) error {
	query := `UPDATE maintenance_logs SET maintenance_type=$1, description=$2, cost=$3, performed_by=$4,
	          maintenance_date=$5, next_maintenance_date=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, m.MaintenanceType, m.Description, m.Cost, m.PerformedBy,
		m.MaintenanceDate, m.NextMaintenanceDate, time.Now(), m.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMaintenanceNotFound
	}
	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMaintenanceNotFound
	}
	return nil
}

func (r *maintenanceRepository) List(ctx context.Context, page, pageSize int32) ([]domain.MaintenanceLog, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM maintenance_logs`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs
	          ORDER BY maintenance_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs, err := collectMaintenance(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, count, nil
}

func (r *maintenanceRepository) ListByBicycle(ctx context.Context, bicycleID int32) ([]domain.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs
	          WHERE bicycle_id = $1 ORDER BY maintenance_date DESC`
	rows, err := r.db.QueryContext(ctx, query, bicycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMaintenance(rows)
}

func (r *maintenanceRepository) ListUpcoming(ctx context.Context, now time.Time) ([]domain.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs
	          WHERE completed = false AND next_maintenance_date >= $1 ORDER BY next_maintenance_date`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMaintenance(rows)
}

func (r *maintenanceRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs
	          WHERE completed = false AND next_maintenance_date < $1 ORDER BY next_maintenance_date`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMaintenance(rows)
}

func collectMaintenance(rows *sql.Rows) ([]domain.MaintenanceLog, error) {
	var logs []domain.MaintenanceLog
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *m)
	}
	return logs, rows.Err()
}

func (r *maintenanceRepository) Complete(ctx context.Context, id int32, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var bicycleID int32
	err = tx.QueryRowContext(ctx,
		`UPDATE maintenance_logs SET completed = true, completed_on = $1, updated_on = $1
		 WHERE id = $2 AND completed = false RETURNING bicycle_id`, now, id).Scan(&bicycleID)
	if err == sql.ErrNoRows {
		// Either missing or already completed; look again to tell them apart.
		var exists bool
		if qErr := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM maintenance_logs WHERE id = $1)`, id).Scan(&exists); qErr != nil {
			return qErr
		}
		if !exists {
			return domain.ErrMaintenanceNotFound
		}
		return domain.ErrMaintenanceDone
	}
	if err != nil {
		return err
	}

	// This is the one place completing maintenance is coupled to bicycle
	// status. The flip stays conditional so bicycles that were never moved
	// into maintenance keep their current status.
	_, err = tx.ExecContext(ctx,
		`UPDATE bicycles SET status = $1, last_maintenance_date = $2, updated_on = $2
		 WHERE id = $3 AND status = $4`,
		domain.BicycleStatusAvailable, now, bicycleID, domain.BicycleStatusMaintenance)
	if err != nil {
		return err
	}

	return tx.Commit()
}
