package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type bicycleRepository struct {
	db *sql.DB
}

func NewBicycleRepository(db *sql.DB) repository.BicycleRepository {
	return &bicycleRepository{db: db}
}

const bicycleColumns = `id, code, brand, model, color, status, rental_price_per_hour, regional_id,
       longitude, latitude, purchase_date, last_maintenance_date, is_active, created_on, updated_on`

func (r *bicycleRepository) Create(ctx context.Context, b *domain.Bicycle) error {
	lng, lat := locationArgs(b.CurrentLocation)
	query := `INSERT INTO bicycles (code, brand, model, color, status, rental_price_per_hour, regional_id,
	          longitude, latitude, purchase_date, last_maintenance_date, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12, $12) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, b.Code, b.Brand, b.Model, b.Color, b.Status,
		b.RentalPricePerHour, b.RegionalID, lng, lat, b.PurchaseDate, b.LastMaintenanceDate, time.Now()).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err, "bicycles_code_key") {
			return domain.ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *bicycleRepository) scanOne(row *sql.Row) (*domain.Bicycle, error) {
	b := &domain.Bicycle{}
	var model sql.NullString
	var lng, lat sql.NullFloat64
	err := row.Scan(&b.ID, &b.Code, &b.Brand, &model, &b.Color, &b.Status, &b.RentalPricePerHour,
		&b.RegionalID, &lng, &lat, &b.PurchaseDate, &b.LastMaintenanceDate, &b.IsActive, &b.CreatedOn, &b.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrBicycleNotFound
	}
	if err != nil {
		return nil, err
	}
	b.Model = model.String
	b.CurrentLocation = scanLocation(lng, lat)
	return b, nil
}

func (r *bicycleRepository) GetByID(ctx context.Context, id int32) (*domain.Bicycle, error) {
	query := `SELECT ` + bicycleColumns + ` FROM bicycles WHERE id = $1 AND is_active = true`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *bicycleRepository) GetByCode(ctx context.Context, code string) (*domain.Bicycle, error) {
	query := `SELECT ` + bicycleColumns + ` FROM bicycles WHERE code = $1 AND is_active = true`
	return r.scanOne(r.db.QueryRowContext(ctx, query, code))
}

func (r *bicycleRepository) Update(ctx context.Context, b *domain.Bicycle) error {
	lng, lat := locationArgs(b.CurrentLocation)
	query := `UPDATE bicycles SET code=$1, brand=$2, model=$3, color=$4, rental_price_per_hour=$5,
	          regional_id=$6, longitude=$7, latitude=$8, purchase_date=$9, last_maintenance_date=$10, updated_on=$11
	          WHERE id=$12`
	res, err := r.db.ExecContext(ctx, query, b.Code, b.Brand, b.Model, b.Color, b.RentalPricePerHour,
		b.RegionalID, lng, lat, b.PurchaseDate, b.LastMaintenanceDate, time.Now(), b.ID)
	if err != nil {
		if isUniqueViolation(err, "bicycles_code_key") {
			return domain.ErrDuplicateCode
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBicycleNotFound
	}
	return nil
}

func (r *bicycleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bicycles SET is_active=false, updated_on=$1 WHERE id=$2`, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBicycleNotFound
	}
	return nil
}

func (r *bicycleRepository) List(ctx context.Context, status domain.BicycleStatus, regionalID, page, pageSize int32) ([]domain.Bicycle, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bicycleColumns + ` FROM bicycles WHERE is_active = true`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	if regionalID != 0 {
		query += fmt.Sprintf(" AND regional_id = $%d", argIdx)
		args = append(args, regionalID)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY code LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bicycles, err := scanBicycles(rows)
	if err != nil {
		return nil, 0, err
	}
	return bicycles, count, nil
}

func (r *bicycleRepository) ListAvailable(ctx context.Context, regionalID int32) ([]domain.Bicycle, error) {
	query := `SELECT ` + bicycleColumns + ` FROM bicycles WHERE is_active = true AND status = $1`
	args := []interface{}{domain.BicycleStatusAvailable}
	if regionalID != 0 {
		query += " AND regional_id = $2"
		args = append(args, regionalID)
	}
	query += " ORDER BY code"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBicycles(rows)
}

func scanBicycles(rows *sql.Rows) ([]domain.Bicycle, error) {
	var bicycles []domain.Bicycle
	for rows.Next() {
		var b domain.Bicycle
		var model sql.NullString
		var lng, lat sql.NullFloat64
		if err := rows.Scan(&b.ID, &b.Code, &b.Brand, &model, &b.Color, &b.Status, &b.RentalPricePerHour,
			&b.RegionalID, &lng, &lat, &b.PurchaseDate, &b.LastMaintenanceDate, &b.IsActive, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		b.Model = model.String
		b.CurrentLocation = scanLocation(lng, lat)
		bicycles = append(bicycles, b)
	}
	return bicycles, rows.Err()
}

func (r *bicycleRepository) CompareAndSetStatus(ctx context.Context, id int32, from, to domain.BicycleStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bicycles SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`,
		to, time.Now(), id, from)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *bicycleRepository) CreatePhoto(ctx context.Context, p *domain.BicyclePhoto) error {
	query := `INSERT INTO bicycle_photos (bicycle_id, user_id, file_name, file_path, thumbnail_path,
	          file_size, mime_type, is_primary, status, expires_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.BicycleID, p.UserID, p.FileName, p.FilePath, p.ThumbnailPath,
		p.FileSize, p.MimeType, p.IsPrimary, p.Status, p.ExpiresAt, time.Now()).Scan(&p.ID)
}

func (r *bicycleRepository) GetPhotoByID(ctx context.Context, photoID int32) (*domain.BicyclePhoto, error) {
	p := &domain.BicyclePhoto{}
	query := `SELECT id, bicycle_id, user_id, file_name, file_path, thumbnail_path, file_size, mime_type,
	          is_primary, status, expires_at, created_on, confirmed_on
	          FROM bicycle_photos WHERE id = $1 AND status != 'DELETED'`
	err := r.db.QueryRowContext(ctx, query, photoID).Scan(&p.ID, &p.BicycleID, &p.UserID, &p.FileName,
		&p.FilePath, &p.ThumbnailPath, &p.FileSize, &p.MimeType, &p.IsPrimary, &p.Status, &p.ExpiresAt,
		&p.CreatedOn, &p.ConfirmedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *bicycleRepository) GetPhotos(ctx context.Context, bicycleID int32) ([]domain.BicyclePhoto, error) {
	query := `SELECT id, bicycle_id, user_id, file_name, file_path, thumbnail_path, file_size, mime_type,
	          is_primary, status, expires_at, created_on, confirmed_on
	          FROM bicycle_photos WHERE bicycle_id = $1 AND status = 'CONFIRMED'
	          ORDER BY is_primary DESC, id`
	rows, err := r.db.QueryContext(ctx, query, bicycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.BicyclePhoto
	for rows.Next() {
		var p domain.BicyclePhoto
		if err := rows.Scan(&p.ID, &p.BicycleID, &p.UserID, &p.FileName, &p.FilePath, &p.ThumbnailPath,
			&p.FileSize, &p.MimeType, &p.IsPrimary, &p.Status, &p.ExpiresAt, &p.CreatedOn, &p.ConfirmedOn); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *bicycleRepository) ConfirmPhoto(ctx context.Context, photoID int32, fileSize int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bicycle_photos SET status='CONFIRMED', file_size=$1, confirmed_on=$2, expires_at=NULL
		 WHERE id=$3 AND status='PENDING'`, fileSize, time.Now(), photoID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *bicycleRepository) DeletePhoto(ctx context.Context, photoID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bicycle_photos SET status='DELETED' WHERE id=$1 AND status != 'DELETED'`, photoID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *bicycleRepository) SetPrimaryPhoto(ctx context.Context, bicycleID, photoID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE bicycle_photos SET is_primary=false WHERE bicycle_id=$1`, bicycleID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE bicycle_photos SET is_primary=true WHERE id=$1 AND bicycle_id=$2 AND status='CONFIRMED'`,
		photoID, bicycleID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return tx.Commit()
}

func (r *bicycleRepository) DeleteExpiredPendingPhotos(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bicycle_photos WHERE status='PENDING' AND expires_at < $1`, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
