package postgres

import (
	"context"
	"database/sql"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type regionalRepository struct {
	db *sql.DB
}

func NewRegionalRepository(db *sql.DB) repository.RegionalRepository {
	return &regionalRepository{db: db}
}

func (r *regionalRepository) Create(ctx context.Context, reg *domain.Regional) error {
	lng, lat := locationArgs(reg.Location)
	query := `INSERT INTO regionals (name, code, city, department, address, phone, longitude, latitude,
	          is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, $9, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, reg.Name, reg.Code, reg.City, reg.Department,
		reg.Address, reg.Phone, lng, lat, time.Now()).Scan(&reg.ID)
}

func (r *regionalRepository) GetByID(ctx context.Context, id int32) (*domain.Regional, error) {
	reg := &domain.Regional{}
	var address, phone sql.NullString
	var lng, lat sql.NullFloat64
	query := `SELECT id, name, code, city, department, address, phone, longitude, latitude,
	          is_active, created_on, updated_on FROM regionals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&reg.ID, &reg.Name, &reg.Code, &reg.City,
		&reg.Department, &address, &phone, &lng, &lat, &reg.IsActive, &reg.CreatedOn, &reg.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRegionalNotFound
	}
	if err != nil {
		return nil, err
	}
	reg.Address = address.String
	reg.Phone = phone.String
	reg.Location = scanLocation(lng, lat)
	return reg, nil
}

func (r *regionalRepository) List(ctx context.Context) ([]domain.Regional, error) {
	query := `SELECT id, name, code, city, department, address, phone, longitude, latitude,
	          is_active, created_on, updated_on FROM regionals WHERE is_active = true ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regionals []domain.Regional
	for rows.Next() {
		var reg domain.Regional
		var address, phone sql.NullString
		var lng, lat sql.NullFloat64
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Code, &reg.City, &reg.Department,
			&address, &phone, &lng, &lat, &reg.IsActive, &reg.CreatedOn, &reg.UpdatedOn); err != nil {
			return nil, err
		}
		reg.Address = address.String
		reg.Phone = phone.String
		reg.Location = scanLocation(lng, lat)
		regionals = append(regionals, reg)
	}
	return regionals, rows.Err()
}
