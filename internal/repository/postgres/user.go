package postgres

import (
	"context"
	"database/sql"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, document_type, document_number, first_name, last_name, email, password_hash,
       role, phone, socioeconomic_stratum, regional_id, is_active, created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (document_type, document_number, first_name, last_name, email, password_hash,
	          role, phone, socioeconomic_stratum, regional_id, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true, $11, $11) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, u.DocumentType, u.DocumentNumber, u.FirstName, u.LastName,
		u.Email, u.PasswordHash, u.Role, u.Phone, u.SocioeconomicStratum, u.RegionalID, time.Now()).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var phone sql.NullString
	err := row.Scan(&u.ID, &u.DocumentType, &u.DocumentNumber, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &u.Role, &phone, &u.SocioeconomicStratum, &u.RegionalID, &u.IsActive,
		&u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	u.Phone = phone.String
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	return u, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	return u, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET first_name=$1, last_name=$2, email=$3, phone=$4,
	          socioeconomic_stratum=$5, regional_id=$6, is_active=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, u.FirstName, u.LastName, u.Email, u.Phone,
		u.SocioeconomicStratum, u.RegionalID, u.IsActive, time.Now(), u.ID)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domain.ErrEmailTaken
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, count, rows.Err()
}
