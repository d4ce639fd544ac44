package domain

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type DocumentType string

const (
	DocumentTypeCC DocumentType = "CC" // cédula de ciudadanía
	DocumentTypeTI DocumentType = "TI" // tarjeta de identidad
	DocumentTypeCE DocumentType = "CE" // cédula de extranjería
)

type User struct {
	ID             int32        `json:"id"`
	DocumentType   DocumentType `json:"document_type"`
	DocumentNumber string       `json:"document_number"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	Role           UserRole     `json:"role"`
	Phone          string       `json:"phone,omitempty"`
	// SocioeconomicStratum (1..6) selects the rental discount percentage.
	// nil means no discount.
	SocioeconomicStratum *int      `json:"socioeconomic_stratum,omitempty"`
	RegionalID           int32     `json:"regional_id"`
	IsActive             bool      `json:"is_active"`
	CreatedOn            time.Time `json:"created_on"`
	UpdatedOn            time.Time `json:"updated_on"`
}
