package domain

import "time"

type BicycleStatus string

const (
	BicycleStatusAvailable   BicycleStatus = "available"
	BicycleStatusRented      BicycleStatus = "rented"
	BicycleStatusMaintenance BicycleStatus = "maintenance"
	BicycleStatusRetired     BicycleStatus = "retired"
)

// Location is a geographic point (WGS84).
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type Bicycle struct {
	ID                  int32         `json:"id"`
	Code                string        `json:"code"`
	Brand               string        `json:"brand"`
	Model               string        `json:"model,omitempty"`
	Color               string        `json:"color"`
	Status              BicycleStatus `json:"status"`
	RentalPricePerHour  float64       `json:"rental_price_per_hour"`
	RegionalID          int32         `json:"regional_id"`
	CurrentLocation     *Location     `json:"current_location,omitempty"`
	PurchaseDate        *time.Time    `json:"purchase_date,omitempty"`
	LastMaintenanceDate *time.Time    `json:"last_maintenance_date,omitempty"`
	IsActive            bool          `json:"is_active"`
	CreatedOn           time.Time     `json:"created_on"`
	UpdatedOn           time.Time     `json:"updated_on"`
}

// bicycleTransitions is the table of permitted status changes. Retirement is
// one-way; there is no entry leading out of "retired".
var bicycleTransitions = map[BicycleStatus][]BicycleStatus{
	BicycleStatusAvailable:   {BicycleStatusRented, BicycleStatusMaintenance, BicycleStatusRetired},
	BicycleStatusRented:      {BicycleStatusAvailable, BicycleStatusRetired},
	BicycleStatusMaintenance: {BicycleStatusAvailable, BicycleStatusRetired},
	BicycleStatusRetired:     {},
}

// ValidStatusTransition reports whether a bicycle may move from one status to
// another. Self transitions are not permitted.
func ValidStatusTransition(from, to BicycleStatus) bool {
	for _, allowed := range bicycleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsRentable reports whether the bicycle can be handed to a renter right now.
func (b *Bicycle) IsRentable() bool {
	return b.Status == BicycleStatusAvailable
}

type BicyclePhoto struct {
	ID            int32      `json:"id"`
	BicycleID     int32      `json:"bicycle_id"`
	UserID        int32      `json:"user_id"`
	FileName      string     `json:"file_name"`
	FilePath      string     `json:"file_path"`
	ThumbnailPath string     `json:"thumbnail_path"`
	FileSize      int64      `json:"file_size"`
	MimeType      string     `json:"mime_type"`
	IsPrimary     bool       `json:"is_primary"`
	Status        string     `json:"status"` // PENDING, CONFIRMED, DELETED
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
	ConfirmedOn   *time.Time `json:"confirmed_on,omitempty"`
}
