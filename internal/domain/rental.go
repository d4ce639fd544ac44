package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

type Rental struct {
	ID            int32        `json:"id"`
	UserID        int32        `json:"user_id"`
	BicycleID     int32        `json:"bicycle_id"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       *time.Time   `json:"end_date,omitempty"`
	StartLocation *Location    `json:"start_location,omitempty"`
	EndLocation   *Location    `json:"end_location,omitempty"`
	Status        RentalStatus `json:"status"`

	// EstimatedCost is the 1-hour preview computed when the rental opens.
	// The remaining cost fields are populated at return time and stay nil
	// for active and cancelled rentals.
	EstimatedCost      float64  `json:"estimated_cost"`
	DurationInHours    *int32   `json:"duration_in_hours,omitempty"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
	Discount           *float64 `json:"discount,omitempty"`
	TotalCost          *float64 `json:"total_cost,omitempty"`
	FinalCost          *float64 `json:"final_cost,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// IsTerminal reports whether the rental reached one of its final states.
func (r *Rental) IsTerminal() bool {
	return r.Status == RentalStatusCompleted || r.Status == RentalStatusCancelled
}
