package domain

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalBicycles       int32   `json:"total_bicycles"`
	AvailableBicycles   int32   `json:"available_bicycles"`
	RentedBicycles      int32   `json:"rented_bicycles"`
	MaintenanceBicycles int32   `json:"maintenance_bicycles"`
	TotalUsers          int32   `json:"total_users"`
	ActiveRentals       int32   `json:"active_rentals"`
	TotalRevenue        float64 `json:"total_revenue"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	UpcomingEvents      int32   `json:"upcoming_events"`
}

type RevenueReport struct {
	Month             string  `json:"month"`
	Year              int     `json:"year"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRentals      int32   `json:"total_rentals"`
	AverageRentalCost float64 `json:"average_rental_cost"`
	DiscountGiven     float64 `json:"discount_given"`
}

type BicycleRentalStats struct {
	BicycleID       int32   `json:"bicycle_id"`
	BicycleCode     string  `json:"bicycle_code"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model,omitempty"`
	TotalRentals    int32   `json:"total_rentals"`
	TotalRevenue    float64 `json:"total_revenue"`
	AverageDuration float64 `json:"average_duration"`
}

type UserStratumReport struct {
	Stratum         int     `json:"stratum"`
	UserCount       int32   `json:"user_count"`
	TotalRentals    int32   `json:"total_rentals"`
	TotalRevenue    float64 `json:"total_revenue"`
	AverageDiscount float64 `json:"average_discount"`
}
