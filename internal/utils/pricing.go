package utils

import (
	"math"
	"time"
)

// StratumDiscounts maps a socioeconomic stratum (1..6) to its rental discount
// percentage. Kept as data so policy changes never touch the calculation.
var StratumDiscounts = map[int]float64{
	1: 10,
	2: 10,
	3: 5,
	4: 5,
	5: 0,
	6: 0,
}

// CostBreakdown is the result of a rental cost calculation.
type CostBreakdown struct {
	Subtotal           float64 `json:"subtotal"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Discount           float64 `json:"discount"`
	Total              float64 `json:"total"`
}

// DiscountForStratum returns the discount percentage for a stratum. Unknown
// or absent strata get no discount.
func DiscountForStratum(stratum *int) float64 {
	if stratum == nil {
		return 0
	}
	return StratumDiscounts[*stratum]
}

// CalculateRentalCost converts (hourly rate, billable hours, stratum) into a
// cost breakdown. Pure and deterministic; used both for return-time billing
// and pre-rental estimates.
func CalculateRentalCost(pricePerHour float64, hours int32, stratum *int) CostBreakdown {
	subtotal := pricePerHour * float64(hours)
	pct := DiscountForStratum(stratum)
	discount := subtotal * pct / 100
	return CostBreakdown{
		Subtotal:           subtotal,
		DiscountPercentage: pct,
		Discount:           discount,
		Total:              subtotal - discount,
	}
}

// BillableHours converts elapsed wall-clock time into chargeable hours.
// Partial hours round up, and any rental is charged at least one hour, even
// a return within the same minute as the start.
func BillableHours(start, end time.Time) int32 {
	elapsed := end.Sub(start)
	if elapsed <= 0 {
		return 1
	}
	hours := int32(math.Ceil(elapsed.Hours()))
	if hours < 1 {
		hours = 1
	}
	return hours
}
