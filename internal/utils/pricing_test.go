package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDiscountForStratum(t *testing.T) {
	tests := []struct {
		stratum  *int
		expected float64
	}{
		{intPtr(1), 10},
		{intPtr(2), 10},
		{intPtr(3), 5},
		{intPtr(4), 5},
		{intPtr(5), 0},
		{intPtr(6), 0},
		{intPtr(9), 0}, // out of range
		{nil, 0},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tt.expected, DiscountForStratum(tt.stratum))
		})
	}
}

func TestCalculateRentalCost(t *testing.T) {
	t.Run("Stratum 1 gets 10 percent off", func(t *testing.T) {
		got := CalculateRentalCost(10000, 3, intPtr(1))
		assert.Equal(t, float64(30000), got.Subtotal)
		assert.Equal(t, float64(10), got.DiscountPercentage)
		assert.Equal(t, float64(3000), got.Discount)
		assert.Equal(t, float64(27000), got.Total)
	})

	t.Run("No stratum means no discount", func(t *testing.T) {
		got := CalculateRentalCost(8000, 2, nil)
		assert.Equal(t, float64(16000), got.Subtotal)
		assert.Equal(t, float64(0), got.DiscountPercentage)
		assert.Equal(t, float64(0), got.Discount)
		assert.Equal(t, got.Subtotal, got.Total)
	})

	t.Run("Total is always subtotal minus discount", func(t *testing.T) {
		for stratum := 1; stratum <= 6; stratum++ {
			got := CalculateRentalCost(12500, 5, intPtr(stratum))
			assert.Equal(t, got.Subtotal-got.Discount, got.Total, "stratum %d", stratum)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := CalculateRentalCost(9900, 7, intPtr(3))
		second := CalculateRentalCost(9900, 7, intPtr(3))
		assert.Equal(t, first, second)
	})
}

func TestBillableHours(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int32
	}{
		{"Exact hour", start.Add(1 * time.Hour), 1},
		{"Partial hour rounds up", start.Add(70 * time.Minute), 2},
		{"Three full hours", start.Add(3 * time.Hour), 3},
		{"Same minute still bills one hour", start.Add(30 * time.Second), 1},
		{"Zero elapsed", start, 1},
		{"Clock skew never goes negative", start.Add(-5 * time.Minute), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BillableHours(start, tt.end))
		})
	}
}
