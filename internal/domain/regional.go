package domain

import "time"

// Regional is an operating region. Bicycles, events and users belong to one.
type Regional struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	City       string    `json:"city"`
	Department string    `json:"department"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Location   *Location `json:"location,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}
