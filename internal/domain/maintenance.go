package domain

import "time"

type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "preventive"
	MaintenanceTypeCorrective MaintenanceType = "corrective"
	MaintenanceTypeInspection MaintenanceType = "inspection"
	MaintenanceTypeRepair     MaintenanceType = "repair"
	MaintenanceTypeOther      MaintenanceType = "other"
)

// MaintenanceLog is a service-history entry for a bicycle. Creating a log does
// not move the bicycle into maintenance status; completing one moves it back
// to available.
type MaintenanceLog struct {
	ID                  int32           `json:"id"`
	BicycleID           int32           `json:"bicycle_id"`
	MaintenanceType     MaintenanceType `json:"maintenance_type"`
	Description         string          `json:"description,omitempty"`
	Cost                *float64        `json:"cost,omitempty"`
	PerformedBy         string          `json:"performed_by,omitempty"`
	MaintenanceDate     time.Time       `json:"maintenance_date"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date,omitempty"`
	Completed           bool            `json:"completed"`
	CompletedOn         *time.Time      `json:"completed_on,omitempty"`
	CreatedOn           time.Time       `json:"created_on"`
	UpdatedOn           time.Time       `json:"updated_on"`
}
