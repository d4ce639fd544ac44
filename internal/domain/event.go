package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

type Event struct {
	ID                   int32       `json:"id"`
	Name                 string      `json:"name"`
	Description          string      `json:"description,omitempty"`
	EventType            string      `json:"event_type,omitempty"`
	EventDate            time.Time   `json:"event_date"`
	StartTime            string      `json:"start_time"`
	EndTime              string      `json:"end_time,omitempty"`
	RouteDescription     string      `json:"route_description,omitempty"`
	MeetingPoint         string      `json:"meeting_point,omitempty"`
	MeetingPointLocation *Location   `json:"meeting_point_location,omitempty"`
	MaxParticipants      *int32      `json:"max_participants,omitempty"` // nil means unlimited
	CurrentParticipants  int32       `json:"current_participants"`
	Status               EventStatus `json:"status"`
	RegionalID           int32       `json:"regional_id"`
	CreatedOn            time.Time   `json:"created_on"`
	UpdatedOn            time.Time   `json:"updated_on"`
}

// AcceptsRegistrations reports whether a user may register at the given
// instant. Capacity is checked separately by the atomic counter update.
func (e *Event) AcceptsRegistrations(now time.Time) bool {
	return e.Status == EventStatusPublished && e.EventDate.After(now)
}

// IsFull reports whether the participant ceiling has been reached.
func (e *Event) IsFull() bool {
	return e.MaxParticipants != nil && e.CurrentParticipants >= *e.MaxParticipants
}

type EventParticipant struct {
	ID               int32     `json:"id"`
	EventID          int32     `json:"event_id"`
	UserID           int32     `json:"user_id"`
	RegistrationDate time.Time `json:"registration_date"`
	Attended         bool      `json:"attended"`
}
