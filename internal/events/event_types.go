package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/staff-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffCreated EventType = "staff_created"
	EventStaffUpdated EventType = "staff_updated"
	EventStaffDeleted EventType = "staff_deleted"
)

// Event represents a staff lifecycle event emitted by the service layer.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StaffID   int         `json:"staff_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffPayload carries the record state at the time of the event.
type StaffPayload struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	StartingDate time.Time `json:"startingDate"`
}

// NewStaffEvent builds an event for the given record.
func NewStaffEvent(eventType EventType, staff domain.Staff) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		StaffID:   staff.ID,
		Timestamp: time.Now().UTC(),
		Payload: StaffPayload{
			Name:         staff.Name,
			Email:        staff.Email,
			PhoneNumber:  staff.PhoneNumber,
			StartingDate: staff.StartingDate,
		},
	}
}
