package models

import "time"

// BookingCategory enumerates the appointment types. Each category maps to
// different CRM fields, and only on-site categories apply the region filter.
type BookingCategory string

const (
	CategoryInstallation BookingCategory = "installation"
	CategoryTraining     BookingCategory = "training"
	CategoryHardware     BookingCategory = "hardware_fulfillment"
	CategoryGoLive       BookingCategory = "go_live"
)

// Valid reports whether the category is one of the known appointment types.
func (c BookingCategory) Valid() bool {
	switch c {
	case CategoryInstallation, CategoryTraining, CategoryHardware, CategoryGoLive:
		return true
	}
	return false
}

// OnSite reports whether the category requires the trainer to travel to the
// merchant, and therefore whether geographic coverage applies.
func (c BookingCategory) OnSite() bool {
	return c == CategoryInstallation || c == CategoryTraining
}

// BookingRequest is one booking attempt. A non-empty ExistingEventID marks the
// request as a reschedule of a previously created calendar event.
type BookingRequest struct {
	MerchantID      string          `json:"merchantId" binding:"required"`
	Date            string          `json:"date" binding:"required"` // "2006-01-02"
	Start           int             `json:"start"`                   // minutes from midnight
	End             int             `json:"end"`
	Category        BookingCategory `json:"category"`
	Languages       []string        `json:"languages,omitempty"`
	Region          string          `json:"region,omitempty"`
	ExistingEventID string          `json:"existingEventId,omitempty"`
}

// AssignmentResult records which trainer was chosen for a window and why.
// The chosen trainer is always an element of Candidates.
type AssignmentResult struct {
	TrainerID  string   `json:"trainerId"`
	Reason     string   `json:"reason"`
	Candidates []string `json:"candidates"`
}

// BookingResult is the terminal success response of a booking attempt. The
// calendar event is authoritative; CrmSynced=false means the CRM write failed
// and will be retried out of band (Warning carries the operator-facing note).
type BookingResult struct {
	TrainerID string    `json:"trainerId"`
	Reason    string    `json:"reason"`
	EventID   string    `json:"eventId"`
	CrmSynced bool      `json:"crmSynced"`
	Warning   string    `json:"warning,omitempty"`
	BookedAt  time.Time `json:"bookedAt"`
}
