package calendar

import (
	"context"
	"time"
)

// CalendarRef identifies one trainer's calendar together with the credential
// that authorizes writes to it. Every API operation is scoped to a single
// grant; there is no process-wide calendar client.
type CalendarRef struct {
	CalendarID   string
	RefreshToken string
}

// Interval is a busy period returned by a free/busy query.
type Interval struct {
	Start time.Time
	End   time.Time
}

// EventInput is the payload for creating a calendar event.
type EventInput struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Attendees   []string
}

// API wraps the external calendar provider. FreeBusy returns the busy
// intervals for the range without exposing event details.
type API interface {
	FreeBusy(ctx context.Context, ref CalendarRef, from, to time.Time) ([]Interval, error)
	CreateEvent(ctx context.Context, ref CalendarRef, event EventInput) (string, error)
	DeleteEvent(ctx context.Context, ref CalendarRef, eventID string) error
}
