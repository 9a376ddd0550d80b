package booking

import (
	"context"
	"time"

	"onboardify/models"
)

// SlotQuery is one requested (date, window) availability question. Region is
// empty for remote booking categories.
type SlotQuery struct {
	Date   string `form:"date" json:"date"`
	Start  int    `form:"start" json:"start"`
	End    int    `form:"end" json:"end"`
	Region string `form:"region" json:"region,omitempty"`
}

// AvailabilityService answers slot-availability questions across the trainer
// pool. SlotAvailability recomputes against the calendar and is what booking
// confirmation uses; CachedSlotAvailability may serve a short-TTL cached
// answer and is for availability browsing only.
type AvailabilityService interface {
	SlotAvailability(ctx context.Context, q SlotQuery) (models.SlotAvailability, error)
	CachedSlotAvailability(ctx context.Context, q SlotQuery) (models.SlotAvailability, error)
}

// Service is the top-level booking workflow invoked by the request-handling
// layer.
type Service interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}

// Queue enqueues out-of-band work produced by the booking pipeline.
type Queue interface {
	EnqueueCrmSync(payload models.CrmSyncPayload) error
	EnqueueReminder(payload models.ReminderPayload, fireAt time.Time) error
}
