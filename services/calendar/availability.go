package calendar

import (
	"context"
	"time"

	"onboardify/models"

	"go.uber.org/zap"
)

// DateLayout matches the wire format for booking dates.
const DateLayout = "2006-01-02"

// HorizonDays bounds how far ahead availability is computed.
const HorizonDays = 14

// slotGrid is the fixed daily grid, minutes from midnight. The 15:00-17:00
// and 16:00-18:00 windows overlap on purpose so assignment has more room late
// in the day. Not configurable per trainer.
var slotGrid = [][2]int{
	{600, 720},  // 10:00-12:00
	{720, 840},  // 12:00-14:00
	{840, 960},  // 14:00-16:00
	{900, 1020}, // 15:00-17:00
	{960, 1080}, // 16:00-18:00
}

// AvailabilityProvider computes per-day slot grids for a trainer from the
// external calendar's free/busy data.
type AvailabilityProvider struct {
	Calendar API
	Logger   *zap.Logger
}

func NewAvailabilityProvider(api API, logger *zap.Logger) *AvailabilityProvider {
	return &AvailabilityProvider{Calendar: api, Logger: logger}
}

// refFor builds the calendar reference for a trainer's grant.
func refFor(trainer models.Trainer) CalendarRef {
	return CalendarRef{
		CalendarID:   trainer.CalendarID,
		RefreshToken: trainer.Calendar.RefreshToken,
	}
}

// RangeAvailability returns the slot grid for each business day in [from, to).
// A failed free/busy query is not fatal: the trainer is assumed fully
// available so stale calendar data never hides them from bookings.
func (p *AvailabilityProvider) RangeAvailability(ctx context.Context, trainer models.Trainer, from, to time.Time) []models.DayAvailability {
	busy, err := p.Calendar.FreeBusy(ctx, refFor(trainer), from, to)
	if err != nil {
		p.Logger.Warn("free/busy query failed, assuming trainer fully available",
			zap.String("trainerId", trainer.ID),
			zap.String("calendarId", trainer.CalendarID),
			zap.Error(err))
		busy = nil
	}

	var days []models.DayAvailability
	for d := dateOnly(from); d.Before(to); d = d.AddDate(0, 0, 1) {
		if !isBusinessDay(d) {
			continue
		}
		days = append(days, models.DayAvailability{
			Date:  d.Format(DateLayout),
			Slots: daySlots(d, busy),
		})
	}
	return days
}

// DayAvailability returns the slot grid for a single date. Non-business days
// yield no slots.
func (p *AvailabilityProvider) DayAvailability(ctx context.Context, trainer models.Trainer, date string) (models.DayAvailability, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return models.DayAvailability{}, err
	}
	days := p.RangeAvailability(ctx, trainer, day, day.AddDate(0, 0, 1))
	if len(days) == 0 {
		return models.DayAvailability{Date: date}, nil
	}
	return days[0], nil
}

// WindowFree reports whether the trainer has an available grid slot that
// fully covers the requested window on the given date.
func (p *AvailabilityProvider) WindowFree(ctx context.Context, trainer models.Trainer, date string, start, end int) (bool, error) {
	day, err := p.DayAvailability(ctx, trainer, date)
	if err != nil {
		return false, err
	}
	for _, slot := range day.Slots {
		if slot.Available && slot.Covers(start, end) {
			return true, nil
		}
	}
	return false, nil
}

// daySlots marks each grid window against the busy intervals. A slot is
// unavailable iff it overlaps a busy interval: slot.start < busy.end &&
// slot.end > busy.start. Touching boundaries do not conflict.
func daySlots(day time.Time, busy []Interval) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(slotGrid))
	for _, w := range slotGrid {
		slotStart := day.Add(time.Duration(w[0]) * time.Minute)
		slotEnd := day.Add(time.Duration(w[1]) * time.Minute)

		available := true
		for _, b := range busy {
			if slotStart.Before(b.End) && slotEnd.After(b.Start) {
				available = false
				break
			}
		}

		slots = append(slots, models.TimeSlot{
			Date:      day.Format(DateLayout),
			Start:     w[0],
			End:       w[1],
			Available: available,
		})
	}
	return slots
}

func isBusinessDay(d time.Time) bool {
	return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
