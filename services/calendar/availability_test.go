package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"onboardify/models"

	"go.uber.org/zap"
)

type fakeAPI struct {
	busy []Interval
	err  error
}

func (f *fakeAPI) FreeBusy(ctx context.Context, ref CalendarRef, from, to time.Time) ([]Interval, error) {
	return f.busy, f.err
}

func (f *fakeAPI) CreateEvent(ctx context.Context, ref CalendarRef, event EventInput) (string, error) {
	return "evt-1", nil
}

func (f *fakeAPI) DeleteEvent(ctx context.Context, ref CalendarRef, eventID string) error {
	return nil
}

func testTrainer() models.Trainer {
	return models.Trainer{
		ID:         "t1",
		Name:       "Aisha",
		CalendarID: "cal-1",
		Calendar:   models.CalendarGrant{Authorized: true, RefreshToken: "rt"},
	}
}

// 2026-09-02 is a Wednesday.
func wednesday() time.Time {
	return time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local)
}

func busyAt(day time.Time, startMin, endMin int) Interval {
	return Interval{
		Start: day.Add(time.Duration(startMin) * time.Minute),
		End:   day.Add(time.Duration(endMin) * time.Minute),
	}
}

func slotByStart(t *testing.T, day models.DayAvailability, start int) models.TimeSlot {
	t.Helper()
	for _, s := range day.Slots {
		if s.Start == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %d in %+v", start, day.Slots)
	return models.TimeSlot{}
}

func TestDayAvailabilityMarksOverlappingSlots(t *testing.T) {
	day := wednesday()
	// Busy 11:00-13:00 conflicts with both slots it straddles.
	api := &fakeAPI{busy: []Interval{busyAt(day, 660, 780)}}
	p := NewAvailabilityProvider(api, zap.NewNop())

	got, err := p.DayAvailability(context.Background(), testTrainer(), day.Format(DateLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Slots) != 5 {
		t.Fatalf("expected 5 grid slots, got %d", len(got.Slots))
	}
	if slotByStart(t, got, 600).Available || slotByStart(t, got, 720).Available {
		t.Fatalf("slots overlapping the busy interval should be unavailable: %+v", got.Slots)
	}
	for _, start := range []int{840, 900, 960} {
		if !slotByStart(t, got, start).Available {
			t.Fatalf("slot starting %d should be free", start)
		}
	}
}

func TestDayAvailabilityTouchingBoundaryDoesNotConflict(t *testing.T) {
	day := wednesday()
	// Busy 12:00-14:00 ends exactly where 14:00-16:00 starts and starts
	// exactly where 10:00-12:00 ends.
	api := &fakeAPI{busy: []Interval{busyAt(day, 720, 840)}}
	p := NewAvailabilityProvider(api, zap.NewNop())

	got, err := p.DayAvailability(context.Background(), testTrainer(), day.Format(DateLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slotByStart(t, got, 600).Available {
		t.Fatalf("slot ending at busy start should stay available")
	}
	if !slotByStart(t, got, 840).Available {
		t.Fatalf("slot starting at busy end should stay available")
	}
	if slotByStart(t, got, 720).Available {
		t.Fatalf("fully busy slot should be unavailable")
	}
}

func TestRangeAvailabilitySkipsWeekends(t *testing.T) {
	api := &fakeAPI{}
	p := NewAvailabilityProvider(api, zap.NewNop())

	// Friday 2026-09-04 through Monday 2026-09-07.
	from := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.Local)
	days := p.RangeAvailability(context.Background(), testTrainer(), from, from.AddDate(0, 0, 4))

	if len(days) != 2 {
		t.Fatalf("expected 2 business days, got %d: %+v", len(days), days)
	}
	if days[0].Date != "2026-09-04" || days[1].Date != "2026-09-07" {
		t.Fatalf("unexpected dates: %s, %s", days[0].Date, days[1].Date)
	}
}

func TestRangeAvailabilityDegradesWhenFreeBusyFails(t *testing.T) {
	api := &fakeAPI{err: errors.New("calendar unreachable")}
	p := NewAvailabilityProvider(api, zap.NewNop())

	days := p.RangeAvailability(context.Background(), testTrainer(), wednesday(), wednesday().AddDate(0, 0, 1))
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	for _, s := range days[0].Slots {
		if !s.Available {
			t.Fatalf("a failed free/busy query must not hide the trainer; slot %+v", s)
		}
	}
}

func TestDayAvailabilityWeekendHasNoSlots(t *testing.T) {
	p := NewAvailabilityProvider(&fakeAPI{}, zap.NewNop())

	got, err := p.DayAvailability(context.Background(), testTrainer(), "2026-09-05") // Saturday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Slots) != 0 {
		t.Fatalf("expected no slots on a weekend, got %d", len(got.Slots))
	}
}

func TestWindowFree(t *testing.T) {
	day := wednesday()
	date := day.Format(DateLayout)
	// Busy 10:00-12:00 blocks the first slot only.
	p := NewAvailabilityProvider(&fakeAPI{busy: []Interval{busyAt(day, 600, 720)}}, zap.NewNop())

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"blocked slot", 600, 720, false},
		{"free full slot", 900, 1020, true},
		{"window inside free slot", 870, 930, true},
		{"window spanning grid boundaries", 660, 780, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.WindowFree(context.Background(), testTrainer(), date, tc.start, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("WindowFree(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}
