package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"onboardify/models"
	"onboardify/services/calendar"

	"go.uber.org/zap"
)

func regionTrainer(id, region string) models.Trainer {
	t := authorizedTrainer(id, "Trainer "+id)
	t.Regions = []string{region}
	return t
}

func newAggregator(trainers map[string]models.Trainer, cal *fakeCalAPI) *Aggregator {
	return &Aggregator{
		Availability: calendar.NewAvailabilityProvider(cal, zap.NewNop()),
		TrainerRepo:  &fakeTrainerRepo{trainers: trainers},
		Logger:       zap.NewNop(),
	}
}

// nextBusinessDay returns a weekday at least two weeks out.
func nextBusinessDay() string {
	d := time.Now().AddDate(0, 0, 14)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(calendar.DateLayout)
}

func TestSlotAvailabilityListsFreeTrainers(t *testing.T) {
	date := nextBusinessDay()
	day, _ := time.ParseInLocation(calendar.DateLayout, date, time.Local)

	// t1 is busy all morning, t2 is free.
	cal := &fakeCalAPI{busy: map[string][]calendar.Interval{
		"cal-t1": {{Start: day.Add(540 * time.Minute), End: day.Add(780 * time.Minute)}},
	}}
	agg := newAggregator(map[string]models.Trainer{
		"t1": authorizedTrainer("t1", "Aisha"),
		"t2": authorizedTrainer("t2", "Mei Lin"),
	}, cal)

	got, err := agg.SlotAvailability(context.Background(), SlotQuery{Date: date, Start: 600, End: 720})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Available {
		t.Fatalf("expected the slot to be available")
	}
	if len(got.Trainers) != 1 || got.Trainers[0] != "t2" {
		t.Fatalf("expected only t2 to be free, got %v", got.Trainers)
	}
}

func TestSlotAvailabilityRegionFilter(t *testing.T) {
	date := nextBusinessDay()
	agg := newAggregator(map[string]models.Trainer{
		"t1": regionTrainer("t1", "north"),
		"t2": regionTrainer("t2", "south"),
		"t3": regionTrainer("t3", models.RegionAny),
	}, &fakeCalAPI{})

	got, err := agg.SlotAvailability(context.Background(), SlotQuery{Date: date, Start: 600, End: 720, Region: "south"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Trainers) != 2 {
		t.Fatalf("expected the south and any-region trainers, got %v", got.Trainers)
	}
	for _, id := range got.Trainers {
		if id == "t1" {
			t.Fatalf("north-only trainer must not serve a south booking")
		}
	}
}

func TestSlotAvailabilityEmptyFilteredPoolIsNotAnError(t *testing.T) {
	date := nextBusinessDay()
	agg := newAggregator(map[string]models.Trainer{
		"t1": regionTrainer("t1", "north"),
	}, &fakeCalAPI{})

	got, err := agg.SlotAvailability(context.Background(), SlotQuery{Date: date, Start: 600, End: 720, Region: "east"})
	if err != nil {
		t.Fatalf("an empty pool is a negative answer, not a failure: %v", err)
	}
	if got.Available || len(got.Trainers) != 0 {
		t.Fatalf("expected no availability, got %+v", got)
	}
}

type memoryCache struct {
	entries map[string]string
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.entries[key]
	if !ok {
		return "", fmt.Errorf("cache miss")
	}
	return v, nil
}

func (m *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.entries == nil {
		m.entries = map[string]string{}
	}
	m.entries[key] = value
	return nil
}

func TestSlotAvailabilityIgnoresStaleCache(t *testing.T) {
	date := nextBusinessDay()
	q := SlotQuery{Date: date, Start: 600, End: 720}

	// The cache claims the slot is gone, the calendar says it is free.
	stale, _ := json.Marshal(models.SlotAvailability{Available: false})
	cache := &memoryCache{entries: map[string]string{cacheKey(q): string(stale)}}

	agg := newAggregator(map[string]models.Trainer{
		"t1": authorizedTrainer("t1", "Aisha"),
	}, &fakeCalAPI{})
	agg.Cache = cache

	got, err := agg.SlotAvailability(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Available {
		t.Fatalf("booking-path availability must come from the calendar, not the cache")
	}

	cached, err := agg.CachedSlotAvailability(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached.Available {
		t.Fatalf("browsing-path availability should honor the cached entry")
	}
}

func TestCachedSlotAvailabilityStoresOnMiss(t *testing.T) {
	date := nextBusinessDay()
	q := SlotQuery{Date: date, Start: 600, End: 720}
	cache := &memoryCache{}

	agg := newAggregator(map[string]models.Trainer{
		"t1": authorizedTrainer("t1", "Aisha"),
	}, &fakeCalAPI{})
	agg.Cache = cache

	got, err := agg.CachedSlotAvailability(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Available {
		t.Fatalf("expected the slot to be available")
	}
	if _, ok := cache.entries[cacheKey(q)]; !ok {
		t.Fatalf("expected the computed answer to be cached for browsing")
	}
}

func TestSlotAvailabilityValidation(t *testing.T) {
	agg := newAggregator(nil, &fakeCalAPI{})

	if _, err := agg.SlotAvailability(context.Background(), SlotQuery{Date: "not-a-date", Start: 600, End: 720}); ErrorCode(err) != CodeValidation {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
	if _, err := agg.SlotAvailability(context.Background(), SlotQuery{Date: nextBusinessDay(), Start: 720, End: 600}); ErrorCode(err) != CodeValidation {
		t.Fatalf("expected validation error for inverted window, got %v", err)
	}
}
