package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCoversRegion(t *testing.T) {
	north := Trainer{Regions: []string{"north"}}
	roaming := Trainer{Regions: []string{RegionAny}}

	if !north.CoversRegion("") {
		t.Fatalf("empty filter must match every trainer")
	}
	if !north.CoversRegion("North") {
		t.Fatalf("region match should be case-insensitive")
	}
	if north.CoversRegion("south") {
		t.Fatalf("north trainer must not cover south")
	}
	if !roaming.CoversRegion("south") {
		t.Fatalf("any-region trainer covers every region")
	}
}

func TestSpeaksAny(t *testing.T) {
	tr := Trainer{Languages: []string{"English", "Malay"}}

	if !tr.SpeaksAny([]string{"malay"}) {
		t.Fatalf("language match should be case-insensitive")
	}
	if tr.SpeaksAny([]string{"Mandarin"}) {
		t.Fatalf("unexpected language match")
	}
	if tr.SpeaksAny(nil) {
		t.Fatalf("no requested languages means no match")
	}
}

func TestCalendarGrantZeroTimestampNotPersisted(t *testing.T) {
	data, err := bson.Marshal(CalendarGrant{Authorized: true})
	if err != nil {
		t.Fatalf("marshal grant: %v", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal grant: %v", err)
	}
	if _, ok := doc["grantedAt"]; ok {
		t.Fatalf("zero GrantedAt must be omitted, not stored as an epoch date: %v", doc)
	}
}

func TestTimeSlotLabel(t *testing.T) {
	slot := TimeSlot{Start: 600, End: 720}
	if got := slot.Label(); got != "10:00-12:00" {
		t.Fatalf("Label = %q, want %q", got, "10:00-12:00")
	}
}

func TestTimeSlotCovers(t *testing.T) {
	slot := TimeSlot{Start: 600, End: 720}

	if !slot.Covers(600, 720) {
		t.Fatalf("slot covers itself")
	}
	if !slot.Covers(630, 700) {
		t.Fatalf("slot covers an inner window")
	}
	if slot.Covers(630, 780) {
		t.Fatalf("slot must not cover a window past its end")
	}
}
