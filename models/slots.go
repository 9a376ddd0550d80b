package models

import "fmt"

// TimeSlot is one window of the fixed daily grid. Start and End are minutes
// from midnight (e.g. 600 for 10:00). Slots are recomputed on every
// availability request and never persisted.
type TimeSlot struct {
	Date      string `json:"date"` // "2006-01-02"
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Available bool   `json:"available"`
}

// Covers reports whether the slot fully contains the requested window.
func (s TimeSlot) Covers(start, end int) bool {
	return s.Start <= start && s.End >= end
}

// Label renders the slot window as "HH:MM-HH:MM" for responses and event titles.
func (s TimeSlot) Label() string {
	return fmt.Sprintf("%s-%s", MinutesToClock(s.Start), MinutesToClock(s.End))
}

// MinutesToClock formats minutes-from-midnight as "HH:MM".
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// DayAvailability is the slot grid for a single business day of one trainer.
type DayAvailability struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

// SlotAvailability is the aggregated answer for one requested window across
// the trainer pool.
type SlotAvailability struct {
	Available bool     `json:"available"`
	Trainers  []string `json:"trainers"` // IDs of trainers free for the window
}
