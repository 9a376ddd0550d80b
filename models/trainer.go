package models

import (
	"strings"
	"time"
)

// RegionAny marks a trainer as covering every merchant region.
const RegionAny = "any"

// CalendarGrant records whether a trainer has authorized calendar write access.
// The refresh token is stored server-side only and never serialized to clients.
type CalendarGrant struct {
	Authorized   bool      `bson:"authorized" json:"authorized"`
	RefreshToken string    `bson:"refreshToken,omitempty" json:"-"`
	GrantedAt    time.Time `bson:"grantedAt,omitempty" json:"grantedAt,omitzero"`
}

// Trainer is an installation/training specialist. Records are owned by the
// configuration sync with the CRM; the booking core treats them as read-only
// apart from the calendar grant.
type Trainer struct {
	ID         string        `bson:"id" json:"id"`
	Name       string        `bson:"name" json:"name"`
	Email      string        `bson:"email" json:"email"`
	CalendarID string        `bson:"calendarId" json:"calendarId"`
	Languages  []string      `bson:"languages" json:"languages"`           // e.g. ["English", "Mandarin"]
	Regions    []string      `bson:"regions" json:"regions"`               // region tags, or ["any"]
	Active     bool          `bson:"active" json:"active"`
	Calendar   CalendarGrant `bson:"calendar" json:"calendar"`
	CreatedAt  time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
	UpdatedAt  time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

// CoversRegion reports whether the trainer serves the given region tag.
// An empty filter or an "any" coverage entry always matches.
func (t Trainer) CoversRegion(region string) bool {
	if strings.TrimSpace(region) == "" {
		return true
	}
	for _, r := range t.Regions {
		if strings.EqualFold(r, RegionAny) || strings.EqualFold(r, region) {
			return true
		}
	}
	return false
}

// SpeaksAny reports whether the trainer covers at least one of the requested
// languages.
func (t Trainer) SpeaksAny(languages []string) bool {
	for _, want := range languages {
		for _, have := range t.Languages {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
