package models

import "time"

// Onboarding stages shown on the portal. The CRM remains the system of record
// for appointment dates; the stage is portal-local progress tracking.
const (
	StageSignedUp         = "signed_up"
	StageHardwareOrdered  = "hardware_ordered"
	StageInstallationSet  = "installation_scheduled"
	StageTrainingSet      = "training_scheduled"
	StageLive             = "live"
)

// Merchant is an onboarding merchant account.
type Merchant struct {
	ID                 string    `bson:"id" json:"id"`
	BusinessName       string    `bson:"businessName" json:"businessName"`
	ContactName        string    `bson:"contactName" json:"contactName,omitempty"`
	ContactEmail       string    `bson:"contactEmail" json:"contactEmail,omitempty"`
	ContactPhone       string    `bson:"contactPhone" json:"contactPhone,omitempty"`
	Address            string    `bson:"address" json:"address,omitempty"`
	Region             string    `bson:"region" json:"region,omitempty"`
	PreferredLanguages []string  `bson:"preferredLanguages" json:"preferredLanguages,omitempty"`
	CRMRecordID        string    `bson:"crmRecordId" json:"crmRecordId"`
	Stage              string    `bson:"stage" json:"stage"`
	FCMToken           string    `bson:"fcmToken" json:"-"`
	CreatedAt          time.Time `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
	UpdatedAt          time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}
