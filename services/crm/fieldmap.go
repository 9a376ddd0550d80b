package crm

import (
	"fmt"

	"onboardify/models"
)

// FieldMapping describes how one booking category lands in the CRM: which
// record type it writes, which date and trainer fields it fills, and which
// portal stage it advances the merchant to.
type FieldMapping struct {
	RecordType   string
	DateField    string
	TrainerField string
	Stage        string
}

// FieldMapper holds the category translation table. The table is validated
// at construction so an unmapped category fails startup instead of silently
// falling through at booking time.
type FieldMapper struct {
	table map[models.BookingCategory]FieldMapping
}

var allCategories = []models.BookingCategory{
	models.CategoryInstallation,
	models.CategoryTraining,
	models.CategoryHardware,
	models.CategoryGoLive,
}

func NewFieldMapper() (*FieldMapper, error) {
	m := &FieldMapper{
		table: map[models.BookingCategory]FieldMapping{
			models.CategoryInstallation: {
				RecordType:   "Onboarding",
				DateField:    "Installation_Date__c",
				TrainerField: "Installation_Trainer__c",
				Stage:        models.StageInstallationSet,
			},
			models.CategoryTraining: {
				RecordType:   "Onboarding",
				DateField:    "Training_Date__c",
				TrainerField: "Training_Trainer__c",
				Stage:        models.StageTrainingSet,
			},
			models.CategoryHardware: {
				RecordType:   "Fulfillment",
				DateField:    "Hardware_Delivery_Date__c",
				TrainerField: "Fulfillment_Owner__c",
				Stage:        models.StageHardwareOrdered,
			},
			models.CategoryGoLive: {
				RecordType:   "Onboarding",
				DateField:    "Go_Live_Date__c",
				TrainerField: "Launch_Coordinator__c",
				Stage:        models.StageLive,
			},
		},
	}

	for _, category := range allCategories {
		if _, ok := m.table[category]; !ok {
			return nil, fmt.Errorf("no CRM field mapping for booking category %q", category)
		}
	}
	return m, nil
}

// Fields builds the CRM field patch for one booked appointment.
func (m *FieldMapper) Fields(category models.BookingCategory, date, trainerName string) (map[string]string, error) {
	mapping, ok := m.table[category]
	if !ok {
		return nil, fmt.Errorf("no CRM field mapping for booking category %q", category)
	}
	return map[string]string{
		"RecordType":         mapping.RecordType,
		mapping.DateField:    date,
		mapping.TrainerField: trainerName,
	}, nil
}

// Mapping exposes the raw table entry for a category.
func (m *FieldMapper) Mapping(category models.BookingCategory) (FieldMapping, bool) {
	mapping, ok := m.table[category]
	return mapping, ok
}
