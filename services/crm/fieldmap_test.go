package crm

import (
	"testing"

	"onboardify/models"
)

func TestFieldsPerCategory(t *testing.T) {
	fm, err := NewFieldMapper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		category     models.BookingCategory
		recordType   string
		dateField    string
		trainerField string
	}{
		{models.CategoryInstallation, "Onboarding", "Installation_Date__c", "Installation_Trainer__c"},
		{models.CategoryTraining, "Onboarding", "Training_Date__c", "Training_Trainer__c"},
		{models.CategoryHardware, "Fulfillment", "Hardware_Delivery_Date__c", "Fulfillment_Owner__c"},
		{models.CategoryGoLive, "Onboarding", "Go_Live_Date__c", "Launch_Coordinator__c"},
	}
	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			fields, err := fm.Fields(tc.category, "2026-09-02", "Aisha")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fields["RecordType"] != tc.recordType {
				t.Fatalf("record type = %q, want %q", fields["RecordType"], tc.recordType)
			}
			if fields[tc.dateField] != "2026-09-02" {
				t.Fatalf("missing date field %s: %v", tc.dateField, fields)
			}
			if fields[tc.trainerField] != "Aisha" {
				t.Fatalf("missing trainer field %s: %v", tc.trainerField, fields)
			}
		})
	}
}

func TestFieldsUnknownCategory(t *testing.T) {
	fm, err := NewFieldMapper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := fm.Fields("yoga", "2026-09-02", "Aisha"); err == nil {
		t.Fatalf("expected error for unmapped category")
	}
}

func TestMappingStageAdvance(t *testing.T) {
	fm, err := NewFieldMapper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mapping, ok := fm.Mapping(models.CategoryInstallation)
	if !ok {
		t.Fatalf("installation mapping missing")
	}
	if mapping.Stage != models.StageInstallationSet {
		t.Fatalf("installation should advance to %s, got %s", models.StageInstallationSet, mapping.Stage)
	}
}
