package models

// CRMRecord is the parsed, validated shape of a merchant record as returned by
// the CRM. Fields absent from the raw response stay zero-valued here rather
// than being chased through untyped maps at call sites.
type CRMRecord struct {
	ID               string `json:"id"`
	BusinessName     string `json:"businessName"`
	Stage            string `json:"stage,omitempty"`
	InstallationDate string `json:"installationDate,omitempty"`
	TrainingDate     string `json:"trainingDate,omitempty"`
	HardwareDate     string `json:"hardwareDate,omitempty"`
	GoLiveDate       string `json:"goLiveDate,omitempty"`
	AssignedTrainer  string `json:"assignedTrainer,omitempty"`
}
