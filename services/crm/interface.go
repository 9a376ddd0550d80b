package crm

import (
	"context"

	"onboardify/models"
)

// Client wraps the external CRM record store.
type Client interface {
	// UpdateRecord patches named fields on a CRM record.
	UpdateRecord(ctx context.Context, recordID string, fields map[string]string) error
	// GetRecord fetches and parses a merchant record.
	GetRecord(ctx context.Context, recordID string) (*models.CRMRecord, error)
}
