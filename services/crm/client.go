package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"onboardify/models"

	"go.uber.org/zap"
)

// HTTPClient talks to the CRM's REST API. Responses are parsed into explicit
// structs at this boundary so call sites never walk loosely-typed maps.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(baseURL, token string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// updateResponse is the CRM's write-acknowledgement shape.
type updateResponse struct {
	Success bool `json:"success"`
	Errors  []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// recordPayload is the raw merchant record shape. Optional fields stay empty
// strings when the CRM omits them.
type recordPayload struct {
	ID     string `json:"id"`
	Fields struct {
		BusinessName     string `json:"Business_Name__c"`
		Stage            string `json:"Onboarding_Stage__c"`
		InstallationDate string `json:"Installation_Date__c"`
		TrainingDate     string `json:"Training_Date__c"`
		HardwareDate     string `json:"Hardware_Delivery_Date__c"`
		GoLiveDate       string `json:"Go_Live_Date__c"`
		AssignedTrainer  string `json:"Assigned_Trainer__c"`
	} `json:"fields"`
}

func (c *HTTPClient) UpdateRecord(ctx context.Context, recordID string, fields map[string]string) error {
	body, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return fmt.Errorf("failed to encode CRM update: %w", err)
	}

	url := fmt.Sprintf("%s/records/%s", c.baseURL, recordID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build CRM request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("CRM update request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read CRM response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("CRM update rejected",
			zap.String("recordId", recordID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return fmt.Errorf("CRM update returned status %d", resp.StatusCode)
	}

	var ack updateResponse
	if err := json.Unmarshal(raw, &ack); err != nil {
		return fmt.Errorf("failed to parse CRM response: %w", err)
	}
	if !ack.Success {
		if len(ack.Errors) > 0 {
			return fmt.Errorf("CRM update failed: %s (%s)", ack.Errors[0].Message, ack.Errors[0].Code)
		}
		return fmt.Errorf("CRM update failed without error detail")
	}
	return nil
}

func (c *HTTPClient) GetRecord(ctx context.Context, recordID string) (*models.CRMRecord, error) {
	url := fmt.Sprintf("%s/records/%s", c.baseURL, recordID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CRM request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("CRM record fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CRM record fetch returned status %d", resp.StatusCode)
	}

	var payload recordPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse CRM record: %w", err)
	}

	return &models.CRMRecord{
		ID:               payload.ID,
		BusinessName:     payload.Fields.BusinessName,
		Stage:            payload.Fields.Stage,
		InstallationDate: payload.Fields.InstallationDate,
		TrainingDate:     payload.Fields.TrainingDate,
		HardwareDate:     payload.Fields.HardwareDate,
		GoLiveDate:       payload.Fields.GoLiveDate,
		AssignedTrainer:  payload.Fields.AssignedTrainer,
	}, nil
}
