package models

// ReminderPayload is the asynq payload for a scheduled appointment reminder.
type ReminderPayload struct {
	MerchantID string `json:"merchantId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}

// CrmSyncPayload is the asynq payload for an out-of-band CRM field re-sync
// after a failed inline update. Retry bookkeeping belongs to asynq, so the
// payload carries only the write itself.
type CrmSyncPayload struct {
	RecordID string            `json:"recordId"`
	Fields   map[string]string `json:"fields"`
}
