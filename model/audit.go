package model

import "time"

// AuditRecord is one consumed governance event persisted to the audit
// collection for external observers.
type AuditRecord struct {
	Key       string    `json:"_key,omitempty"`
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	EventTime time.Time `json:"event_time"`
	OrgID     uint64    `json:"org_id"`
	OrgName   string    `json:"org_name,omitempty"`
	Account   string    `json:"account,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	StoredAt  time.Time `json:"stored_at"`
}
