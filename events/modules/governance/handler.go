// Package governance handles Kafka event consumption for the audit
// trail of organization governance events.
package governance

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// AuditService defines the interface for persisting consumed events.
type AuditService interface {
	AppendAudit(ctx context.Context, event GovernanceEvent) error
}

// HandleGovernanceEventWithService processes one governance event from
// Kafka and appends it to the audit trail.
func HandleGovernanceEventWithService(ctx context.Context, msg []byte, service AuditService) error {
	var event GovernanceEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal GovernanceEvent: %w", err)
	}

	if event.EventType == "" || event.OrgID == 0 {
		return fmt.Errorf("invalid event: missing required fields")
	}

	log.Printf("Processing %s for org %d", event.EventType, event.OrgID)

	if err := service.AppendAudit(ctx, event); err != nil {
		return fmt.Errorf("internal service error: %w", err)
	}

	return nil
}
