package services

import (
	"context"
	"fmt"
	"time"

	"github.com/roman-popenov/base-final-project/database"
	eventsgov "github.com/roman-popenov/base-final-project/events/modules/governance"
	"github.com/roman-popenov/base-final-project/model"
)

// AuditServiceWrapper implements governance.AuditService for the Kafka
// event processor: consumed events are appended to the audit
// collection.
type AuditServiceWrapper struct {
	DB database.DBConnection
}

// AppendAudit stores one consumed governance event as an audit record.
func (w *AuditServiceWrapper) AppendAudit(ctx context.Context, event eventsgov.GovernanceEvent) error {
	record := model.AuditRecord{
		EventID:   event.EventID,
		EventType: event.EventType,
		EventTime: event.EventTime,
		OrgID:     event.OrgID,
		OrgName:   event.OrgName,
		Account:   event.Account,
		Subject:   event.Subject,
		StoredAt:  time.Now().UTC(),
	}
	if _, err := w.DB.Collections[database.AuditCollection].CreateDocument(ctx, record); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}
