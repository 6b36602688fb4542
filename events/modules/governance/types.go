// Package governance defines types for Kafka event processing of
// organization governance events.
package governance

import "time"

// Event type values published to the governance topic, one per
// successful state transition.
const (
	EventOrgCreated          = "org.created"
	EventMemberJoined        = "org.member.joined"
	EventMemberLeft          = "org.member.left"
	EventExtensionProposed   = "org.extension.proposed"
	EventExtensionVoteCast   = "org.extension.vote"
	EventOfficialNominated   = "org.official.nominated"
	EventOfficialVoteCast    = "org.official.vote"
	EventOfficialElected     = "org.official.elected"
	EventRemovalProposed     = "org.official.removal.proposed"
	EventRemovalVoteCast     = "org.official.removal.vote"
	EventOfficialRemoved     = "org.official.removed"
	EventLawProposed         = "org.law.proposed"
	EventLawVoteCast         = "org.law.vote"
	EventLawEnacted          = "org.law.enacted"
	EventLawRejected         = "org.law.rejected"
)

// GovernanceEvent represents a governance state change published to
// Kafka. Emission is best effort: a failed publish never fails the
// operation that produced it.
type GovernanceEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	OrgID   uint64 `json:"org_id"`
	OrgName string `json:"org_name,omitempty"`

	// Account is the caller that triggered the transition; Subject is
	// the entity acted on (nominee, official, or law identifier).
	Account string `json:"account,omitempty"`
	Subject string `json:"subject,omitempty"`
}
