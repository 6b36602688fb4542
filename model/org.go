// Package model defines the data structures for organization governance.
package model

import "time"

// Organization is the canonical state bundle for one organization.
// It is stored as a single document so that every governance operation
// is a read-modify-write of one record.
type Organization struct {
	Key         string `json:"_key,omitempty"`
	ID          string `json:"_id,omitempty"`
	Rev         string `json:"_rev,omitempty"`
	OrgID       uint64 `json:"org_id"`
	Name        string `json:"name"`
	MemberLimit uint64 `json:"member_limit"`
	MemberCount uint64 `json:"member_count"`

	// Members is the canonical member set; MemberCount must always
	// equal len(Members).
	Members map[string]bool `json:"members"`

	// Officials is a subset of Members.
	Officials map[string]bool `json:"officials"`

	// ExtensionProposals is append-only; only the last entry is ever
	// open for voting.
	ExtensionProposals []ExtensionProposal `json:"extension_proposals,omitempty"`

	// The governance maps are stored even when empty; omitempty would
	// drop them and hand the next load nil maps that the engine
	// assigns into.

	// Nominations maps nominee account to its nomination record.
	Nominations map[string]OfficialNomination `json:"nominations"`

	// Removals maps official account to at most one pending removal.
	Removals map[string]OfficialRemovalProposal `json:"removals"`

	// PendingLaws and EnactedLaws are keyed by law id; the key sets
	// are mutually exclusive at all times.
	PendingLaws map[string]LawProposal `json:"pending_laws"`
	EnactedLaws map[string]EnactedLaw  `json:"enacted_laws"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrganization creates an organization founded by the given account.
// The founder is the first member; no separate join is needed.
func NewOrganization(orgID uint64, name, founder string, memberLimit uint64) *Organization {
	now := time.Now().UTC()
	return &Organization{
		OrgID:       orgID,
		Name:        name,
		MemberLimit: memberLimit,
		MemberCount: 1,
		Members:     map[string]bool{founder: true},
		Officials:   map[string]bool{},
		Nominations: map[string]OfficialNomination{},
		Removals:    map[string]OfficialRemovalProposal{},
		PendingLaws: map[string]LawProposal{},
		EnactedLaws: map[string]EnactedLaw{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EnsureMaps replaces nil governance maps with empty ones so that an
// organization decoded from an older stored document is safe to write
// into.
func (o *Organization) EnsureMaps() {
	if o.Members == nil {
		o.Members = map[string]bool{}
	}
	if o.Officials == nil {
		o.Officials = map[string]bool{}
	}
	if o.Nominations == nil {
		o.Nominations = map[string]OfficialNomination{}
	}
	if o.Removals == nil {
		o.Removals = map[string]OfficialRemovalProposal{}
	}
	if o.PendingLaws == nil {
		o.PendingLaws = map[string]LawProposal{}
	}
	if o.EnactedLaws == nil {
		o.EnactedLaws = map[string]EnactedLaw{}
	}
}

// IsMember reports whether the account is currently in the member set.
func (o *Organization) IsMember(account string) bool {
	return o.Members[account]
}

// IsOfficial reports whether the account is currently an official.
func (o *Organization) IsOfficial(account string) bool {
	return o.Officials[account]
}

// IsFull reports whether the member set has reached the member limit.
func (o *Organization) IsFull() bool {
	return o.MemberCount >= o.MemberLimit
}

// LastExtensionProposal returns the most recent extension proposal, or
// nil when none has ever been created. Earlier entries are history and
// are never interactable.
func (o *Organization) LastExtensionProposal() *ExtensionProposal {
	if len(o.ExtensionProposals) == 0 {
		return nil
	}
	return &o.ExtensionProposals[len(o.ExtensionProposals)-1]
}

// OfficialList returns the official accounts as a slice for API output.
func (o *Organization) OfficialList() []string {
	officials := make([]string, 0, len(o.Officials))
	for account := range o.Officials {
		officials = append(officials, account)
	}
	return officials
}

// Membership is the reverse-index document: one per (account, org).
// It is only an index over Organization.Members, never an independent
// source of truth.
type Membership struct {
	Key      string    `json:"_key,omitempty"`
	Account  string    `json:"account"`
	OrgID    uint64    `json:"org_id"`
	OrgName  string    `json:"org_name"`
	JoinedAt time.Time `json:"joined_at"`
}
