package model

// ExtensionProposal asks the members to change the organization's
// member limit. Proposals form an append-only sequence inside the
// organization; ballot records are kept forever with the proposal.
type ExtensionProposal struct {
	NewLimit     uint64 `json:"new_limit"`
	VotesFor     uint64 `json:"votes_for"`
	VotesAgainst uint64 `json:"votes_against"`

	// Voted marks accounts that already cast a ballot; entries are
	// never reset.
	Voted map[string]bool `json:"voted"`

	Executed bool  `json:"executed"`
	EndTime  int64 `json:"end_time"` // unix seconds
}

// IsOpen reports whether the proposal still accepts votes at the given
// unix time.
func (p *ExtensionProposal) IsOpen(now int64) bool {
	return !p.Executed && now <= p.EndTime
}

// OfficialNomination tracks the election of one nominee. A nomination
// stays active until the vote count strictly exceeds 60% of the member
// count, at which point the nominee becomes an official and the
// nomination closes.
type OfficialNomination struct {
	Nominee string          `json:"nominee"`
	Votes   uint64          `json:"votes"`
	Voted   map[string]bool `json:"voted"`

	IsActive  bool  `json:"is_active"`
	IsElected bool  `json:"is_elected"`
	TenureEnd int64 `json:"tenure_end"` // unix seconds; provisional until elected
}

// OfficialRemovalProposal tracks a pending vote to revoke an official.
// At most one exists per official; a stale record (window elapsed) is
// discarded lazily on the next vote against it.
type OfficialRemovalProposal struct {
	Official     string          `json:"official"`
	VotesFor     uint64          `json:"votes_for"`
	VotesAgainst uint64          `json:"votes_against"`
	Voted        map[string]bool `json:"voted"`
	EndTime      int64           `json:"end_time"` // unix seconds
}
