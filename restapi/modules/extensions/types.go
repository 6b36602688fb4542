package extensions

// ProposalRequest is the body of POST /orgs/:orgID/extensions.
type ProposalRequest struct {
	NewLimit     uint64 `json:"new_limit"`
	DurationDays int64  `json:"duration_days"`
}

// VoteRequest is the body of POST /orgs/:orgID/extensions/vote.
type VoteRequest struct {
	InFavor bool `json:"in_favor"`
}
