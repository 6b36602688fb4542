package laws

// ProposalRequest is the body of POST /orgs/:orgID/laws.
type ProposalRequest struct {
	Description        string `json:"description"`
	RequiredPercentage uint64 `json:"required_percentage"`
	DurationDays       int64  `json:"duration_days"`
}

// VoteRequest is the body of POST /orgs/:orgID/laws/:lawID/vote.
type VoteRequest struct {
	InFavor bool `json:"in_favor"`
}
