package officials

// NominationRequest is the body of POST /orgs/:orgID/officials/nominations.
type NominationRequest struct {
	Nominee string `json:"nominee"`
}

// RemovalRequest is the body of POST /orgs/:orgID/officials/removals.
type RemovalRequest struct {
	Official string `json:"official"`
}

// RemovalVoteRequest is the body of POST /orgs/:orgID/officials/removals/:official/vote.
type RemovalVoteRequest struct {
	InFavor bool `json:"in_favor"`
}
