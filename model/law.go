package model

// LawProposal is a policy proposal by an official, voted on by the
// members. The ID is derived from (description, proposer, proposal
// time) and must not collide with any pending law of the organization.
type LawProposal struct {
	LawID        string          `json:"law_id"`
	Proposer     string          `json:"proposer"`
	Description  string          `json:"description"`
	VotesFor     uint64          `json:"votes_for"`
	VotesAgainst uint64          `json:"votes_against"`
	Voted        map[string]bool `json:"voted"`

	// RequiredPercentage is the integer approval threshold in [1,100];
	// enactment requires VotesFor >= memberCount*RequiredPercentage/100
	// (truncating division).
	RequiredPercentage uint64 `json:"required_percentage"`

	EndTime   int64 `json:"end_time"` // unix seconds
	IsEnacted bool  `json:"is_enacted"`
}

// EnactedLaw is the archived copy of a law proposal at the moment it
// crossed its approval threshold. EnactedAt replaces the voting-window
// end time; the ballot ledger does not survive into the archive.
type EnactedLaw struct {
	LawID              string `json:"law_id"`
	Proposer           string `json:"proposer"`
	Description        string `json:"description"`
	VotesFor           uint64 `json:"votes_for"`
	VotesAgainst       uint64 `json:"votes_against"`
	RequiredPercentage uint64 `json:"required_percentage"`
	EnactedAt          int64  `json:"enacted_at"` // unix seconds
}
