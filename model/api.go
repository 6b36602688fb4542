// Package model - API types for combining models in API requests/responses
package model

// OrgSummary is the read-model of an organization for list and detail
// endpoints; it omits the internal ballot ledgers.
type OrgSummary struct {
	OrgID       uint64   `json:"org_id"`
	Name        string   `json:"name"`
	MemberLimit uint64   `json:"member_limit"`
	MemberCount uint64   `json:"member_count"`
	Officials   []string `json:"officials"`

	PendingLawCount uint64 `json:"pending_law_count"`
	EnactedLawCount uint64 `json:"enacted_law_count"`

	// OpenExtension summarizes the last extension proposal when it is
	// still open for voting.
	OpenExtension *ExtensionSummary `json:"open_extension,omitempty"`
}

// ExtensionSummary is the public view of an extension proposal.
type ExtensionSummary struct {
	NewLimit     uint64 `json:"new_limit"`
	VotesFor     uint64 `json:"votes_for"`
	VotesAgainst uint64 `json:"votes_against"`
	EndTime      int64  `json:"end_time"`
}

// LawView is the public view of a pending or enacted law.
type LawView struct {
	LawID              string `json:"law_id"`
	Proposer           string `json:"proposer"`
	Description        string `json:"description"`
	VotesFor           uint64 `json:"votes_for"`
	VotesAgainst       uint64 `json:"votes_against"`
	RequiredPercentage uint64 `json:"required_percentage"`
	EndTime            int64  `json:"end_time,omitempty"`
	Enacted            bool   `json:"enacted"`
	EnactedAt          int64  `json:"enacted_at,omitempty"`
}

// Summary builds the read-model for an organization at the given unix
// time; the time decides whether the last extension proposal is shown
// as open.
func (o *Organization) Summary(now int64) OrgSummary {
	summary := OrgSummary{
		OrgID:           o.OrgID,
		Name:            o.Name,
		MemberLimit:     o.MemberLimit,
		MemberCount:     o.MemberCount,
		Officials:       o.OfficialList(),
		PendingLawCount: uint64(len(o.PendingLaws)),
		EnactedLawCount: uint64(len(o.EnactedLaws)),
	}
	if last := o.LastExtensionProposal(); last != nil && last.IsOpen(now) {
		summary.OpenExtension = &ExtensionSummary{
			NewLimit:     last.NewLimit,
			VotesFor:     last.VotesFor,
			VotesAgainst: last.VotesAgainst,
			EndTime:      last.EndTime,
		}
	}
	return summary
}

// View converts a pending law proposal to its public view.
func (l *LawProposal) View() LawView {
	return LawView{
		LawID:              l.LawID,
		Proposer:           l.Proposer,
		Description:        l.Description,
		VotesFor:           l.VotesFor,
		VotesAgainst:       l.VotesAgainst,
		RequiredPercentage: l.RequiredPercentage,
		EndTime:            l.EndTime,
		Enacted:            false,
	}
}

// View converts an enacted law to its public view.
func (l *EnactedLaw) View() LawView {
	return LawView{
		LawID:              l.LawID,
		Proposer:           l.Proposer,
		Description:        l.Description,
		VotesFor:           l.VotesFor,
		VotesAgainst:       l.VotesAgainst,
		RequiredPercentage: l.RequiredPercentage,
		Enacted:            true,
		EnactedAt:          l.EnactedAt,
	}
}
