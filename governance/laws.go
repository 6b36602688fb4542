package governance

import (
	"sort"

	"github.com/roman-popenov/base-final-project/model"
	"github.com/roman-popenov/base-final-project/util"
)

// LawVoteOutcome describes what a law ballot did beyond being tallied.
type LawVoteOutcome int

const (
	// LawVoteRecorded means the ballot was tallied and the law stays
	// pending.
	LawVoteRecorded LawVoteOutcome = iota
	// LawVoteEnacted means the ballot pushed the law over its approval
	// threshold and it moved to the enacted archive.
	LawVoteEnacted
	// LawVoteRejected means the voting window had elapsed; the ballot
	// was tallied into the discarded record and the law was dropped.
	LawVoteRejected
)

func (o LawVoteOutcome) String() string {
	switch o {
	case LawVoteEnacted:
		return "enacted"
	case LawVoteRejected:
		return "rejected"
	default:
		return "recorded"
	}
}

// ProposeLaw stores a new law proposal by an official. The identifier
// is derived from (description, proposer, proposal time); a pending
// law with the same identifier rejects the submission as a duplicate.
func (e *Engine) ProposeLaw(org *model.Organization, caller, description string, requiredPercentage uint64, durationDays int64) (string, error) {
	if !org.IsOfficial(caller) {
		return "", ErrNotAnOfficial
	}
	if requiredPercentage < 1 || requiredPercentage > 100 {
		return "", ErrInvalidApprovalPercentage
	}
	now := e.Clock.Now()
	lawID := util.DeriveLawID(description, caller, now)
	if _, ok := org.PendingLaws[lawID]; ok {
		return "", ErrLawAlreadyExists
	}
	org.PendingLaws[lawID] = model.LawProposal{
		LawID:              lawID,
		Proposer:           caller,
		Description:        description,
		Voted:              map[string]bool{},
		RequiredPercentage: requiredPercentage,
		EndTime:            now + durationDays*util.SecondsPerDay,
	}
	return lawID, nil
}

// VoteOnLaw records a member's ballot on a pending law and then
// settles the law's fate in the same call.
//
// The ballot is tallied before either outcome branch is evaluated:
// a law whose window is still open and whose in-favor votes reach
// memberCount*requiredPercentage/100 (truncating) is enacted now;
// a law whose window has elapsed is rejected and dropped, taking the
// just-recorded ballot with it. The record-then-settle ordering must
// not be reordered.
func (e *Engine) VoteOnLaw(org *model.Organization, caller, lawID string, inFavor bool) (LawVoteOutcome, error) {
	if !org.IsMember(caller) {
		return LawVoteRecorded, ErrNotAMember
	}
	law, ok := org.PendingLaws[lawID]
	if !ok {
		return LawVoteRecorded, ErrLawNotFound
	}
	if law.Voted[caller] {
		return LawVoteRecorded, ErrAlreadyVoted
	}
	if inFavor {
		law.VotesFor++
	} else {
		law.VotesAgainst++
	}
	law.Voted[caller] = true

	now := e.Clock.Now()
	switch {
	case now <= law.EndTime && law.VotesFor >= percentThreshold(org.MemberCount, law.RequiredPercentage):
		law.IsEnacted = true
		org.EnactedLaws[lawID] = model.EnactedLaw{
			LawID:              law.LawID,
			Proposer:           law.Proposer,
			Description:        law.Description,
			VotesFor:           law.VotesFor,
			VotesAgainst:       law.VotesAgainst,
			RequiredPercentage: law.RequiredPercentage,
			EnactedAt:          now,
		}
		delete(org.PendingLaws, lawID)
		return LawVoteEnacted, nil
	case now > law.EndTime:
		delete(org.PendingLaws, lawID)
		return LawVoteRejected, nil
	default:
		org.PendingLaws[lawID] = law
		return LawVoteRecorded, nil
	}
}

// GetLaw returns the public view of a law, pending or enacted.
func (e *Engine) GetLaw(org *model.Organization, lawID string) (model.LawView, error) {
	if law, ok := org.PendingLaws[lawID]; ok {
		return law.View(), nil
	}
	if law, ok := org.EnactedLaws[lawID]; ok {
		return law.View(), nil
	}
	return model.LawView{}, ErrLawNotFound
}

// GetAllProposedLaws returns the pending laws sorted by identifier.
func (e *Engine) GetAllProposedLaws(org *model.Organization) []model.LawView {
	views := make([]model.LawView, 0, len(org.PendingLaws))
	for _, law := range org.PendingLaws {
		views = append(views, law.View())
	}
	sort.Slice(views, func(i, j int) bool { return views[i].LawID < views[j].LawID })
	return views
}

// GetAllEnactedLaws returns the enacted laws sorted by identifier.
func (e *Engine) GetAllEnactedLaws(org *model.Organization) []model.LawView {
	views := make([]model.LawView, 0, len(org.EnactedLaws))
	for _, law := range org.EnactedLaws {
		views = append(views, law.View())
	}
	sort.Slice(views, func(i, j int) bool { return views[i].LawID < views[j].LawID })
	return views
}
