package governance

import (
	"github.com/roman-popenov/base-final-project/model"
	"github.com/roman-popenov/base-final-project/util"
)

// ProposeExtension opens a new member-limit proposal. Proposals are
// appended, never overwritten; a new one is only allowed once the
// previous one is executed or its window has elapsed.
//
// Note that nothing ever applies the proposed limit: votes accumulate
// on the record, but no call path sets Executed or mutates the
// organization's member limit. That mirrors the observed behavior of
// this workflow and is intentional.
func (e *Engine) ProposeExtension(org *model.Organization, caller string, newLimit uint64, durationDays int64) error {
	if !org.IsMember(caller) {
		return ErrNotAMember
	}
	now := e.Clock.Now()
	if last := org.LastExtensionProposal(); last != nil && last.IsOpen(now) {
		return ErrPreviousProposalStillActive
	}
	org.ExtensionProposals = append(org.ExtensionProposals, model.ExtensionProposal{
		NewLimit: newLimit,
		Voted:    map[string]bool{},
		EndTime:  now + durationDays*util.SecondsPerDay,
	})
	return nil
}

// VoteOnExtension records a ballot on the most recent extension
// proposal.
func (e *Engine) VoteOnExtension(org *model.Organization, caller string, inFavor bool) error {
	if !org.IsMember(caller) {
		return ErrNotAMember
	}
	last := org.LastExtensionProposal()
	if last == nil {
		return ErrNoActiveProposals
	}
	if last.Voted[caller] {
		return ErrAlreadyVoted
	}
	if e.Clock.Now() > last.EndTime {
		return ErrVotingPeriodEnded
	}
	if inFavor {
		last.VotesFor++
	} else {
		last.VotesAgainst++
	}
	last.Voted[caller] = true
	return nil
}
