package governance

import (
	"github.com/roman-popenov/base-final-project/model"
	"github.com/roman-popenov/base-final-project/util"
)

// ProposeOfficial nominates a member for official status. Both caller
// and nominee must be members, the organization needs at least three
// members, the nominee must not have an active nomination, and an
// elected official cannot be re-nominated while still in office.
func (e *Engine) ProposeOfficial(org *model.Organization, caller, nominee string) error {
	if !org.IsMember(caller) || !org.IsMember(nominee) {
		return ErrNotAMember
	}
	if org.MemberCount < MinMembersForNomination {
		return ErrInsufficientMemberCount
	}
	if nom, ok := org.Nominations[nominee]; ok && nom.IsActive {
		return ErrNominationAlreadyActive
	}
	if org.IsOfficial(nominee) {
		return ErrAlreadyOfficial
	}
	org.Nominations[nominee] = model.OfficialNomination{
		Nominee:  nominee,
		Voted:    map[string]bool{},
		IsActive: true,
		// Provisional marker; overwritten when the nominee is elected.
		TenureEnd: e.Clock.Now() + OfficialTenureDays*util.SecondsPerDay,
	}
	return nil
}

// VoteForOfficial records a ballot for an active nomination. When the
// vote count strictly exceeds 60% of the member count observed at vote
// time, the nominee is elected within the same call; the returned bool
// reports whether that happened.
func (e *Engine) VoteForOfficial(org *model.Organization, caller, nominee string) (bool, error) {
	if !org.IsMember(caller) {
		return false, ErrNotAMember
	}
	nom, ok := org.Nominations[nominee]
	if !ok || !nom.IsActive {
		return false, ErrNominationNotActive
	}
	if nom.Voted[caller] {
		return false, ErrAlreadyVoted
	}
	nom.Votes++
	nom.Voted[caller] = true
	if nom.Votes > percentThreshold(org.MemberCount, ElectionPercentage) {
		e.enactOfficial(org, &nom)
	}
	org.Nominations[nominee] = nom
	return nom.IsElected, nil
}

// enactOfficial closes an active nomination and grants official status.
// Reachable only from the vote path; a nomination that is inactive or
// already elected is left untouched.
func (e *Engine) enactOfficial(org *model.Organization, nom *model.OfficialNomination) {
	if !nom.IsActive || nom.IsElected {
		return
	}
	org.Officials[nom.Nominee] = true
	nom.IsElected = true
	nom.IsActive = false
	nom.TenureEnd = e.Clock.Now() + OfficialTenureDays*util.SecondsPerDay
}

// ProposeRemoval opens a removal vote against a current official. At
// most one removal proposal may exist per official; absence is denoted
// by a missing map entry.
func (e *Engine) ProposeRemoval(org *model.Organization, caller, official string) error {
	if !org.IsMember(caller) {
		return ErrNotAMember
	}
	if !org.IsOfficial(official) {
		return ErrNotAnOfficial
	}
	if _, ok := org.Removals[official]; ok {
		return ErrRemovalAlreadyExists
	}
	org.Removals[official] = model.OfficialRemovalProposal{
		Official: official,
		Voted:    map[string]bool{},
		EndTime:  e.Clock.Now() + RemovalWindowDays*util.SecondsPerDay,
	}
	return nil
}

// VoteOnRemoval records a ballot on an official's removal proposal.
//
// A record whose window has elapsed is discarded first and the call
// then proceeds against the reinitialized record, so the current voter
// starts fresh bookkeeping in the same transition. Expiry detection
// never blocks the voter's own attempt.
//
// When in-favor votes reach 80% (truncating) of the current member
// count, the official is revoked and the proposal deleted in the same
// call; the returned bool reports whether that happened.
func (e *Engine) VoteOnRemoval(org *model.Organization, caller, official string, inFavor bool) (bool, error) {
	if !org.IsMember(caller) {
		return false, ErrNotAMember
	}
	rec, ok := org.Removals[official]
	if !ok {
		return false, ErrRemovalNotFound
	}
	if e.Clock.Now() > rec.EndTime {
		// Lazy expiry: zero the stale record, keep going.
		rec = model.OfficialRemovalProposal{
			Official: official,
			Voted:    map[string]bool{},
		}
	}
	if rec.Voted[caller] {
		return false, ErrAlreadyVoted
	}
	if inFavor {
		rec.VotesFor++
	} else {
		rec.VotesAgainst++
	}
	rec.Voted[caller] = true
	if rec.VotesFor >= percentThreshold(org.MemberCount, RemovalPercentage) {
		delete(org.Officials, official)
		delete(org.Removals, official)
		return true, nil
	}
	org.Removals[official] = rec
	return false, nil
}
