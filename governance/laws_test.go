package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-popenov/base-final-project/model"
	"github.com/roman-popenov/base-final-project/util"
)

func lawOrg(t *testing.T, members ...string) (*Engine, *fakeClock, *model.Organization) {
	t.Helper()
	e, clock := newTestEngine(members...)
	org := foundOrg(t, e, uint64(len(members)+2), members[0], members[1:]...)
	electOfficial(t, e, org, members[0], members...)
	return e, clock, org
}

func TestProposeLaw(t *testing.T) {
	e, clock, org := lawOrg(t, "alice", "bob", "carol")

	lawID, err := e.ProposeLaw(org, "alice", "no smoking indoors", 50, 3)
	require.NoError(t, err)
	assert.Equal(t, util.DeriveLawID("no smoking indoors", "alice", clock.now), lawID)

	law := org.PendingLaws[lawID]
	assert.Equal(t, "alice", law.Proposer)
	assert.Equal(t, uint64(50), law.RequiredPercentage)
	assert.Equal(t, clock.now+3*24*60*60, law.EndTime)
	assert.False(t, law.IsEnacted)
}

func TestProposeLawRequiresOfficial(t *testing.T) {
	e, _, org := lawOrg(t, "alice", "bob", "carol")

	_, err := e.ProposeLaw(org, "bob", "no smoking indoors", 50, 3)
	assert.ErrorIs(t, err, ErrNotAnOfficial)
}

func TestProposeLawValidatesPercentage(t *testing.T) {
	e, _, org := lawOrg(t, "alice", "bob", "carol")

	_, err := e.ProposeLaw(org, "alice", "x", 0, 3)
	assert.ErrorIs(t, err, ErrInvalidApprovalPercentage)
	_, err = e.ProposeLaw(org, "alice", "x", 101, 3)
	assert.ErrorIs(t, err, ErrInvalidApprovalPercentage)

	_, err = e.ProposeLaw(org, "alice", "x", 1, 3)
	assert.NoError(t, err)
	_, err = e.ProposeLaw(org, "alice", "y", 100, 3)
	assert.NoError(t, err)
}

func TestProposeLawRejectsDuplicate(t *testing.T) {
	e, _, org := lawOrg(t, "alice", "bob", "carol")

	// Same description, proposer, and second: identical identifier.
	_, err := e.ProposeLaw(org, "alice", "no smoking indoors", 50, 3)
	require.NoError(t, err)
	_, err = e.ProposeLaw(org, "alice", "no smoking indoors", 50, 3)
	assert.ErrorIs(t, err, ErrLawAlreadyExists)
}

func TestVoteOnLawEnactsAtThreshold(t *testing.T) {
	// Spec scenario: 4-member org, 50% approval; the second in-favor
	// vote (2 >= 4*50/100) enacts the law before the window closes.
	e, clock, org := lawOrg(t, "alice", "bob", "carol", "dave")

	lawID, err := e.ProposeLaw(org, "alice", "quiet hours after ten", 50, 3)
	require.NoError(t, err)

	outcome, err := e.VoteOnLaw(org, "bob", lawID, true)
	require.NoError(t, err)
	assert.Equal(t, LawVoteRecorded, outcome)

	outcome, err = e.VoteOnLaw(org, "carol", lawID, true)
	require.NoError(t, err)
	assert.Equal(t, LawVoteEnacted, outcome)

	// Identifier moved from pending to the enacted archive.
	_, pending := org.PendingLaws[lawID]
	assert.False(t, pending)
	enacted, ok := org.EnactedLaws[lawID]
	require.True(t, ok)
	assert.Equal(t, clock.now, enacted.EnactedAt)
	assert.Equal(t, uint64(2), enacted.VotesFor)

	view, err := e.GetLaw(org, lawID)
	require.NoError(t, err)
	assert.True(t, view.Enacted)
	assert.Equal(t, "quiet hours after ten", view.Description)
}

func TestVoteOnLawAgainstDoesNotEnact(t *testing.T) {
	e, _, org := lawOrg(t, "alice", "bob", "carol", "dave")

	lawID, err := e.ProposeLaw(org, "alice", "mandatory meetings", 50, 3)
	require.NoError(t, err)

	outcome, err := e.VoteOnLaw(org, "bob", lawID, false)
	require.NoError(t, err)
	assert.Equal(t, LawVoteRecorded, outcome)
	outcome, err = e.VoteOnLaw(org, "carol", lawID, false)
	require.NoError(t, err)
	assert.Equal(t, LawVoteRecorded, outcome)

	law := org.PendingLaws[lawID]
	assert.Equal(t, uint64(2), law.VotesAgainst)
	assert.Equal(t, uint64(0), law.VotesFor)
}

func TestVoteOnLawAfterExpiryRejects(t *testing.T) {
	// A ballot cast after the window is still tallied into the record
	// and the record is then dropped without being archived.
	e, clock, org := lawOrg(t, "alice", "bob", "carol", "dave")

	lawID, err := e.ProposeLaw(org, "alice", "ban glitter", 50, 3)
	require.NoError(t, err)

	clock.advanceDays(4)

	outcome, err := e.VoteOnLaw(org, "bob", lawID, true)
	require.NoError(t, err)
	assert.Equal(t, LawVoteRejected, outcome)

	_, pending := org.PendingLaws[lawID]
	assert.False(t, pending)
	_, enacted := org.EnactedLaws[lawID]
	assert.False(t, enacted)

	_, err = e.GetLaw(org, lawID)
	assert.ErrorIs(t, err, ErrLawNotFound)
}

func TestVoteOnLawErrors(t *testing.T) {
	e, _, org := lawOrg(t, "alice", "bob", "carol")

	_, err := e.VoteOnLaw(org, "bob", "deadbeef", true)
	assert.ErrorIs(t, err, ErrLawNotFound)

	lawID, err := e.ProposeLaw(org, "alice", "x", 90, 3)
	require.NoError(t, err)

	_, err = e.VoteOnLaw(org, "mallory", lawID, true)
	assert.ErrorIs(t, err, ErrNotAMember)

	_, err = e.VoteOnLaw(org, "bob", lawID, true)
	require.NoError(t, err)
	_, err = e.VoteOnLaw(org, "bob", lawID, false)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
}

func TestLawListingsRoundTrip(t *testing.T) {
	e, clock, org := lawOrg(t, "alice", "bob", "carol", "dave")

	first, err := e.ProposeLaw(org, "alice", "first law", 50, 3)
	require.NoError(t, err)
	clock.now++ // distinct proposal time, distinct identifier
	second, err := e.ProposeLaw(org, "alice", "second law", 50, 3)
	require.NoError(t, err)

	proposed := e.GetAllProposedLaws(org)
	require.Len(t, proposed, 2)
	assert.Empty(t, e.GetAllEnactedLaws(org))

	// Enacting one law removes exactly that identifier from the
	// proposed listing and adds it to the enacted one.
	_, err = e.VoteOnLaw(org, "bob", first, true)
	require.NoError(t, err)
	outcome, err := e.VoteOnLaw(org, "carol", first, true)
	require.NoError(t, err)
	require.Equal(t, LawVoteEnacted, outcome)

	proposed = e.GetAllProposedLaws(org)
	require.Len(t, proposed, 1)
	assert.Equal(t, second, proposed[0].LawID)

	enacted := e.GetAllEnactedLaws(org)
	require.Len(t, enacted, 1)
	assert.Equal(t, first, enacted[0].LawID)
}

func TestPendingAndEnactedSetsStayDisjoint(t *testing.T) {
	e, clock, org := lawOrg(t, "alice", "bob", "carol", "dave")

	ids := make([]string, 0, 3)
	for i, desc := range []string{"a", "b", "c"} {
		clock.now += int64(i)
		id, err := e.ProposeLaw(org, "alice", desc, 25, 3)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	// 25% of 4 members = 1 vote.
	_, err := e.VoteOnLaw(org, "bob", ids[1], true)
	require.NoError(t, err)

	for id := range org.EnactedLaws {
		_, alsoPending := org.PendingLaws[id]
		assert.False(t, alsoPending, "law %s in both sets", id)
	}
	assert.Len(t, org.PendingLaws, 2)
	assert.Len(t, org.EnactedLaws, 1)
}
