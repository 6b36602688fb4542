package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeExtension(t *testing.T) {
	e, clock := newTestEngine("alice", "bob")
	org := foundOrg(t, e, 5, "alice", "bob")

	require.NoError(t, e.ProposeExtension(org, "alice", 10, 3))
	require.Len(t, org.ExtensionProposals, 1)

	last := org.LastExtensionProposal()
	assert.Equal(t, uint64(10), last.NewLimit)
	assert.Equal(t, clock.now+3*24*60*60, last.EndTime)
	assert.False(t, last.Executed)
}

func TestProposeExtensionRequiresMembership(t *testing.T) {
	e, _ := newTestEngine("alice")
	org := foundOrg(t, e, 5, "alice")

	err := e.ProposeExtension(org, "bob", 10, 3)
	assert.ErrorIs(t, err, ErrNotAMember)
	assert.Empty(t, org.ExtensionProposals)
}

func TestProposeExtensionWhilePreviousOpen(t *testing.T) {
	e, clock := newTestEngine("alice")
	org := foundOrg(t, e, 5, "alice")

	require.NoError(t, e.ProposeExtension(org, "alice", 10, 3))
	err := e.ProposeExtension(org, "alice", 12, 3)
	assert.ErrorIs(t, err, ErrPreviousProposalStillActive)

	// Once the window elapses the next proposal is appended, keeping
	// the old one as history.
	clock.advanceDays(4)
	require.NoError(t, e.ProposeExtension(org, "alice", 12, 3))
	require.Len(t, org.ExtensionProposals, 2)
	assert.Equal(t, uint64(10), org.ExtensionProposals[0].NewLimit)
	assert.Equal(t, uint64(12), org.LastExtensionProposal().NewLimit)
}

func TestVoteOnExtension(t *testing.T) {
	e, _ := newTestEngine("alice", "bob", "carol")
	org := foundOrg(t, e, 5, "alice", "bob", "carol")

	require.NoError(t, e.ProposeExtension(org, "alice", 10, 3))
	require.NoError(t, e.VoteOnExtension(org, "alice", true))
	require.NoError(t, e.VoteOnExtension(org, "bob", false))
	require.NoError(t, e.VoteOnExtension(org, "carol", true))

	last := org.LastExtensionProposal()
	assert.Equal(t, uint64(2), last.VotesFor)
	assert.Equal(t, uint64(1), last.VotesAgainst)
}

func TestVoteOnExtensionErrors(t *testing.T) {
	e, clock := newTestEngine("alice", "bob")
	org := foundOrg(t, e, 5, "alice", "bob")

	assert.ErrorIs(t, e.VoteOnExtension(org, "alice", true), ErrNoActiveProposals)
	assert.ErrorIs(t, e.VoteOnExtension(org, "mallory", true), ErrNotAMember)

	require.NoError(t, e.ProposeExtension(org, "alice", 10, 3))
	require.NoError(t, e.VoteOnExtension(org, "alice", true))
	assert.ErrorIs(t, e.VoteOnExtension(org, "alice", true), ErrAlreadyVoted)

	clock.advanceDays(4)
	assert.ErrorIs(t, e.VoteOnExtension(org, "bob", true), ErrVotingPeriodEnded)

	// The re-vote rejection applies even after expiry.
	assert.ErrorIs(t, e.VoteOnExtension(org, "alice", true), ErrAlreadyVoted)
}

func TestExtensionVotesNeverApplyTheLimit(t *testing.T) {
	e, _ := newTestEngine("alice", "bob", "carol")
	org := foundOrg(t, e, 3, "alice", "bob", "carol")

	require.NoError(t, e.ProposeExtension(org, "alice", 10, 3))
	require.NoError(t, e.VoteOnExtension(org, "alice", true))
	require.NoError(t, e.VoteOnExtension(org, "bob", true))
	require.NoError(t, e.VoteOnExtension(org, "carol", true))

	// Unanimous approval still changes nothing: the workflow tallies
	// votes but has no execution step.
	assert.Equal(t, uint64(3), org.MemberLimit)
	assert.False(t, org.LastExtensionProposal().Executed)
}
