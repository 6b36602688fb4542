package governance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoundOrganization(t *testing.T) {
	e, _ := newTestEngine("alice")

	org, err := e.FoundOrganization(context.Background(), 7, "alice", "guild", 5)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), org.OrgID)
	assert.Equal(t, "guild", org.Name)
	assert.Equal(t, uint64(5), org.MemberLimit)
	assert.Equal(t, uint64(1), org.MemberCount)
	assert.True(t, org.IsMember("alice"), "founder is implicitly the first member")
	assert.Empty(t, org.Officials)
}

func TestFoundOrganizationRequiresCredential(t *testing.T) {
	e, _ := newTestEngine("alice")

	_, err := e.FoundOrganization(context.Background(), 1, "mallory", "guild", 5)
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestJoin(t *testing.T) {
	e, _ := newTestEngine("alice", "bob")
	org := foundOrg(t, e, 5, "alice")

	require.NoError(t, e.Join(context.Background(), org, "bob"))
	assert.True(t, org.IsMember("bob"))
	assert.Equal(t, uint64(2), org.MemberCount)
}

func TestJoinRejectsUnverified(t *testing.T) {
	e, _ := newTestEngine("alice")
	org := foundOrg(t, e, 5, "alice")

	err := e.Join(context.Background(), org, "mallory")
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.False(t, org.IsMember("mallory"))
	assert.Equal(t, uint64(1), org.MemberCount)
}

func TestJoinRejectsWhenFull(t *testing.T) {
	e, _ := newTestEngine("alice", "bob", "carol")
	org := foundOrg(t, e, 2, "alice", "bob")

	err := e.Join(context.Background(), org, "carol")
	assert.ErrorIs(t, err, ErrOrganizationFull)
	assert.Equal(t, uint64(2), org.MemberCount)
}

func TestJoinTwiceFailsAlreadyMember(t *testing.T) {
	e, _ := newTestEngine("alice", "bob")
	org := foundOrg(t, e, 5, "alice", "bob")

	err := e.Join(context.Background(), org, "bob")
	assert.ErrorIs(t, err, ErrAlreadyMember)
	assert.Equal(t, uint64(2), org.MemberCount)
}

func TestLeave(t *testing.T) {
	e, _ := newTestEngine("alice", "bob")
	org := foundOrg(t, e, 5, "alice", "bob")

	require.NoError(t, e.Leave(context.Background(), org, "bob"))
	assert.False(t, org.IsMember("bob"))
	assert.Equal(t, uint64(1), org.MemberCount)

	// Rejoin is allowed after an intervening leave.
	require.NoError(t, e.Join(context.Background(), org, "bob"))
	assert.Equal(t, uint64(2), org.MemberCount)
}

func TestLeaveFailsForNonMember(t *testing.T) {
	e, _ := newTestEngine("alice")
	org := foundOrg(t, e, 5, "alice")

	err := e.Leave(context.Background(), org, "bob")
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestLeaveKeepsBallotsAndOfficialStatus(t *testing.T) {
	e, _ := newTestEngine("alice", "bob", "carol")
	org := foundOrg(t, e, 5, "alice", "bob", "carol")

	require.NoError(t, e.ProposeExtension(org, "alice", 10, 3))
	require.NoError(t, e.VoteOnExtension(org, "bob", true))

	require.NoError(t, e.ProposeOfficial(org, "alice", "carol"))
	_, err := e.VoteForOfficial(org, "alice", "carol")
	require.NoError(t, err)
	_, err = e.VoteForOfficial(org, "bob", "carol")
	require.NoError(t, err)
	require.True(t, org.IsOfficial("carol"))

	// Leaving neither erases cast ballots nor revokes office.
	require.NoError(t, e.Leave(context.Background(), org, "bob"))
	assert.True(t, org.LastExtensionProposal().Voted["bob"])
	assert.Equal(t, uint64(1), org.LastExtensionProposal().VotesFor)

	require.NoError(t, e.Leave(context.Background(), org, "carol"))
	assert.True(t, org.IsOfficial("carol"))
}
