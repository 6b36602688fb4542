package governance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-popenov/base-final-project/model"
)

// fakeGate verifies exactly the accounts in its allowlist.
type fakeGate struct {
	allowed map[string]bool
}

func (g *fakeGate) IsVerified(_ context.Context, account string) (bool, error) {
	return g.allowed[account], nil
}

// fakeClock is a manually advanced unix-seconds clock.
type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 { return c.now }

func (c *fakeClock) advanceDays(days int64) { c.now += days * 24 * 60 * 60 }

// newTestEngine returns an engine whose gate verifies the given
// accounts, plus its clock for manual time control.
func newTestEngine(verified ...string) (*Engine, *fakeClock) {
	allowed := make(map[string]bool, len(verified))
	for _, account := range verified {
		allowed[account] = true
	}
	clock := &fakeClock{now: 1_700_000_000}
	return NewEngine(&fakeGate{allowed: allowed}, clock), clock
}

// foundOrg founds an organization and joins the extra accounts.
func foundOrg(t *testing.T, e *Engine, limit uint64, founder string, joiners ...string) *model.Organization {
	t.Helper()
	org, err := e.FoundOrganization(context.Background(), 1, founder, "test-org", limit)
	require.NoError(t, err)
	for _, account := range joiners {
		require.NoError(t, e.Join(context.Background(), org, account))
	}
	return org
}

func TestPercentThresholdTruncates(t *testing.T) {
	// 10 members at 55% truncates to 5, not 6.
	assert.Equal(t, uint64(5), percentThreshold(10, 55))
	assert.Equal(t, uint64(2), percentThreshold(4, 50))
	assert.Equal(t, uint64(1), percentThreshold(3, 60))
	assert.Equal(t, uint64(4), percentThreshold(5, 80))
	assert.Equal(t, uint64(0), percentThreshold(1, 80))
	assert.Equal(t, uint64(100), percentThreshold(100, 100))
}

func TestMemberCountMatchesSetAfterEveryTransition(t *testing.T) {
	e, clock := newTestEngine("alice", "bob", "carol")
	org := foundOrg(t, e, 10, "alice", "bob", "carol")

	checkInvariant := func() {
		t.Helper()
		require.Equal(t, uint64(len(org.Members)), org.MemberCount)
	}
	checkInvariant()

	require.NoError(t, e.Leave(context.Background(), org, "carol"))
	checkInvariant()

	require.NoError(t, e.Join(context.Background(), org, "carol"))
	checkInvariant()

	require.NoError(t, e.ProposeExtension(org, "alice", 20, 3))
	checkInvariant()
	require.NoError(t, e.VoteOnExtension(org, "bob", true))
	checkInvariant()

	require.NoError(t, e.ProposeOfficial(org, "alice", "bob"))
	_, err := e.VoteForOfficial(org, "carol", "bob")
	require.NoError(t, err)
	checkInvariant()

	clock.advanceDays(1)
	_, err = e.VoteForOfficial(org, "alice", "bob")
	require.NoError(t, err)
	checkInvariant()
}

func TestSystemClockIsUnixSeconds(t *testing.T) {
	now := SystemClock{}.Now()
	// Sanity bound: after 2023-01-01, well before year 3000.
	assert.Greater(t, now, int64(1_672_531_200))
	assert.Less(t, now, int64(32_503_680_000))
}
