// Package governance implements the organization governance state
// machine: membership, capacity-extension proposals, official
// elections and removals, and law enactment.
//
// Every exported method is a single all-or-nothing transition against
// one organization's state bundle. The package holds no storage of its
// own; callers load an Organization, apply one transition, and persist
// the result atomically. A transition that returns an error has not
// mutated the organization.
package governance

import (
	"context"
	"time"
)

const (
	// ElectionPercentage is the member-count percentage a nomination
	// must strictly exceed for the nominee to become an official.
	ElectionPercentage uint64 = 60

	// RemovalPercentage is the member-count percentage of in-favor
	// votes that revokes an official.
	RemovalPercentage uint64 = 80

	// OfficialTenureDays is the tenure granted on election.
	OfficialTenureDays int64 = 256

	// RemovalWindowDays is the voting window of a removal proposal.
	RemovalWindowDays int64 = 7

	// MinMembersForNomination is the member count an organization
	// needs before officials can be nominated.
	MinMembersForNomination uint64 = 3
)

// IdentityGate answers whether an account holds a valid, non-duplicated
// verification credential. The answer must reflect the external
// verifier's current state on every call; the engine never caches it.
type IdentityGate interface {
	IsVerified(ctx context.Context, account string) (bool, error)
}

// Clock supplies the engine's notion of current time as monotonic
// non-decreasing unix seconds. Voting windows are data, not timers:
// the engine only ever compares Now() against stored end timestamps.
type Clock interface {
	Now() int64
}

// SystemClock is the wall-clock Clock used in production.
type SystemClock struct{}

// Now returns the current unix time in seconds.
func (SystemClock) Now() int64 { return time.Now().Unix() }

// Engine applies governance transitions. It is stateless apart from
// its collaborators and safe to share across organizations.
type Engine struct {
	Gate  IdentityGate
	Clock Clock
}

// NewEngine creates an engine with the given identity gate and clock.
func NewEngine(gate IdentityGate, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{Gate: gate, Clock: clock}
}

func (e *Engine) requireVerified(ctx context.Context, account string) error {
	ok, err := e.Gate.IsVerified(ctx, account)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotVerified
	}
	return nil
}

// percentThreshold returns count*percentage/100 with truncating
// integer division, e.g. 10 members at 55% -> 5.
func percentThreshold(count, percentage uint64) uint64 {
	return count * percentage / 100
}
