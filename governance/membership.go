package governance

import (
	"context"

	"github.com/roman-popenov/base-final-project/model"
)

// FoundOrganization builds the initial state of a new organization.
// The founder must hold a verification credential and becomes the
// first member. Id allocation and name uniqueness are the registry's
// concern; the engine receives both already settled.
func (e *Engine) FoundOrganization(ctx context.Context, orgID uint64, founder, name string, memberLimit uint64) (*model.Organization, error) {
	if err := e.requireVerified(ctx, founder); err != nil {
		return nil, err
	}
	return model.NewOrganization(orgID, name, founder, memberLimit), nil
}

// Join adds a verified account to the member set.
func (e *Engine) Join(ctx context.Context, org *model.Organization, caller string) error {
	if err := e.requireVerified(ctx, caller); err != nil {
		return err
	}
	if org.IsFull() {
		return ErrOrganizationFull
	}
	if org.IsMember(caller) {
		return ErrAlreadyMember
	}
	org.Members[caller] = true
	org.MemberCount++
	return nil
}

// Leave removes the caller from the member set. Ballots the account
// already cast stay recorded, and official status survives until the
// removal workflow revokes it.
func (e *Engine) Leave(_ context.Context, org *model.Organization, caller string) error {
	if !org.IsMember(caller) {
		return ErrNotAMember
	}
	delete(org.Members, caller)
	org.MemberCount--
	return nil
}
