// Package laws implements the resolvers for law queries.
package laws

import (
	"context"

	"github.com/roman-popenov/base-final-project/internal/services"
)

// ResolveLaw fetches one law, pending or enacted, by id.
func ResolveLaw(svc *services.GovernanceService, orgID uint64, lawID string) (interface{}, error) {
	return svc.GetLaw(context.Background(), orgID, lawID)
}

// ResolveProposedLaws lists pending law proposals sorted by law id.
func ResolveProposedLaws(svc *services.GovernanceService, orgID uint64) (interface{}, error) {
	return svc.GetAllProposedLaws(context.Background(), orgID)
}

// ResolveEnactedLaws lists enacted laws sorted by law id.
func ResolveEnactedLaws(svc *services.GovernanceService, orgID uint64) (interface{}, error) {
	return svc.GetAllEnactedLaws(context.Background(), orgID)
}
