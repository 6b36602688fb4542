// Package orgs implements the resolvers for organization queries.
package orgs

import (
	"context"

	"github.com/roman-popenov/base-final-project/internal/services"
)

// ResolveOrganization fetches one organization summary by id.
func ResolveOrganization(svc *services.GovernanceService, orgID uint64) (interface{}, error) {
	org, err := svc.GetOrganization(context.Background(), orgID)
	if err != nil {
		return nil, err
	}
	return org.Summary(svc.Engine.Clock.Now()), nil
}

// ResolveOrganizations lists all organization summaries.
func ResolveOrganizations(svc *services.GovernanceService) (interface{}, error) {
	return svc.ListOrganizations(context.Background())
}

// ResolveAccountOrganizations lists the organizations an account
// belongs to, via the membership index.
func ResolveAccountOrganizations(svc *services.GovernanceService, account string) (interface{}, error) {
	return svc.ListAccountOrganizations(context.Background(), account)
}

// ResolveIsMember reports organization membership for an account.
func ResolveIsMember(svc *services.GovernanceService, orgID uint64, account string) (interface{}, error) {
	return svc.IsMember(context.Background(), orgID, account)
}

// ResolveNameAvailable reports whether an organization name is free.
func ResolveNameAvailable(svc *services.GovernanceService, name string) (interface{}, error) {
	return svc.NameAvailable(context.Background(), name)
}
