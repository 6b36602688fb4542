// Package orgs defines the GraphQL queries for organizations.
package orgs

import (
	"github.com/graphql-go/graphql"

	"github.com/roman-popenov/base-final-project/internal/services"
)

// GetQueryFields returns the organization queries to be mounted in the
// root schema
func GetQueryFields(svc *services.GovernanceService) graphql.Fields {
	return graphql.Fields{
		"organization": &graphql.Field{
			Type: OrganizationType,
			Args: graphql.FieldConfigArgument{
				"orgId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				orgID := p.Args["orgId"].(int)
				return ResolveOrganization(svc, uint64(orgID))
			},
		},
		"organizations": &graphql.Field{
			Type: graphql.NewList(OrganizationType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOrganizations(svc)
			},
		},
		"accountOrganizations": &graphql.Field{
			Type: graphql.NewList(MembershipType),
			Args: graphql.FieldConfigArgument{
				"account": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				account := p.Args["account"].(string)
				return ResolveAccountOrganizations(svc, account)
			},
		},
		"isMember": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"orgId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"account": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				orgID := p.Args["orgId"].(int)
				account := p.Args["account"].(string)
				return ResolveIsMember(svc, uint64(orgID), account)
			},
		},
		"nameAvailable": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				name := p.Args["name"].(string)
				return ResolveNameAvailable(svc, name)
			},
		},
	}
}
