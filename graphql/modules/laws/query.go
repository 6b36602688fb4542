// Package laws defines the GraphQL queries for laws.
package laws

import (
	"github.com/graphql-go/graphql"

	"github.com/roman-popenov/base-final-project/internal/services"
)

// GetQueryFields returns the law queries to be mounted in the root
// schema
func GetQueryFields(svc *services.GovernanceService) graphql.Fields {
	return graphql.Fields{
		"law": &graphql.Field{
			Type: LawType,
			Args: graphql.FieldConfigArgument{
				"orgId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"lawId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				orgID := p.Args["orgId"].(int)
				lawID := p.Args["lawId"].(string)
				return ResolveLaw(svc, uint64(orgID), lawID)
			},
		},
		"proposedLaws": &graphql.Field{
			Type: graphql.NewList(LawType),
			Args: graphql.FieldConfigArgument{
				"orgId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				orgID := p.Args["orgId"].(int)
				return ResolveProposedLaws(svc, uint64(orgID))
			},
		},
		"enactedLaws": &graphql.Field{
			Type: graphql.NewList(LawType),
			Args: graphql.FieldConfigArgument{
				"orgId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				orgID := p.Args["orgId"].(int)
				return ResolveEnactedLaws(svc, uint64(orgID))
			},
		},
	}
}
