// Package graphqlapi assembles the read-only GraphQL schema from the
// per-module query fields.
package graphqlapi

import (
	"github.com/graphql-go/graphql"

	"github.com/roman-popenov/base-final-project/graphql/modules/laws"
	"github.com/roman-popenov/base-final-project/graphql/modules/orgs"
	"github.com/roman-popenov/base-final-project/internal/services"
)

// CreateSchema mounts every module's query fields into the root query.
// Mutations go through the REST API; GraphQL is a read surface.
func CreateSchema(svc *services.GovernanceService) (graphql.Schema, error) {
	fields := graphql.Fields{}

	for name, field := range orgs.GetQueryFields(svc) {
		fields[name] = field
	}
	for name, field := range laws.GetQueryFields(svc) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
