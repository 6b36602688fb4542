// Package laws defines the GraphQL types for law proposals.
package laws

import (
	"github.com/graphql-go/graphql"
)

// LawType represents a pending or enacted law.
var LawType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Law",
	Fields: graphql.Fields{
		"law_id":              &graphql.Field{Type: graphql.String},
		"proposer":            &graphql.Field{Type: graphql.String},
		"description":         &graphql.Field{Type: graphql.String},
		"votes_for":           &graphql.Field{Type: graphql.Int},
		"votes_against":       &graphql.Field{Type: graphql.Int},
		"required_percentage": &graphql.Field{Type: graphql.Int},
		"end_time":            &graphql.Field{Type: graphql.Int},
		"enacted":             &graphql.Field{Type: graphql.Boolean},
		"enacted_at":          &graphql.Field{Type: graphql.Int},
	},
})
