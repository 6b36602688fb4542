// Package orgs defines the GraphQL types for organizations.
package orgs

import (
	"github.com/graphql-go/graphql"
)

// ExtensionProposalType represents an open member limit extension.
var ExtensionProposalType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ExtensionProposal",
	Fields: graphql.Fields{
		"new_limit":     &graphql.Field{Type: graphql.Int},
		"votes_for":     &graphql.Field{Type: graphql.Int},
		"votes_against": &graphql.Field{Type: graphql.Int},
		"end_time":      &graphql.Field{Type: graphql.Int},
	},
})

// OrganizationType represents the public summary of an organization.
var OrganizationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Organization",
	Fields: graphql.Fields{
		"org_id":            &graphql.Field{Type: graphql.Int},
		"name":              &graphql.Field{Type: graphql.String},
		"member_limit":      &graphql.Field{Type: graphql.Int},
		"member_count":      &graphql.Field{Type: graphql.Int},
		"officials":         &graphql.Field{Type: graphql.NewList(graphql.String)},
		"pending_law_count": &graphql.Field{Type: graphql.Int},
		"enacted_law_count": &graphql.Field{Type: graphql.Int},
		"open_extension":    &graphql.Field{Type: ExtensionProposalType},
	},
})

// MembershipType represents one account-to-organization link.
var MembershipType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Membership",
	Fields: graphql.Fields{
		"account":   &graphql.Field{Type: graphql.String},
		"org_id":    &graphql.Field{Type: graphql.Int},
		"org_name":  &graphql.Field{Type: graphql.String},
		"joined_at": &graphql.Field{Type: graphql.DateTime},
	},
})
