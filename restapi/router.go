// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/roman-popenov/base-final-project/internal/services"
	"github.com/roman-popenov/base-final-project/restapi/modules/auth"
	"github.com/roman-popenov/base-final-project/restapi/modules/extensions"
	"github.com/roman-popenov/base-final-project/restapi/modules/laws"
	"github.com/roman-popenov/base-final-project/restapi/modules/officials"
	"github.com/roman-popenov/base-final-project/restapi/modules/orgs"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, svc *services.GovernanceService, schema graphql.Schema) {

	// Background initialization tasks
	go autoApplySeedOnStartup(svc)

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", GraphQLHandler(schema))

	// Auth Routes
	authGroup := api.Group("/auth")
	authGroup.Post("/token", auth.IssueToken(svc.Engine.Gate))
	authGroup.Post("/logout", auth.Logout())
	authGroup.Get("/me", auth.RequireAuth, auth.Me())

	// Public read surface
	api.Get("/orgs", orgs.GetOrgs(svc))
	api.Get("/orgs/name-available", orgs.GetNameAvailable(svc))
	api.Get("/orgs/:orgID", orgs.GetOrg(svc))
	api.Get("/orgs/:orgID/members/:account", orgs.GetIsMember(svc))
	api.Get("/orgs/:orgID/laws", laws.GetProposed(svc))
	api.Get("/orgs/:orgID/laws/enacted", laws.GetEnacted(svc))
	api.Get("/orgs/:orgID/laws/:lawID", laws.GetLaw(svc))

	// Account Routes
	api.Get("/account/orgs", auth.RequireAuth, orgs.GetAccountOrgs(svc))

	// Organization lifecycle and membership
	api.Post("/orgs", auth.RequireAuth, orgs.PostOrg(svc))
	api.Post("/orgs/:orgID/join", auth.RequireAuth, orgs.PostJoin(svc))
	api.Post("/orgs/:orgID/leave", auth.RequireAuth, orgs.PostLeave(svc))

	// Member limit extensions
	api.Post("/orgs/:orgID/extensions", auth.RequireAuth, extensions.PostProposal(svc))
	api.Post("/orgs/:orgID/extensions/vote", auth.RequireAuth, extensions.PostVote(svc))

	// Official elections and removals
	api.Post("/orgs/:orgID/officials/nominations", auth.RequireAuth, officials.PostNomination(svc))
	api.Post("/orgs/:orgID/officials/nominations/:nominee/vote", auth.RequireAuth, officials.PostElectionVote(svc))
	api.Post("/orgs/:orgID/officials/removals", auth.RequireAuth, officials.PostRemoval(svc))
	api.Post("/orgs/:orgID/officials/removals/:official/vote", auth.RequireAuth, officials.PostRemovalVote(svc))

	// Laws
	api.Post("/orgs/:orgID/laws", auth.RequireAuth, laws.PostProposal(svc))
	api.Post("/orgs/:orgID/laws/:lawID/vote", auth.RequireAuth, laws.PostVote(svc))

	log.Println("API routes initialized successfully")
}

// autoApplySeedOnStartup applies the YAML seed file when SEED_CONFIG
// points at one. Errors are logged and the server keeps running.
func autoApplySeedOnStartup(svc *services.GovernanceService) {
	path := os.Getenv("SEED_CONFIG")
	if path == "" {
		return
	}

	config, err := services.LoadSeedConfig(path)
	if err != nil {
		log.Printf("WARNING: Failed to load seed config %s: %v", path, err)
		return
	}
	if err := svc.ApplySeed(context.Background(), config); err != nil {
		log.Printf("WARNING: Failed to apply seed config %s: %v", path, err)
		return
	}
	log.Printf("Seed config %s applied", path)
}
