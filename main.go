// package main provides the entry point for the governance-backend
// microservice: it wires the database, the governance engine, the Kafka
// event pipeline, and the Fiber app serving the REST and GraphQL APIs.
package main

import (
	"context"
	"log"
	"os"

	"github.com/roman-popenov/base-final-project/database"
	eventsgov "github.com/roman-popenov/base-final-project/events/modules/governance"
	"github.com/roman-popenov/base-final-project/governance"
	"github.com/roman-popenov/base-final-project/internal/api"
	"github.com/roman-popenov/base-final-project/internal/kafka"
	"github.com/roman-popenov/base-final-project/internal/services"
	"github.com/roman-popenov/base-final-project/restapi/modules/auth"
	"github.com/roman-popenov/base-final-project/util"
)

func main() {
	logger := database.InitLogger().Sugar()
	defer logger.Sync() //nolint:errcheck

	auth.SetJWTSecret(util.GetEnvDefault("JWT_SECRET", "governance-dev-secret"))

	// Initialize database connection
	db := database.InitializeDatabase()

	// Identity gate: a remote verifier when VERIFIER_URL is set,
	// otherwise the static allowlist from VERIFIED_ACCOUNTS.
	var gate governance.IdentityGate
	if url := os.Getenv("VERIFIER_URL"); url != "" {
		gate = services.NewVerifierClient(url)
	} else {
		gate = services.NewStaticVerifier(os.Getenv("VERIFIED_ACCOUNTS"))
	}

	engine := governance.NewEngine(gate, nil)

	// Event pipeline: producer for governance events, consumer feeding
	// the audit collection. Both are optional in local development.
	var producer services.EventPublisher
	if brokers := util.SplitEnvList(os.Getenv("KAFKA_BROKERS")); len(brokers) > 0 {
		topic := util.GetEnvDefault("KAFKA_TOPIC", "governance-events")
		kafkaProducer := eventsgov.NewGovernanceProducer(brokers, topic)
		defer kafkaProducer.Close() //nolint:errcheck
		producer = kafkaProducer

		go func() {
			if err := kafka.RunEventProcessor(context.Background(), db); err != nil {
				logger.Errorw("Event processor stopped", "error", err)
			}
		}()
	} else {
		logger.Infow("KAFKA_BROKERS not set, event emission disabled")
	}

	svc := services.NewGovernanceService(db, engine, producer, logger)

	app := api.NewFiberApp(svc)

	// Get port from environment or default to 3000
	port := util.GetEnvDefault("MS_PORT", "3000")

	log.Printf("Starting server on port %s", port)
	log.Printf("GraphQL endpoint available at /api/v1/graphql")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
