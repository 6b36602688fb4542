// Package extensions implements the REST API handlers for member limit
// extension proposals.
package extensions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roman-popenov/base-final-project/governance"
	"github.com/roman-popenov/base-final-project/internal/services"
	"github.com/roman-popenov/base-final-project/restapi/modules/auth"
	"github.com/roman-popenov/base-final-project/restapi/modules/orgs"
)

func respondErr(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if code := governance.ErrorCode(err); code != "" {
		body["code"] = code
	}
	return c.Status(governance.HTTPStatus(err)).JSON(body)
}

// PostProposal opens a new member limit extension proposal.
func PostProposal(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		var req ProposalRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.NewLimit == 0 || req.DurationDays <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "new_limit and duration_days are required"})
		}

		if err := svc.ProposeExtension(c.Context(), orgID, auth.CallerAccount(c), req.NewLimit, req.DurationDays); err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Extension proposal created"})
	}
}

// PostVote records the caller's vote on the active extension proposal.
func PostVote(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		var req VoteRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if err := svc.VoteOnExtension(c.Context(), orgID, auth.CallerAccount(c), req.InFavor); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "Vote recorded"})
	}
}
