// Package officials implements the REST API handlers for official
// elections and removals.
package officials

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

// PostNomination opens an election for a nominee.
func PostNomination(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		var req NominationRequest
		if err := c.BodyParser(&req); err != nil || req.Nominee == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nominee is required"})
		}

		if err := svc.ProposeOfficial(c.Context(), orgID, auth.CallerAccount(c), req.Nominee); err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Nomination created", "nominee": req.Nominee})
	}
}

// PostElectionVote records a supporting vote for a nominee and reports
// whether the vote completed the election.
func PostElectionVote(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		nominee := c.Params("nominee")

		elected, err := svc.VoteForOfficial(c.Context(), orgID, auth.CallerAccount(c), nominee)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "Vote recorded", "nominee": nominee, "elected": elected})
	}
}

// PostRemoval opens a removal proposal against an official.
func PostRemoval(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		var req RemovalRequest
		if err := c.BodyParser(&req); err != nil || req.Official == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "official is required"})
		}

		if err := svc.ProposeRemoval(c.Context(), orgID, auth.CallerAccount(c), req.Official); err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Removal proposal created", "official": req.Official})
	}
}

// PostRemovalVote records a vote on a removal proposal and reports
// whether the official was removed.
func PostRemovalVote(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		official := c.Params("official")

		var req RemovalVoteRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		removed, err := svc.VoteOnRemoval(c.Context(), orgID, auth.CallerAccount(c), official, req.InFavor)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "Vote recorded", "official": official, "removed": removed})
	}
}
