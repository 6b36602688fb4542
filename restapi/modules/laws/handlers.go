// Package laws implements the REST API handlers for law proposals and
// the enacted law archive.
package laws

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

// PostProposal stores a new law proposal by an official.
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
		if req.Description == "" || req.DurationDays <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "description and duration_days are required"})
		}

		lawID, err := svc.ProposeLaw(c.Context(), orgID, auth.CallerAccount(c), req.Description, req.RequiredPercentage, req.DurationDays)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Law proposal created", "law_id": lawID})
	}
}

// PostVote records the caller's ballot on a pending law and reports
// whether the vote settled it.
func PostVote(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		lawID := c.Params("lawID")

		var req VoteRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		outcome, err := svc.VoteOnLaw(c.Context(), orgID, auth.CallerAccount(c), lawID, req.InFavor)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "Vote recorded", "law_id": lawID, "outcome": outcome.String()})
	}
}

// GetLaw returns a single pending or enacted law.
func GetLaw(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		law, err := svc.GetLaw(c.Context(), orgID, c.Params("lawID"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(law)
	}
}

// GetProposed lists pending law proposals sorted by law id.
func GetProposed(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		list, err := svc.GetAllProposedLaws(c.Context(), orgID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"laws": list})
	}
}

// GetEnacted lists enacted laws sorted by law id.
func GetEnacted(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := orgs.ParseOrgID(c)
		if err != nil {
			return err
		}
		list, err := svc.GetAllEnactedLaws(c.Context(), orgID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"laws": list})
	}
}
