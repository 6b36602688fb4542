// Package orgs implements the REST API handlers for organization
// lifecycle and membership.
package orgs

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/roman-popenov/base-final-project/governance"
	"github.com/roman-popenov/base-final-project/internal/services"
	"github.com/roman-popenov/base-final-project/restapi/modules/auth"
)

func respondErr(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if code := governance.ErrorCode(err); code != "" {
		body["code"] = code
	}
	return c.Status(governance.HTTPStatus(err)).JSON(body)
}

// ParseOrgID reads the :orgID path parameter.
func ParseOrgID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("orgID"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid organization id")
	}
	return id, nil
}

// PostOrg creates an organization with the caller as founding member.
func PostOrg(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateOrgRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Name == "" || req.MemberLimit == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and member_limit are required"})
		}

		org, err := svc.CreateOrganization(c.Context(), auth.CallerAccount(c), req.Name, req.MemberLimit)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(org.Summary(svc.Engine.Clock.Now()))
	}
}

// GetOrg returns the organization summary.
func GetOrg(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := ParseOrgID(c)
		if err != nil {
			return err
		}
		org, err := svc.GetOrganization(c.Context(), orgID)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(org.Summary(svc.Engine.Clock.Now()))
	}
}

// GetOrgs lists all organizations.
func GetOrgs(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.ListOrganizations(c.Context())
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"organizations": list})
	}
}

// GetNameAvailable reports whether an organization name is free.
func GetNameAvailable(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name query parameter is required"})
		}
		available, err := svc.NameAvailable(c.Context(), name)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"name": name, "available": available})
	}
}

// GetIsMember reports whether an account belongs to the organization.
func GetIsMember(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := ParseOrgID(c)
		if err != nil {
			return err
		}
		account := c.Params("account")
		member, err := svc.IsMember(c.Context(), orgID, account)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"org_id": orgID, "account": account, "member": member})
	}
}

// GetAccountOrgs lists the organizations the caller belongs to.
func GetAccountOrgs(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		memberships, err := svc.ListAccountOrganizations(c.Context(), auth.CallerAccount(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"memberships": memberships})
	}
}

// PostJoin adds the caller to the organization.
func PostJoin(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := ParseOrgID(c)
		if err != nil {
			return err
		}
		if err := svc.Join(c.Context(), orgID, auth.CallerAccount(c)); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "Joined organization"})
	}
}

// PostLeave removes the caller from the organization.
func PostLeave(svc *services.GovernanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := ParseOrgID(c)
		if err != nil {
			return err
		}
		if err := svc.Leave(c.Context(), orgID, auth.CallerAccount(c)); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "Left organization"})
	}
}
