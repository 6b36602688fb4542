package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/arangodb/go-driver/v2/arangodb"
	"gopkg.in/yaml.v2"

	"github.com/roman-popenov/base-final-project/governance"
)

// SeedConfig declares organizations to ensure at startup, for dev and
// demo environments. The file is applied idempotently: organizations
// and memberships that already exist are skipped.
type SeedConfig struct {
	Organizations []SeedOrg `yaml:"organizations"`
}

// SeedOrg is one declared organization.
type SeedOrg struct {
	Name        string   `yaml:"name"`
	Founder     string   `yaml:"founder"`
	MemberLimit uint64   `yaml:"member_limit"`
	Members     []string `yaml:"members"`
}

// LoadSeedConfig parses a seed YAML file.
func LoadSeedConfig(path string) (*SeedConfig, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read seed config: %w", err)
	}
	var config SeedConfig
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("failed to parse seed config: %w", err)
	}
	return &config, nil
}

// ApplySeed ensures each declared organization exists with its
// declared members.
func (s *GovernanceService) ApplySeed(ctx context.Context, config *SeedConfig) error {
	for _, seed := range config.Organizations {
		org, err := s.CreateOrganization(ctx, seed.Founder, seed.Name, seed.MemberLimit)
		switch {
		case err == nil:
			s.Logger.Infof("Seeded organization %q (id %d)", seed.Name, org.OrgID)
		case errors.Is(err, governance.ErrNameTaken):
			// Already present from a previous run.
		default:
			return fmt.Errorf("failed to seed organization %q: %w", seed.Name, err)
		}

		existing, err := s.findOrgIDByName(ctx, seed.Name)
		if err != nil {
			return err
		}

		for _, member := range seed.Members {
			err := s.Join(ctx, existing, member)
			if err != nil && !errors.Is(err, governance.ErrAlreadyMember) {
				s.Logger.Warnf("Failed to seed member %s into %q: %v", member, seed.Name, err)
			}
		}
	}
	return nil
}

func (s *GovernanceService) findOrgIDByName(ctx context.Context, name string) (uint64, error) {
	query := `FOR o IN orgs FILTER o.name == @name LIMIT 1 RETURN o.org_id`
	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"name": name},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to look up organization %q: %w", name, err)
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return 0, governance.ErrOrganizationNotFound
	}
	var orgID uint64
	if _, err := cursor.ReadDocument(ctx, &orgID); err != nil {
		return 0, err
	}
	return orgID, nil
}
