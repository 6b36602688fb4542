package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/arangodb/shared"
	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/roman-popenov/base-final-project/database"
	eventsgov "github.com/roman-popenov/base-final-project/events/modules/governance"
	"github.com/roman-popenov/base-final-project/governance"
	"github.com/roman-popenov/base-final-project/model"
	"github.com/roman-popenov/base-final-project/util"
)

// errRevConflict signals a lost optimistic-concurrency race on an
// organization document; the transition is retried from a fresh read.
var errRevConflict = errors.New("organization document revision conflict")

const maxMutateRetries = 5

// EventPublisher is the sink for governance events; publishing is best
// effort and never fails a governance operation.
type EventPublisher interface {
	Publish(ctx context.Context, event eventsgov.GovernanceEvent) error
}

// GovernanceService is the registry and transaction harness around the
// governance engine. Each operation is one atomic read-modify-write of
// a single organization document: the engine's transition runs against
// a loaded copy and the write back carries an _rev guard, so a lost
// race discards the copy and replays the transition. Operations on
// different organizations never contend.
type GovernanceService struct {
	DB       database.DBConnection
	Engine   *governance.Engine
	Producer EventPublisher // nil disables event emission
	Logger   *zap.SugaredLogger
}

// NewGovernanceService wires the service with its collaborators.
func NewGovernanceService(db database.DBConnection, engine *governance.Engine, producer EventPublisher, logger *zap.SugaredLogger) *GovernanceService {
	return &GovernanceService{DB: db, Engine: engine, Producer: producer, Logger: logger}
}

// ============================================================================
// ORGANIZATION REGISTRY
// ============================================================================

// CreateOrganization allocates the next organization id, runs the
// founding transition, and persists the new document. Name uniqueness
// is enforced twice: a friendly pre-check and the unique persistent
// index on orgs.name, whose insert conflict also maps to NameTaken.
func (s *GovernanceService) CreateOrganization(ctx context.Context, caller, name string, memberLimit uint64) (*model.Organization, error) {
	name = util.NormalizeOrgName(name)

	available, err := s.NameAvailable(ctx, name)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, governance.ErrNameTaken
	}

	orgID, err := s.nextOrgID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate organization id: %w", err)
	}

	org, err := s.Engine.FoundOrganization(ctx, orgID, caller, name, memberLimit)
	if err != nil {
		return nil, err
	}
	org.Key = strconv.FormatUint(orgID, 10)

	if _, err := s.DB.Collections[database.OrgCollection].CreateDocument(ctx, org); err != nil {
		if shared.IsConflict(err) {
			return nil, governance.ErrNameTaken
		}
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	s.addMembership(ctx, org, caller)
	s.emit(ctx, eventsgov.GovernanceEvent{
		EventType: eventsgov.EventOrgCreated,
		OrgID:     org.OrgID,
		OrgName:   org.Name,
		Account:   caller,
	})
	return org, nil
}

// GetOrganization loads one organization by id.
func (s *GovernanceService) GetOrganization(ctx context.Context, orgID uint64) (*model.Organization, error) {
	return s.loadOrg(ctx, orgID)
}

// ListOrganizations returns summaries of all organizations.
func (s *GovernanceService) ListOrganizations(ctx context.Context) ([]model.OrgSummary, error) {
	query := `FOR o IN orgs SORT o.org_id ASC RETURN o`
	cursor, err := s.DB.Database.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer cursor.Close()

	now := s.Engine.Clock.Now()
	summaries := []model.OrgSummary{}
	for cursor.HasMore() {
		var org model.Organization
		if _, err := cursor.ReadDocument(ctx, &org); err != nil {
			return nil, err
		}
		summaries = append(summaries, org.Summary(now))
	}
	return summaries, nil
}

// IsMember reports whether the account is currently a member.
func (s *GovernanceService) IsMember(ctx context.Context, orgID uint64, account string) (bool, error) {
	org, err := s.loadOrg(ctx, orgID)
	if err != nil {
		return false, err
	}
	return org.IsMember(account), nil
}

// NameAvailable reports whether an organization name is still free.
// The comparison is case-sensitive and exact.
func (s *GovernanceService) NameAvailable(ctx context.Context, name string) (bool, error) {
	query := `FOR o IN orgs FILTER o.name == @name LIMIT 1 RETURN o.org_id`
	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"name": util.NormalizeOrgName(name)},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check name availability: %w", err)
	}
	defer cursor.Close()
	return !cursor.HasMore(), nil
}

// ListAccountOrganizations returns the reverse membership index rows
// for one account.
func (s *GovernanceService) ListAccountOrganizations(ctx context.Context, account string) ([]model.Membership, error) {
	query := `FOR m IN memberships FILTER m.account == @account SORT m.org_id ASC RETURN m`
	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"account": account},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer cursor.Close()

	memberships := []model.Membership{}
	for cursor.HasMore() {
		var m model.Membership
		if _, err := cursor.ReadDocument(ctx, &m); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, nil
}

// ============================================================================
// MEMBERSHIP LEDGER
// ============================================================================

// Join adds the caller to the organization.
func (s *GovernanceService) Join(ctx context.Context, orgID uint64, caller string) error {
	return s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		if err := s.Engine.Join(ctx, org, caller); err != nil {
			return nil, err
		}
		return []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventMemberJoined,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
		}}, nil
	}, func(org *model.Organization) {
		s.addMembership(ctx, org, caller)
	})
}

// Leave removes the caller from the organization.
func (s *GovernanceService) Leave(ctx context.Context, orgID uint64, caller string) error {
	return s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		if err := s.Engine.Leave(ctx, org, caller); err != nil {
			return nil, err
		}
		return []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventMemberLeft,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
		}}, nil
	}, func(org *model.Organization) {
		s.removeMembership(ctx, org.OrgID, caller)
	})
}

// ============================================================================
// EXTENSION PROPOSAL WORKFLOW
// ============================================================================

// ProposeExtension opens a member-limit proposal.
func (s *GovernanceService) ProposeExtension(ctx context.Context, orgID uint64, caller string, newLimit uint64, durationDays int64) error {
	return s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		if err := s.Engine.ProposeExtension(org, caller, newLimit, durationDays); err != nil {
			return nil, err
		}
		return []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventExtensionProposed,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
			Subject:   strconv.FormatUint(newLimit, 10),
		}}, nil
	}, nil)
}

// VoteOnExtension casts a ballot on the open extension proposal.
func (s *GovernanceService) VoteOnExtension(ctx context.Context, orgID uint64, caller string, inFavor bool) error {
	return s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		if err := s.Engine.VoteOnExtension(org, caller, inFavor); err != nil {
			return nil, err
		}
		return []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventExtensionVoteCast,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
		}}, nil
	}, nil)
}

// ============================================================================
// OFFICIAL GOVERNANCE WORKFLOW
// ============================================================================

// ProposeOfficial nominates a member for official status.
func (s *GovernanceService) ProposeOfficial(ctx context.Context, orgID uint64, caller, nominee string) error {
	return s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		if err := s.Engine.ProposeOfficial(org, caller, nominee); err != nil {
			return nil, err
		}
		return []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventOfficialNominated,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
			Subject:   nominee,
		}}, nil
	}, nil)
}

// VoteForOfficial casts a ballot for a nominee; returns true when the
// ballot elected the nominee.
func (s *GovernanceService) VoteForOfficial(ctx context.Context, orgID uint64, caller, nominee string) (bool, error) {
	var elected bool
	err := s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		var err error
		elected, err = s.Engine.VoteForOfficial(org, caller, nominee)
		if err != nil {
			return nil, err
		}
		events := []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventOfficialVoteCast,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
			Subject:   nominee,
		}}
		if elected {
			events = append(events, eventsgov.GovernanceEvent{
				EventType: eventsgov.EventOfficialElected,
				OrgID:     org.OrgID,
				OrgName:   org.Name,
				Subject:   nominee,
			})
		}
		return events, nil
	}, nil)
	return elected, err
}

// ProposeRemoval opens a removal vote against an official.
func (s *GovernanceService) ProposeRemoval(ctx context.Context, orgID uint64, caller, official string) error {
	return s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		if err := s.Engine.ProposeRemoval(org, caller, official); err != nil {
			return nil, err
		}
		return []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventRemovalProposed,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
			Subject:   official,
		}}, nil
	}, nil)
}

// VoteOnRemoval casts a ballot on an official's removal; returns true
// when the ballot revoked the official.
func (s *GovernanceService) VoteOnRemoval(ctx context.Context, orgID uint64, caller, official string, inFavor bool) (bool, error) {
	var removed bool
	err := s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		var err error
		removed, err = s.Engine.VoteOnRemoval(org, caller, official, inFavor)
		if err != nil {
			return nil, err
		}
		events := []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventRemovalVoteCast,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
			Subject:   official,
		}}
		if removed {
			events = append(events, eventsgov.GovernanceEvent{
				EventType: eventsgov.EventOfficialRemoved,
				OrgID:     org.OrgID,
				OrgName:   org.Name,
				Subject:   official,
			})
		}
		return events, nil
	}, nil)
	return removed, err
}

// ============================================================================
// LAW WORKFLOW
// ============================================================================

// ProposeLaw stores an official's law proposal and returns its
// identifier.
func (s *GovernanceService) ProposeLaw(ctx context.Context, orgID uint64, caller, description string, requiredPercentage uint64, durationDays int64) (string, error) {
	var lawID string
	err := s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		var err error
		lawID, err = s.Engine.ProposeLaw(org, caller, description, requiredPercentage, durationDays)
		if err != nil {
			return nil, err
		}
		return []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventLawProposed,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
			Subject:   lawID,
		}}, nil
	}, nil)
	return lawID, err
}

// VoteOnLaw casts a ballot on a pending law and reports its outcome.
func (s *GovernanceService) VoteOnLaw(ctx context.Context, orgID uint64, caller, lawID string, inFavor bool) (governance.LawVoteOutcome, error) {
	var outcome governance.LawVoteOutcome
	err := s.mutate(ctx, orgID, func(org *model.Organization) ([]eventsgov.GovernanceEvent, error) {
		var err error
		outcome, err = s.Engine.VoteOnLaw(org, caller, lawID, inFavor)
		if err != nil {
			return nil, err
		}
		events := []eventsgov.GovernanceEvent{{
			EventType: eventsgov.EventLawVoteCast,
			OrgID:     org.OrgID,
			OrgName:   org.Name,
			Account:   caller,
			Subject:   lawID,
		}}
		switch outcome {
		case governance.LawVoteEnacted:
			events = append(events, eventsgov.GovernanceEvent{
				EventType: eventsgov.EventLawEnacted,
				OrgID:     org.OrgID,
				OrgName:   org.Name,
				Subject:   lawID,
			})
		case governance.LawVoteRejected:
			events = append(events, eventsgov.GovernanceEvent{
				EventType: eventsgov.EventLawRejected,
				OrgID:     org.OrgID,
				OrgName:   org.Name,
				Subject:   lawID,
			})
		}
		return events, nil
	}, nil)
	return outcome, err
}

// GetLaw returns one law, pending or enacted.
func (s *GovernanceService) GetLaw(ctx context.Context, orgID uint64, lawID string) (model.LawView, error) {
	org, err := s.loadOrg(ctx, orgID)
	if err != nil {
		return model.LawView{}, err
	}
	return s.Engine.GetLaw(org, lawID)
}

// GetAllProposedLaws lists the pending laws of an organization.
func (s *GovernanceService) GetAllProposedLaws(ctx context.Context, orgID uint64) ([]model.LawView, error) {
	org, err := s.loadOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return s.Engine.GetAllProposedLaws(org), nil
}

// GetAllEnactedLaws lists the enacted laws of an organization.
func (s *GovernanceService) GetAllEnactedLaws(ctx context.Context, orgID uint64) ([]model.LawView, error) {
	org, err := s.loadOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return s.Engine.GetAllEnactedLaws(org), nil
}

// ============================================================================
// HARNESS INTERNALS
// ============================================================================

// mutate runs one engine transition as an atomic read-modify-write.
// The transition function returns the events to emit on success; a
// governance rejection aborts without writing. afterCommit, when set,
// maintains secondary records (the reverse membership index) once the
// organization document is durably updated.
func (s *GovernanceService) mutate(ctx context.Context, orgID uint64, fn func(*model.Organization) ([]eventsgov.GovernanceEvent, error), afterCommit func(*model.Organization)) error {
	var events []eventsgov.GovernanceEvent
	var committed *model.Organization

	attempt := func() error {
		org, err := s.loadOrg(ctx, orgID)
		if err != nil {
			return backoff.Permanent(err)
		}
		events, err = fn(org)
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := s.saveOrg(ctx, org); err != nil {
			if errors.Is(err, errRevConflict) {
				return err // retryable: replay against a fresh read
			}
			return backoff.Permanent(err)
		}
		committed = org
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxMutateRetries)
	if err := backoff.Retry(attempt, bo); err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return perm.Err
		}
		return err
	}

	if afterCommit != nil {
		afterCommit(committed)
	}
	s.emit(ctx, events...)
	return nil
}

// loadOrg fetches one organization document by organization id.
func (s *GovernanceService) loadOrg(ctx context.Context, orgID uint64) (*model.Organization, error) {
	query := `FOR o IN orgs FILTER o.org_id == @orgID LIMIT 1 RETURN o`
	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"orgID": orgID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load organization %d: %w", orgID, err)
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, governance.ErrOrganizationNotFound
	}

	var org model.Organization
	if _, err := cursor.ReadDocument(ctx, &org); err != nil {
		return nil, fmt.Errorf("failed to read organization %d: %w", orgID, err)
	}
	// Documents written before the governance maps were always stored
	// may lack them.
	org.EnsureMaps()
	return &org, nil
}

// saveOrg writes the mutated document back, guarded by the revision it
// was read at. Zero replaced rows means another writer got there
// first.
func (s *GovernanceService) saveOrg(ctx context.Context, org *model.Organization) error {
	rev := org.Rev
	org.UpdatedAt = time.Now().UTC()
	org.Rev = "" // server assigns the next revision

	query := `
		FOR o IN orgs
		FILTER o._key == @key AND o._rev == @rev
		REPLACE o WITH @doc IN orgs
		RETURN NEW._rev
	`
	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"key": org.Key,
			"rev": rev,
			"doc": org,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save organization %d: %w", org.OrgID, err)
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return errRevConflict
	}
	var newRev string
	if _, err := cursor.ReadDocument(ctx, &newRev); err != nil {
		return err
	}
	org.Rev = newRev
	return nil
}

// nextOrgID atomically increments the organization id counter,
// starting at 1.
func (s *GovernanceService) nextOrgID(ctx context.Context) (uint64, error) {
	query := `
		UPSERT { _key: "org_id" }
		INSERT { _key: "org_id", value: 1 }
		UPDATE { value: OLD.value + 1 }
		IN counters
		RETURN NEW.value
	`
	cursor, err := s.DB.Database.Query(ctx, query, nil)
	if err != nil {
		return 0, err
	}
	defer cursor.Close()

	var value uint64
	found := false
	if cursor.HasMore() {
		if _, err := cursor.ReadDocument(ctx, &value); err != nil {
			return 0, err
		}
		found = true
	}
	return checkOrgIDCounter(value, found)
}

// checkOrgIDCounter rejects an empty or zero counter read. Ids are
// 1-based; minting 0 would collide on its second occurrence.
func checkOrgIDCounter(value uint64, found bool) (uint64, error) {
	if !found || value == 0 {
		return 0, errors.New("organization id counter query returned no value")
	}
	return value, nil
}

// addMembership inserts the reverse-index row for one (account, org).
// Index maintenance is best effort: the organization document stays
// the source of truth.
func (s *GovernanceService) addMembership(ctx context.Context, org *model.Organization, account string) {
	membership := model.Membership{
		Account:  account,
		OrgID:    org.OrgID,
		OrgName:  org.Name,
		JoinedAt: time.Now().UTC(),
	}
	if _, err := s.DB.Collections[database.MembershipCollection].CreateDocument(ctx, membership); err != nil {
		s.Logger.Warnf("Failed to index membership of %s in org %d: %v", account, org.OrgID, err)
	}
}

// removeMembership deletes the reverse-index row for one (account,
// org).
func (s *GovernanceService) removeMembership(ctx context.Context, orgID uint64, account string) {
	query := `
		FOR m IN memberships
		FILTER m.account == @account AND m.org_id == @orgID
		REMOVE m IN memberships
	`
	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"account": account, "orgID": orgID},
	})
	if err != nil {
		s.Logger.Warnf("Failed to unindex membership of %s in org %d: %v", account, orgID, err)
		return
	}
	cursor.Close()
}

// emit publishes governance events; failures are logged and swallowed
// so notification problems never fail the operation.
func (s *GovernanceService) emit(ctx context.Context, events ...eventsgov.GovernanceEvent) {
	if s.Producer == nil {
		return
	}
	for _, event := range events {
		if err := s.Producer.Publish(ctx, event); err != nil {
			s.Logger.Warnf("Failed to publish %s for org %d: %v", event.EventType, event.OrgID, err)
		}
	}
}
