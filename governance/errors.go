package governance

import (
	"errors"
	"net/http"
)

// Every precondition violation is a terminal rejection of the current
// call: nothing is retried internally and no partial mutation escapes
// a failed transition.
var (
	// Access / identity
	ErrNotVerified   = errors.New("account does not hold a valid verification credential")
	ErrNameTaken     = errors.New("organization name is already taken")
	ErrAlreadyMember = errors.New("account is already a member of this organization")
	ErrNotAMember    = errors.New("account is not a member of this organization")

	// Capacity
	ErrOrganizationFull = errors.New("organization has reached its member limit")

	// Proposal lifecycle
	ErrPreviousProposalStillActive = errors.New("previous extension proposal is still active")
	ErrNoActiveProposals           = errors.New("organization has no extension proposals")
	ErrAlreadyVoted                = errors.New("account has already voted on this proposal")
	ErrVotingPeriodEnded           = errors.New("voting period has ended")
	ErrNominationNotActive         = errors.New("nomination is not active")
	ErrNominationAlreadyActive     = errors.New("nominee already has an active nomination")
	ErrAlreadyOfficial             = errors.New("nominee is already an official")
	ErrNotAnOfficial               = errors.New("account is not an official of this organization")
	ErrRemovalAlreadyExists        = errors.New("a removal proposal already exists for this official")
	ErrRemovalNotFound             = errors.New("no removal proposal exists for this official")
	ErrLawAlreadyExists            = errors.New("an identical law proposal is already pending")
	ErrLawNotFound                 = errors.New("law not found")
	ErrInvalidApprovalPercentage   = errors.New("required approval percentage must be between 1 and 100")
	ErrInsufficientMemberCount     = errors.New("organization needs at least 3 members to nominate an official")

	// Registry
	ErrOrganizationNotFound = errors.New("organization not found")
)

// ErrorCode returns the stable machine-readable code for a governance
// error, or empty for errors outside the taxonomy.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotVerified):
		return "NotVerified"
	case errors.Is(err, ErrNameTaken):
		return "NameTaken"
	case errors.Is(err, ErrAlreadyMember):
		return "AlreadyMember"
	case errors.Is(err, ErrNotAMember):
		return "NotAMember"
	case errors.Is(err, ErrOrganizationFull):
		return "OrganizationFull"
	case errors.Is(err, ErrPreviousProposalStillActive):
		return "PreviousProposalStillActive"
	case errors.Is(err, ErrNoActiveProposals):
		return "NoActiveProposals"
	case errors.Is(err, ErrAlreadyVoted):
		return "AlreadyVoted"
	case errors.Is(err, ErrVotingPeriodEnded):
		return "VotingPeriodEnded"
	case errors.Is(err, ErrNominationNotActive):
		return "NominationNotActive"
	case errors.Is(err, ErrNominationAlreadyActive):
		return "NominationAlreadyActive"
	case errors.Is(err, ErrAlreadyOfficial):
		return "AlreadyOfficial"
	case errors.Is(err, ErrNotAnOfficial):
		return "NotAnOfficial"
	case errors.Is(err, ErrRemovalAlreadyExists):
		return "RemovalAlreadyExists"
	case errors.Is(err, ErrRemovalNotFound):
		return "RemovalNotFound"
	case errors.Is(err, ErrLawAlreadyExists):
		return "LawAlreadyExists"
	case errors.Is(err, ErrLawNotFound):
		return "LawNotFound"
	case errors.Is(err, ErrInvalidApprovalPercentage):
		return "InvalidApprovalPercentage"
	case errors.Is(err, ErrInsufficientMemberCount):
		return "InsufficientMemberCountForOfficialProposal"
	case errors.Is(err, ErrOrganizationNotFound):
		return "OrganizationNotFound"
	default:
		return ""
	}
}

// IsGovernanceError reports whether the error belongs to the
// governance taxonomy (as opposed to an infrastructure failure).
func IsGovernanceError(err error) bool {
	return ErrorCode(err) != ""
}

// HTTPStatus maps a governance error to the status the REST layer
// answers with; infrastructure failures map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrOrganizationNotFound),
		errors.Is(err, ErrLawNotFound),
		errors.Is(err, ErrRemovalNotFound),
		errors.Is(err, ErrNoActiveProposals),
		errors.Is(err, ErrNominationNotActive):
		return http.StatusNotFound
	case errors.Is(err, ErrNotVerified),
		errors.Is(err, ErrNotAMember),
		errors.Is(err, ErrNotAnOfficial):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidApprovalPercentage):
		return http.StatusBadRequest
	case IsGovernanceError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
