package orgs

// CreateOrgRequest is the body of POST /orgs.
type CreateOrgRequest struct {
	Name        string `json:"name"`
	MemberLimit uint64 `json:"member_limit"`
}
