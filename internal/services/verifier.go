// Package services provides internal service implementations for the
// governance backend.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/roman-popenov/base-final-project/util"
)

// VerifierClient asks the external credential verifier whether an
// account holds a valid, non-duplicated verification credential. The
// verifier's answer is never cached: the gate must reflect external
// state on every call.
type VerifierClient struct {
	BaseURL string
	Client  *http.Client
}

// NewVerifierClient builds a client for the verifier service at the
// given base URL.
func NewVerifierClient(baseURL string) *VerifierClient {
	return &VerifierClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// IsVerified implements governance.IdentityGate against the verifier's
// GET /verified/{account} endpoint.
func (v *VerifierClient) IsVerified(ctx context.Context, account string) (bool, error) {
	endpoint := fmt.Sprintf("%s/verified/%s", v.BaseURL, url.PathEscape(account))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build verifier request: %w", err)
	}

	resp, err := v.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("verifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("verifier returned status %d", resp.StatusCode)
	}

	var body struct {
		Verified bool `json:"verified"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode verifier response: %w", err)
	}

	return body.Verified, nil
}

// StaticVerifier is an allowlist-backed identity gate for development
// and seeding, configured via the VERIFIED_ACCOUNTS env var.
type StaticVerifier struct {
	Accounts map[string]bool
}

// NewStaticVerifier builds a static gate from a comma-separated
// account list.
func NewStaticVerifier(accounts string) *StaticVerifier {
	allowed := make(map[string]bool)
	for _, account := range util.SplitEnvList(accounts) {
		allowed[account] = true
	}
	return &StaticVerifier{Accounts: allowed}
}

// IsVerified reports allowlist membership.
func (v *StaticVerifier) IsVerified(_ context.Context, account string) (bool, error) {
	return v.Accounts[account], nil
}
