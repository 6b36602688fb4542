package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DeriveLawID computes the deterministic identifier for a law proposal
// from its description, proposer, and proposal time (unix seconds).
// Two proposals collide only when all three inputs match, so a pending
// duplicate is treated as a rejected re-submission rather than
// undefined behavior.
func DeriveLawID(description, proposer string, proposedAt int64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%d", description, proposer, proposedAt))
	return hex.EncodeToString(sum[:])
}
