// Package util provides utility functions for deriving law identifiers
// and extracting configuration from the environment.
//
//revive:disable-next-line:var-naming
package util

import (
	"os"
	"strings"
)

// SecondsPerDay converts the day-based voting windows of the API into
// the unix-second timestamps stored on proposals.
const SecondsPerDay int64 = 24 * 60 * 60

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key)
	if !ex {
		return defVal
	}
	return val
}

// SplitEnvList splits a comma-separated env var into trimmed entries,
// dropping empties.
func SplitEnvList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeOrgName trims surrounding whitespace from an organization
// name. Names are otherwise case-sensitive: "Guild" and "guild" are
// different organizations.
func NormalizeOrgName(name string) string {
	return strings.TrimSpace(name)
}
