package cache

import (
	"github.com/google/uuid"
)

// Scope keys are deterministic so writers can invalidate exactly the entries
// a commit affected. No versioned or timestamped key schemes; staleness is
// bounded by TTL alone.
const (
	lotScopePrefix = "availability:lot:"
	allLotsScope   = "availability:lots"
	statsScope     = "stats:dashboard"
)

func lotKey(prefix string, lotID uuid.UUID) string {
	return prefix + lotScopePrefix + lotID.String()
}

func allLotsKey(prefix string) string {
	return prefix + allLotsScope
}

func statsKey(prefix string) string {
	return prefix + statsScope
}
