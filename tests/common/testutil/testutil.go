//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Field returns a mutation that sets (or, for a nil value, removes) one key
// of a request map.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// DtoMap converts a request DTO to its JSON map form and applies mutations,
// so validation tests can hit cases the typed struct cannot express.
func DtoMap(t *testing.T, dto any, mutates ...func(map[string]any)) map[string]any {
	t.Helper()

	data, err := json.Marshal(dto)
	require.NoError(t, err, "Failed to encode DTO to JSON")

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m), "Failed to decode DTO JSON")

	for _, mutate := range mutates {
		mutate(m)
	}
	return m
}
