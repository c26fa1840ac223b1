//go:build unit

package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	lotID := uuid.MustParse("3f9d2a6c-8b41-4f0e-9c57-1d2e3f4a5b6c")

	assert.Equal(t, "parkhub:availability:lot:3f9d2a6c-8b41-4f0e-9c57-1d2e3f4a5b6c", lotKey("parkhub:", lotID))
	assert.Equal(t, "parkhub:availability:lots", allLotsKey("parkhub:"))
	assert.Equal(t, "parkhub:stats:dashboard", statsKey("parkhub:"))

	// no prefix still yields a usable key
	assert.Equal(t, "availability:lots", allLotsKey(""))
}
