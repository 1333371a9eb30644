package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPurpose: Validates that empty and sentinel tenant identifiers are rejected as tenant context.
// Scope: Unit Test
// Security: Multi-tenant boundary enforcement (sentinel must never widen to a real tenant)
// Expected: ValidID returns false for "", "default_tenant"; true for regular identifiers.
// Test Case ID: TEN-01
func TestTenant_ValidID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"", false},
		{SentinelID, false},
		{"acme", true},
		{"0199b6a1-7a1a-7b6e-9df3-1f2a3b4c5d6e", true},
		{"default", true}, // only the exact sentinel is reserved
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidID(tt.id))
		})
	}
}

// TestPurpose: Validates that Require maps missing tenant context to the shared sentinel error.
// Scope: Unit Test
// Expected: ErrNoContext for empty/sentinel IDs, nil otherwise.
// Test Case ID: TEN-02
func TestTenant_Require(t *testing.T) {
	assert.ErrorIs(t, Require(""), ErrNoContext)
	assert.ErrorIs(t, Require(SentinelID), ErrNoContext)
	assert.NoError(t, Require("acme"))
}
