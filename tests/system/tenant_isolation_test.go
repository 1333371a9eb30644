// Copyright 2026 The LodgeView Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package system provides integration tests that run against a real PostgreSQL database.
//
// Test Execution:
//
//	INTEGRATION_TEST=true go test -v ./tests/system/...
//
// Prerequisites:
//
//	docker compose up -d postgres
//
// Test Categories:
//   - TEN-*: Tenant isolation tests
//   - REV-*: Revenue aggregation tests
package system

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeview/lodgeview/internal/audit"
	"github.com/lodgeview/lodgeview/internal/property"
	"github.com/lodgeview/lodgeview/internal/revenue"
	"github.com/lodgeview/lodgeview/internal/store/postgres"
)

// testDB is the shared database connection for integration tests
var testDB *postgres.DB

// TestMain sets up and tears down the test database connection
func TestMain(m *testing.M) {
	// Skip if not integration test
	if os.Getenv("INTEGRATION_TEST") != "true" {
		os.Exit(0)
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, postgres.Config{
		Host:         getEnvOrDefault("DB_HOST", "localhost"),
		Port:         getEnvOrDefault("DB_PORT", "5432"),
		User:         getEnvOrDefault("DB_USER", "lodgeview"),
		Password:     getEnvOrDefault("DB_PASSWORD", "lodgeview_dev_password"),
		Database:     getEnvOrDefault("DB_NAME", "lodgeview"),
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	testDB = db

	// Apply migrations
	if err := db.Migrate(ctx, postgres.InitialSchema); err != nil {
		// Ignore errors for already existing tables
		_ = err
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// seedTenant inserts a tenant row and returns its id
func seedTenant(t *testing.T, ctx context.Context, name string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := testDB.Pool().Exec(ctx,
		`INSERT INTO tenants (id, name) VALUES ($1, $2)`, id, name)
	require.NoError(t, err)
	return id
}

// seedProperty inserts a property row owned by tenantID and returns its id
func seedProperty(t *testing.T, ctx context.Context, tenantID, name string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := testDB.Pool().Exec(ctx,
		`INSERT INTO properties (id, tenant_id, name, timezone) VALUES ($1, $2, $3, 'UTC')`,
		id, tenantID, name)
	require.NoError(t, err)
	return id
}

// seedReservation inserts a reservation with the given amount
func seedReservation(t *testing.T, ctx context.Context, propertyID, tenantID, amount, currency string) {
	t.Helper()
	_, err := testDB.Pool().Exec(ctx,
		`INSERT INTO reservations (id, property_id, tenant_id, amount, currency) VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), propertyID, tenantID, amount, currency)
	require.NoError(t, err)
}

// =============================================================================
// TENANT ISOLATION TESTS
// =============================================================================

// TestPurpose: Validates that the ownership check never grants a property to a foreign tenant.
// Scope: Integration Test
// Security: Multi-tenancy boundary enforcement against a real database
// Expected: Grant for the owner; identical not-found denial for foreign and nonexistent properties.
// Test Case ID: TEN-01
func TestTenant_Isolation_GuardAgainstRealStore(t *testing.T) {
	if testDB == nil {
		t.Skip("Integration test requires database (set INTEGRATION_TEST=true)")
	}

	ctx := context.Background()
	auditLogger := audit.NewSlogLogger()
	service := property.NewService(postgres.NewPropertyRepository(testDB), auditLogger)

	tenantA := seedTenant(t, ctx, "Tenant A")
	tenantB := seedTenant(t, ctx, "Tenant B")
	propA := seedProperty(t, ctx, tenantA, "Harbor House")

	granted, err := service.Authorize(ctx, propA, tenantA)
	require.NoError(t, err, "TEN-01: owner must be granted")
	assert.Equal(t, "Harbor House", granted.Name)
	assert.Equal(t, "UTC", granted.Timezone)

	// CRITICAL: foreign tenant and nonexistent property are indistinguishable
	_, errForeign := service.Authorize(ctx, propA, tenantB)
	_, errMissing := service.Authorize(ctx, uuid.NewString(), tenantA)
	assert.ErrorIs(t, errForeign, property.ErrNotFound,
		"TEN-01 SECURITY: foreign tenant MUST be denied")
	assert.ErrorIs(t, errMissing, property.ErrNotFound)
	assert.Equal(t, errForeign.Error(), errMissing.Error(),
		"TEN-01 SECURITY: denial must not leak cross-tenant existence")
}

// TestPurpose: Validates listing purity and ordering against a real database.
// Scope: Integration Test
// Security: Listing must never include another tenant's property.
// Expected: Only the caller's properties, ordered by name ascending.
// Test Case ID: TEN-02
func TestTenant_Isolation_ListingScopedAndOrdered(t *testing.T) {
	if testDB == nil {
		t.Skip("Integration test requires database")
	}

	ctx := context.Background()
	service := property.NewService(postgres.NewPropertyRepository(testDB), audit.NewSlogLogger())

	tenantA := seedTenant(t, ctx, "Tenant A")
	tenantB := seedTenant(t, ctx, "Tenant B")
	seedProperty(t, ctx, tenantA, "Zebra Lodge")
	seedProperty(t, ctx, tenantA, "Alpine Chalet")
	seedProperty(t, ctx, tenantB, "Beach Villa")

	listed := service.ListForTenant(ctx, tenantA)
	require.Len(t, listed, 2)
	assert.Equal(t, "Alpine Chalet", listed[0].Name, "TEN-02: ordered by name ascending")
	assert.Equal(t, "Zebra Lodge", listed[1].Name)
	for _, p := range listed {
		assert.Equal(t, tenantA, p.TenantID,
			"TEN-02 SECURITY: listing returned a foreign tenant's property")
	}
}

// =============================================================================
// REVENUE AGGREGATION TESTS
// =============================================================================

// TestPurpose: Validates SQL aggregation totals, count and decimal precision end to end.
// Scope: Integration Test
// Expected: SUM over the property's reservations only, normalized to 2 fractional digits.
// Test Case ID: REV-01
func TestRevenue_Aggregation_ScopedSum(t *testing.T) {
	if testDB == nil {
		t.Skip("Integration test requires database")
	}

	ctx := context.Background()
	auditLogger := audit.NewSlogLogger()
	propertyService := property.NewService(postgres.NewPropertyRepository(testDB), auditLogger)
	revenueService := revenue.NewService(propertyService, postgres.NewRevenueRepository(testDB), auditLogger)

	tenantA := seedTenant(t, ctx, "Tenant A")
	tenantB := seedTenant(t, ctx, "Tenant B")
	propA := seedProperty(t, ctx, tenantA, fmt.Sprintf("Lodge %s", uuid.NewString()[:8]))
	propB := seedProperty(t, ctx, tenantB, "Foreign Lodge")

	seedReservation(t, ctx, propA, tenantA, "100.1050", "USD")
	seedReservation(t, ctx, propA, tenantA, "23.3500", "USD")
	// Noise that must not leak into the total
	seedReservation(t, ctx, propB, tenantB, "9999.0000", "USD")

	summary, err := revenueService.PropertySummary(ctx, propA, tenantA)
	require.NoError(t, err)
	assert.Equal(t, propA, summary.PropertyID)
	assert.Equal(t, 123.46, summary.TotalRevenue, "REV-01: 123.4550 rounds half-to-even to 123.46")
	assert.Equal(t, "USD", summary.Currency)
	assert.Equal(t, 2, summary.ReservationsCount)
}

// TestPurpose: Validates the summary defaults when a property has no reservations.
// Scope: Integration Test
// Expected: Zero total, zero count, default currency.
// Test Case ID: REV-02
func TestRevenue_Aggregation_EmptyProperty(t *testing.T) {
	if testDB == nil {
		t.Skip("Integration test requires database")
	}

	ctx := context.Background()
	auditLogger := audit.NewSlogLogger()
	propertyService := property.NewService(postgres.NewPropertyRepository(testDB), auditLogger)
	revenueService := revenue.NewService(propertyService, postgres.NewRevenueRepository(testDB), auditLogger)

	tenantA := seedTenant(t, ctx, "Tenant A")
	propA := seedProperty(t, ctx, tenantA, "Quiet Lodge")

	summary, err := revenueService.PropertySummary(ctx, propA, tenantA)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, revenue.DefaultCurrency, summary.Currency)
	assert.Zero(t, summary.ReservationsCount)
}
