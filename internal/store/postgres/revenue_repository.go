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

package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lodgeview/lodgeview/internal/revenue"
)

// RevenueRepository implements revenue.Aggregator over the reservations
// table. Callers are expected to have authorized the property/tenant pair
// already; the tenant filter here is the second line of defense.
type RevenueRepository struct {
	db *DB
}

// NewRevenueRepository creates a new revenue repository
func NewRevenueRepository(db *DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// Summarize computes total revenue and reservation count for one property,
// scoped by tenant. The total is scanned as text so it reaches the decimal
// type without ever passing through a binary float.
func (r *RevenueRepository) Summarize(ctx context.Context, propertyID, tenantID string) (*revenue.Summary, error) {
	var (
		total    string
		currency string
		count    int
	)
	err := r.db.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount), 0)::text,
			COALESCE(MIN(currency), ''),
			COUNT(*)::int
		FROM reservations
		WHERE property_id = $1 AND tenant_id = $2
	`, propertyID, tenantID).Scan(&total, &currency, &count)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reservations: %w", err)
	}

	amount, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("failed to parse revenue total %q: %w", total, err)
	}

	return &revenue.Summary{
		PropertyID: propertyID,
		Total:      amount,
		Currency:   currency,
		Count:      count,
	}, nil
}
