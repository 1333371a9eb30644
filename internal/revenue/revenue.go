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

package revenue

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrAggregationFailed indicates the aggregator faulted after access was
// already granted. It is a system fault, never an access decision.
var ErrAggregationFailed = errors.New("revenue aggregation failed")

// DefaultCurrency is used when the aggregator reports no currency.
const DefaultCurrency = "USD"

// Summary is the aggregator's raw result for one property. Total stays a
// decimal until the transport boundary; PropertyID, Currency and Count may
// be zero-valued when the aggregator omits them.
type Summary struct {
	PropertyID string
	Total      decimal.Decimal
	Currency   string
	Count      int
}

// Aggregator computes a revenue summary over a property's reservations,
// scoped to the tenant that passed the access check.
type Aggregator interface {
	Summarize(ctx context.Context, propertyID, tenantID string) (*Summary, error)
}

// PropertySummary is the transport-ready view of a Summary.
type PropertySummary struct {
	PropertyID        string  `json:"property_id"`
	TotalRevenue      float64 `json:"total_revenue"`
	Currency          string  `json:"currency"`
	ReservationsCount int     `json:"reservations_count"`
}
