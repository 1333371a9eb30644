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
	"fmt"
	"log/slog"

	"github.com/lodgeview/lodgeview/internal/audit"
	"github.com/lodgeview/lodgeview/internal/observability/logger"
	"github.com/lodgeview/lodgeview/internal/property"
)

// Guard is the access check in front of per-property revenue data.
// Satisfied by *property.Service.
type Guard interface {
	Authorize(ctx context.Context, propertyID, tenantID string) (*property.Property, error)
}

// Service assembles revenue summaries for authorized property/tenant pairs
type Service struct {
	guard       Guard
	aggregator  Aggregator
	auditLogger audit.Logger
}

// NewService creates a new revenue service
func NewService(guard Guard, aggregator Aggregator, auditLogger audit.Logger) *Service {
	return &Service{
		guard:       guard,
		aggregator:  aggregator,
		auditLogger: auditLogger,
	}
}

// PropertySummary returns the normalized revenue summary for propertyID.
//
// The ownership check runs first and must succeed; the aggregator is
// never invoked for a property/tenant pair that was not granted. Guard
// errors pass through untouched so the transport layer can map them;
// aggregator errors come back wrapped in ErrAggregationFailed.
func (s *Service) PropertySummary(ctx context.Context, propertyID, tenantID string) (*PropertySummary, error) {
	if _, err := s.guard.Authorize(ctx, propertyID, tenantID); err != nil {
		return nil, err
	}

	// Aggregation is scoped by the same tenant that passed the guard.
	summary, err := s.aggregator.Summarize(ctx, propertyID, tenantID)
	if err != nil {
		slog.ErrorContext(ctx, "revenue aggregation failed",
			logger.Component("revenue"),
			logger.PropertyID(propertyID),
			logger.TenantID(tenantID),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrAggregationFailed, err)
	}

	result := assemble(propertyID, summary)

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeRevenueViewed,
		TenantID: tenantID,
		Resource: result.PropertyID,
		Metadata: map[string]any{
			"currency":           result.Currency,
			"reservations_count": result.ReservationsCount,
		},
	})
	return result, nil
}

// assemble fills transport defaults: the requested property id when the
// aggregator omits one, and DefaultCurrency for a missing currency code.
func assemble(requestedID string, summary *Summary) *PropertySummary {
	propertyID := summary.PropertyID
	if propertyID == "" {
		propertyID = requestedID
	}
	currency := summary.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return &PropertySummary{
		PropertyID:        propertyID,
		TotalRevenue:      Normalize(summary.Total),
		Currency:          currency,
		ReservationsCount: summary.Count,
	}
}
