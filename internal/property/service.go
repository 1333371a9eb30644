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

package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lodgeview/lodgeview/internal/audit"
	"github.com/lodgeview/lodgeview/internal/observability/logger"
	"github.com/lodgeview/lodgeview/internal/tenant"
)

// Service enforces tenant ownership on property access. It is the sole
// gate in front of per-property revenue data.
type Service struct {
	repo        Repository
	auditLogger audit.Logger
}

// NewService creates a new property service
func NewService(repo Repository, auditLogger audit.Logger) *Service {
	return &Service{
		repo:        repo,
		auditLogger: auditLogger,
	}
}

// Authorize confirms that propertyID exists and belongs to tenantID,
// returning its metadata on success.
//
// A missing property and a property owned by another tenant both come
// back as ErrNotFound; tenant.ErrNoContext is returned before the store
// is ever queried when the tenant identifier is empty or the sentinel.
func (s *Service) Authorize(ctx context.Context, propertyID, tenantID string) (*Property, error) {
	if err := tenant.Require(tenantID); err != nil {
		s.auditLogger.Log(ctx, audit.Event{
			Type:     audit.TypeAccessDenied,
			TenantID: tenantID,
			Resource: propertyID,
			Reason:   "no valid tenant context",
		})
		return nil, err
	}

	p, err := s.repo.FindScoped(ctx, propertyID, tenantID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.auditLogger.Log(ctx, audit.Event{
				Type:     audit.TypeAccessDenied,
				TenantID: tenantID,
				Resource: propertyID,
				Reason:   "not found",
			})
			return nil, ErrNotFound
		}

		slog.ErrorContext(ctx, "property ownership check failed",
			logger.Component("property"),
			logger.PropertyID(propertyID),
			logger.TenantID(tenantID),
			logger.Error(err),
		)
		s.auditLogger.Log(ctx, audit.Event{
			Type:     audit.TypeVerificationFailed,
			TenantID: tenantID,
			Resource: propertyID,
		})
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeAccessGranted,
		TenantID: tenantID,
		Resource: propertyID,
	})
	return p, nil
}

// ListForTenant returns the properties owned by tenantID, ordered by name.
//
// This path degrades instead of failing: an unusable tenant context or a
// store error both yield an empty list. Callers cannot distinguish "no
// properties" from "listing failed"; the failure is logged and audited
// instead of surfaced.
func (s *Service) ListForTenant(ctx context.Context, tenantID string) []*Property {
	if !tenant.ValidID(tenantID) {
		return []*Property{}
	}

	properties, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		slog.ErrorContext(ctx, "property listing degraded to empty result",
			logger.Component("property"),
			logger.TenantID(tenantID),
			logger.Error(err),
		)
		s.auditLogger.Log(ctx, audit.Event{
			Type:     audit.TypeListingDegraded,
			TenantID: tenantID,
		})
		return []*Property{}
	}

	if properties == nil {
		properties = []*Property{}
	}
	return properties
}
