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

package http

import (
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lodgeview/lodgeview/internal/property"
	"github.com/lodgeview/lodgeview/internal/revenue"
	"github.com/lodgeview/lodgeview/internal/tenant"
)

// DashboardSummary returns the revenue summary for one property
// @Summary Revenue Summary
// @Description Revenue summary for a property owned by the caller's tenant
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param property_id query string true "Property ID"
// @Success 200 {object} revenue.PropertySummary
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dashboard/summary [get]
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	propertyID := r.URL.Query().Get("property_id")
	if propertyID == "" {
		respondError(w, http.StatusBadRequest, "property_id is required")
		return
	}

	tenantID := GetTenantID(r.Context())

	summary, err := h.revenueService.PropertySummary(r.Context(), propertyID, tenantID)
	if err != nil {
		h.respondSummaryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// respondSummaryError maps pipeline errors onto the API's terminal
// states. Internal error text never reaches the response body.
func (h *Handler) respondSummaryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tenant.ErrNoContext):
		h.countDenial(r, "no_tenant_context")
		respondError(w, http.StatusForbidden, "no valid tenant context")
	case errors.Is(err, property.ErrNotFound):
		h.countDenial(r, "not_found")
		respondError(w, http.StatusNotFound, "property not found")
	case errors.Is(err, property.ErrVerificationFailed):
		respondError(w, http.StatusInternalServerError, "error verifying property access")
	case errors.Is(err, revenue.ErrAggregationFailed):
		respondError(w, http.StatusInternalServerError, "error fetching revenue data")
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) countDenial(r *http.Request, reason string) {
	h.meter.AccessDenials.Add(r.Context(), 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
