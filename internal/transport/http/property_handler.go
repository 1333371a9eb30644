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
	"net/http"

	"github.com/lodgeview/lodgeview/internal/property"
)

// PropertyListResponse is the envelope for GET /properties
type PropertyListResponse struct {
	Data  []*property.Property `json:"data"`
	Total int                  `json:"total"`
}

// ListProperties returns the caller's tenant's properties
// @Summary List Properties
// @Description List properties for the caller's tenant, ordered by name
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PropertyListResponse
// @Router /properties [get]
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	tenantID := GetTenantID(r.Context())

	// Always 200: a tenant-less caller and a degraded store both come
	// back as an empty listing, never an error status.
	properties := h.propertyService.ListForTenant(r.Context(), tenantID)

	respondJSON(w, http.StatusOK, PropertyListResponse{
		Data:  properties,
		Total: len(properties),
	})
}
