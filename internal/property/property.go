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
)

var (
	// ErrNotFound covers both "no such property" and "property owned by
	// another tenant". The two cases are deliberately indistinguishable so
	// cross-tenant existence never leaks.
	ErrNotFound = errors.New("property not found")

	// ErrVerificationFailed indicates the store failed while the ownership
	// check was running. This is a system fault, not an access decision.
	ErrVerificationFailed = errors.New("access verification failed")
)

// Property is a bookable unit owned by exactly one tenant. Ownership is
// immutable from this API's perspective.
type Property struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	TenantID string `json:"-"`
}

// Repository defines the interface for tenant-scoped property queries
type Repository interface {
	// FindScoped returns the property with the given id if and only if it
	// belongs to tenantID. Zero rows map to ErrNotFound.
	FindScoped(ctx context.Context, propertyID, tenantID string) (*Property, error)

	// ListByTenant returns all properties owned by tenantID, ordered by
	// name ascending.
	ListByTenant(ctx context.Context, tenantID string) ([]*Property, error)
}
