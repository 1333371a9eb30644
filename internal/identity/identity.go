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

// Package identity resolves request credentials into an authenticated
// identity. The identity provider itself is external; this package only
// verifies the bearer token it issued and extracts the claims the rest of
// the service relies on.
package identity

import (
	"context"
	"errors"

	"github.com/lodgeview/lodgeview/internal/tenant"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrTokenInvalid    = errors.New("invalid or expired token")
)

// Identity is a verified caller. TenantID is nil when the identity
// provider issued no tenant claim; callers must treat that, and the
// sentinel value, as absence of tenant context.
type Identity struct {
	UserID   string
	Email    string
	TenantID *string
}

// Tenant returns the tenant identifier, or "" when absent.
func (i *Identity) Tenant() string {
	if i.TenantID == nil {
		return ""
	}
	return *i.TenantID
}

// HasTenant reports whether the identity carries a usable tenant context.
func (i *Identity) HasTenant() bool {
	return tenant.ValidID(i.Tenant())
}

// Resolver turns request credentials into a verified identity
type Resolver interface {
	Resolve(ctx context.Context, credential string) (*Identity, error)
}
