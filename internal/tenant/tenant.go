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

// Package tenant defines the tenant-context contract shared by every
// tenant-scoped operation in the service.
package tenant

import "errors"

// SentinelID is a legacy placeholder that some upstream identity records
// still carry instead of a real tenant. It must never be treated as a
// usable tenant context.
const SentinelID = "default_tenant"

// ErrNoContext indicates the caller has no usable tenant context.
var ErrNoContext = errors.New("no valid tenant context")

// ValidID reports whether id is a usable tenant identifier. Empty values
// and the sentinel are both rejected.
func ValidID(id string) bool {
	return id != "" && id != SentinelID
}

// Require returns ErrNoContext unless id is a usable tenant identifier.
func Require(id string) error {
	if !ValidID(id) {
		return ErrNoContext
	}
	return nil
}
