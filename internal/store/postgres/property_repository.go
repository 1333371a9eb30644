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
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lodgeview/lodgeview/internal/property"
)

// PropertyRepository implements property.Repository
type PropertyRepository struct {
	db *DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// FindScoped returns the property with the given id only when it belongs
// to tenantID. The tenant filter lives in the query itself so a property
// owned by another tenant is indistinguishable from a missing one.
func (r *PropertyRepository) FindScoped(ctx context.Context, propertyID, tenantID string) (*property.Property, error) {
	var p property.Property
	err := r.db.pool.QueryRow(ctx, `
		SELECT id, name, timezone, tenant_id
		FROM properties
		WHERE id = $1 AND tenant_id = $2
	`, propertyID, tenantID).Scan(&p.ID, &p.Name, &p.Timezone, &p.TenantID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, property.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query property: %w", err)
	}

	return &p, nil
}

// ListByTenant returns all properties owned by tenantID, ordered by name
// ascending under the store's default collation.
func (r *PropertyRepository) ListByTenant(ctx context.Context, tenantID string) ([]*property.Property, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, name, timezone, tenant_id
		FROM properties
		WHERE tenant_id = $1
		ORDER BY name ASC
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []*property.Property
	for rows.Next() {
		var p property.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Timezone, &p.TenantID); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	return properties, nil
}
