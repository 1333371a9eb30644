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

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Config holds metrics configuration
type Config struct {
	Enabled bool
}

// Meter holds the service's instruments
type Meter struct {
	meter metric.Meter

	// Requests counts handled HTTP requests by route and status
	Requests metric.Int64Counter
	// RequestDuration records request latency in milliseconds
	RequestDuration metric.Float64Histogram
	// AccessDenials counts denied property access checks by reason
	AccessDenials metric.Int64Counter
}

// New creates a new meter instance and registers the service instruments
func New(ctx context.Context, cfg Config, serviceName string) (*Meter, error) {
	name := serviceName
	if !cfg.Enabled {
		name = "noop"
	}

	// Instruments come from the global meter provider; without a configured
	// provider they are no-ops, so registration is always safe.
	meter := otel.Meter(name)

	requests, err := meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Handled HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	denials, err := meter.Int64Counter(
		"property_access_denied_total",
		metric.WithDescription("Denied property access checks"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create denial counter: %w", err)
	}

	return &Meter{
		meter:           meter,
		Requests:        requests,
		RequestDuration: duration,
		AccessDenials:   denials,
	}, nil
}

// GetMeter returns the underlying meter
func (m *Meter) GetMeter() metric.Meter {
	return m.meter
}
