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

package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by tokens from the identity provider. tenant_id is a
// pointer so "claim absent" and "claim empty" both surface as no tenant.
type Claims struct {
	TenantID *string `json:"tenant_id,omitempty"`
	Email    string  `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenResolver verifies HMAC-signed bearer tokens
type TokenResolver struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewTokenResolver creates a resolver for tokens signed with secret.
// issuer is optional; when set, tokens from other issuers are rejected.
func NewTokenResolver(secret, issuer string) *TokenResolver {
	return &TokenResolver{
		secret: []byte(secret),
		issuer: issuer,
		leeway: 30 * time.Second,
	}
}

// Resolve verifies credential and returns the identity it asserts.
func (r *TokenResolver) Resolve(ctx context.Context, credential string) (*Identity, error) {
	if credential == "" {
		return nil, ErrUnauthenticated
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithLeeway(r.leeway),
		jwt.WithExpirationRequired(),
	}
	if r.issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		return r.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return &Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		TenantID: claims.TenantID,
	}, nil
}
