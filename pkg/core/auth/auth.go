// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package auth exports the access-token issuing interface which the
// technician login use case expects from the adapter layer. The core
// does not care about the token format; the JWT implementation lives
// in pkg/adapter/auth/jwt.
package auth

import "github.com/google/uuid"

// Issuer creates and verifies signed access tokens for authenticated
// technicians. The login use case consumes Issue; the presentation
// layer consumes Verify to guard the account manipulation routes.
type Issuer interface {
	// Issue returns a signed token identifying the given technician.
	Issue(technicianID uuid.UUID) (string, error)
	// Verify parses a token produced by Issue and returns the
	// technician it identifies, or an error for a token which is
	// malformed, expired, or signed with a different secret.
	Verify(token string) (uuid.UUID, error)
}
