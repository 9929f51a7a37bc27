// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package hash exports the password hashing interface which the use
// cases layer expects from the adapter layer. Only a one-way hash and
// a constant-time comparison are needed; the concrete algorithm (a
// bcrypt implementation, see pkg/adapter/hash/bcrypt) stays out of
// the core, so it can be swapped or its cost re-tuned without
// touching the use cases.
package hash

// Hasher hashes plaintext passwords for storage and compares stored
// hashes against login attempts.
type Hasher interface {
	// Hash derives a self-describing hash string from the plaintext
	// password. The returned string embeds whatever parameters the
	// algorithm needs for later comparison.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the
	// stored hash. A mismatch is a false return, not an error; errors
	// are reserved for malformed hashes.
	Compare(hashed, password string) bool
}
