// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// Technician models a field technician. The email address is a
// uniqueness key and, together with the password hash, is used for
// authentication. The plaintext password never reaches this layer;
// the use cases receive it already hashed by the hash.Hasher adapter.
type Technician struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewTechnician creates a technician with a fresh random ID and the
// given registration instant.
func NewTechnician(
	name, phone, email, passwordHash string, registeredAt time.Time,
) Technician {
	return Technician{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: passwordHash,
		RegisteredAt: registeredAt,
	}
}

// WithName returns a copy of the technician with the given name.
func (t Technician) WithName(name string) Technician {
	t.Name = name
	return t
}

// WithPhone returns a copy with the given phone number.
func (t Technician) WithPhone(phone string) Technician {
	t.Phone = phone
	return t
}

// WithEmail returns a copy with the given email address. Email
// uniqueness is re-checked by the use cases layer.
func (t Technician) WithEmail(email string) Technician {
	t.Email = email
	return t
}

// WithPasswordHash returns a copy with the given password hash.
func (t Technician) WithPasswordHash(hash string) Technician {
	t.PasswordHash = hash
	return t
}
