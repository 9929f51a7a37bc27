// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// Client models a customer of the dispatch business. The phone number
// is a uniqueness key across all clients.
type Client struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewClient creates a client with a fresh random ID and the given
// registration instant.
func NewClient(name, phone string, registeredAt time.Time) Client {
	return Client{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		RegisteredAt: registeredAt,
	}
}

// WithName returns a copy of the client with the given name.
func (c Client) WithName(name string) Client {
	c.Name = name
	return c
}

// WithPhone returns a copy of the client with the given phone number.
// Phone uniqueness is re-checked by the use cases layer.
func (c Client) WithPhone(phone string) Client {
	c.Phone = phone
	return c
}
