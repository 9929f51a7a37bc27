// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Address models one service address of a client. State is a
// two-letter region code and Complement is optional free text (an
// apartment number, a gate code, and the like).
type Address struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"client_id"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Complement   string    `json:"complement"`
}

// NewAddress creates an address with a fresh random ID, owned by the
// given client.
func NewAddress(
	clientID uuid.UUID,
	street, number, neighborhood, city, state, postalCode, complement string,
) Address {
	return Address{
		ID:           uuid.New(),
		ClientID:     clientID,
		Street:       street,
		Number:       number,
		Neighborhood: neighborhood,
		City:         city,
		State:        state,
		PostalCode:   postalCode,
		Complement:   complement,
	}
}

// WithStreet returns a copy of the address with the given street.
func (a Address) WithStreet(street string) Address {
	a.Street = street
	return a
}

// WithNumber returns a copy with the given street number.
func (a Address) WithNumber(number string) Address {
	a.Number = number
	return a
}

// WithNeighborhood returns a copy with the given neighborhood.
func (a Address) WithNeighborhood(neighborhood string) Address {
	a.Neighborhood = neighborhood
	return a
}

// WithCity returns a copy with the given city.
func (a Address) WithCity(city string) Address {
	a.City = city
	return a
}

// WithState returns a copy with the given two-letter region code.
func (a Address) WithState(state string) Address {
	a.State = state
	return a
}

// WithPostalCode returns a copy with the given postal code.
func (a Address) WithPostalCode(postalCode string) Address {
	a.PostalCode = postalCode
	return a
}

// WithComplement returns a copy with the given complement text. An
// empty string is acceptable and clears the complement.
func (a Address) WithComplement(complement string) Address {
	a.Complement = complement
	return a
}
