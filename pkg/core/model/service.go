// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// Service models one entry of a technician's service catalog, such as
// an air conditioner installation or maintenance visit. Price is a
// non-negative amount and EstimatedMinutes is a positive duration
// estimate; both bounds are enforced by the use cases layer.
type Service struct {
	ID               uuid.UUID `json:"id"`
	TechnicianID     uuid.UUID `json:"technician_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	RegisteredAt     time.Time `json:"registered_at"`
}

// NewService creates a service with a fresh random ID and the given
// registration instant.
func NewService(
	technicianID uuid.UUID,
	name, description string,
	price float64,
	estimatedMinutes int,
	registeredAt time.Time,
) Service {
	return Service{
		ID:               uuid.New(),
		TechnicianID:     technicianID,
		Name:             name,
		Description:      description,
		Price:            price,
		EstimatedMinutes: estimatedMinutes,
		RegisteredAt:     registeredAt,
	}
}

// WithName returns a copy of the service with the given name.
func (s Service) WithName(name string) Service {
	s.Name = name
	return s
}

// WithDescription returns a copy with the given description.
func (s Service) WithDescription(description string) Service {
	s.Description = description
	return s
}

// WithPrice returns a copy with the given price.
func (s Service) WithPrice(price float64) Service {
	s.Price = price
	return s
}

// WithEstimatedMinutes returns a copy with the given estimate.
func (s Service) WithEstimatedMinutes(minutes int) Service {
	s.EstimatedMinutes = minutes
	return s
}
