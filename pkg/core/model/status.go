// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Status specifies the appointment lifecycle enum. Although this enum
// is numeric, it is (de)serialized as a string for readability in the
// adapter layer and in the database rows.
//
// The nominal progression is scheduled, confirmed, in_progress, and
// finally completed, with cancelled reachable from any non-terminal
// state. No transition adjacency is enforced beyond membership in the
// valid set: any valid status may be set after any other.
type Status int

// Valid values for the Status enum.
const (
	StatusInvalid Status = iota // zero value is invalid

	StatusScheduled  // initial status of a fresh appointment
	StatusConfirmed  // client confirmed the visit
	StatusInProgress // technician is on site
	StatusCompleted  // terminal; frees the technician's slot
	StatusCancelled  // terminal; frees the technician's slot
)

// ErrUnknownStatus indicates that a given string may not be parsed as
// a valid/known appointment status. The invalid string itself is not
// encoded in the error because the caller of ParseStatus already knows
// it and is expected to wrap this error with that context.
var ErrUnknownStatus = errors.New("unknown appointment status")

// StatusError indicates an invalid status value, containing the
// invalid numeric value itself. It is returned by Validate for values
// which are outside of the valid enum range.
type StatusError int

// Error implements the error interface, returning a string
// representation of the StatusError.
func (e StatusError) Error() string {
	return fmt.Sprintf("invalid appointment status: %d", int(e))
}

// Validate returns nil if the Status value is valid. For invalid
// values, an instance of the StatusError will be returned.
func (s Status) Validate() error {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled:
		return nil
	default:
		return StatusError(s)
	}
}

// String converts the Status enum to a string, helping to serialize
// it for transmission to web clients and for storage in database
// rows. An invalid status causes a panic.
func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusConfirmed:
		return "confirmed"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		panic(StatusError(s))
	}
}

// MarshalText implements encoding.TextMarshaler, so a Status is
// serialized as its string form in JSON documents.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseStatus.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus parses the given string and returns a Status, helping to
// deserialize it when reading a REST API request or a database row.
// For invalid strings, StatusInvalid and ErrUnknownStatus will be
// returned.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "scheduled":
		return StatusScheduled, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "in_progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return StatusInvalid, ErrUnknownStatus
	}
}
