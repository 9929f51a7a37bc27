// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/google/uuid"
)

// String returns an Attr for a string value.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Int returns an Attr for an int value.
func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// ID returns an Attr for the given entity identifier.
func ID(key string, value uuid.UUID) slog.Attr {
	return slog.String(key, value.String())
}

// Valuer returns an Attr for the given slog.LogValuer value, so its
// serialization may be deferred to its own LogValue method.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}
