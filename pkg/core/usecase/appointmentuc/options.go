// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appointmentuc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the appointments use case.
type Option func(uc *UseCase) error

// WithClock option replaces the wall clock which anchors the
// future-instant check. It exists for the tests; production callers
// should leave the default time.Now in place.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = now
		return nil
	}
}

// WithMinNotice option requires bookings to be placed at least the
// given duration ahead of the current instant, instead of merely in
// the future. This option may be passed to the New() function.
func WithMinNotice(d time.Duration) Option {
	return func(uc *UseCase) error {
		if d <= 0 {
			return fmt.Errorf("minimum notice (%d) is not positive", d)
		}
		if uc.minNotice != 0 {
			return errors.New("minimum notice is already configured")
		}
		uc.minNotice = d
		return nil
	}
}
