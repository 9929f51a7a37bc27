// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climatec/dispatch/pkg/adapter/config/settings"
)

func ExampleDuration_marshal() {
	d := settings.Duration(24 * time.Hour)
	b, err := json.Marshal(&d)
	fmt.Println(err)
	fmt.Println(string(b))
	// Output:
	// <nil>
	// "24h"
}

func TestDurationUnmarshalText(t *testing.T) {
	var d settings.Duration
	require.NoError(t, d.UnmarshalText([]byte("90m")))
	assert.Equal(t, settings.Duration(90*time.Minute), d)

	err := d.UnmarshalText([]byte("tomorrow"))
	assert.Error(t, err)
	assert.Equal(
		t, settings.Duration(90*time.Minute), d,
		"a failed parse must not update the receiver",
	)
}

func TestDurationMarshalDropsZeroComponents(t *testing.T) {
	for _, tc := range []struct {
		d   time.Duration
		str string
	}{
		{24 * time.Hour, "24h"},
		{90 * time.Minute, "1h30m"},
		{2 * time.Minute, "2m"},
		{45 * time.Second, "45s"},
	} {
		d := settings.Duration(tc.d)
		s := d.Marshal()
		require.NotNil(t, s)
		assert.Equal(t, tc.str, *s)
	}

	var d *settings.Duration
	assert.Nil(t, d.Marshal())
}

func TestOverwriteNil(t *testing.T) {
	def := true

	var dst *bool
	settings.OverwriteNil(&dst, &def)
	require.NotNil(t, dst)
	assert.True(t, *dst)

	explicit := false
	dst = &explicit
	settings.OverwriteNil(&dst, &def)
	assert.False(t, *dst, "an explicit value must be kept")

	dst = nil
	settings.OverwriteNil(&dst, nil)
	assert.Nil(t, dst)
}

func TestVerifyRange(t *testing.T) {
	newd := func(d time.Duration) *settings.Duration {
		sd := settings.Duration(d)
		return &sd
	}

	t.Run("within bounds", func(t *testing.T) {
		v := newd(2 * time.Hour)
		err := settings.VerifyRange(
			&v, newd(time.Hour), newd(24*time.Hour),
		)
		assert.Nil(t, err)
		assert.Equal(t, settings.Duration(2*time.Hour), *v)
	})

	t.Run("nil value", func(t *testing.T) {
		var v *settings.Duration
		err := settings.VerifyRange(
			&v, newd(time.Hour), newd(24*time.Hour),
		)
		assert.Nil(t, err)
		assert.Nil(t, v)
	})

	t.Run("clamped to min", func(t *testing.T) {
		v := newd(time.Minute)
		err := settings.VerifyRange(
			&v, newd(time.Hour), newd(24*time.Hour),
		)
		require.NotNil(t, err)
		assert.True(t, err.LessThanMin)
		assert.Equal(t, settings.Duration(time.Minute), *err.Value)
		assert.Equal(
			t, settings.Duration(time.Hour), *v,
			"the value must be clamped into the range",
		)
	})

	t.Run("clamped to max", func(t *testing.T) {
		v := newd(48 * time.Hour)
		err := settings.VerifyRange(
			&v, newd(time.Hour), newd(24*time.Hour),
		)
		require.NotNil(t, err)
		assert.False(t, err.LessThanMin)
		assert.Equal(t, settings.Duration(24*time.Hour), *v)
	})

	t.Run("invalid range", func(t *testing.T) {
		v := newd(2 * time.Hour)
		err := settings.VerifyRange(
			&v, newd(24*time.Hour), newd(time.Hour),
		)
		require.NotNil(t, err)
		assert.True(t, err.InvalidRange)
	})
}
