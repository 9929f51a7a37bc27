// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climatec/dispatch/pkg/adapter/auth/jwt"
)

func TestIssueAndVerify(t *testing.T) {
	i, err := jwt.New("test-secret", time.Hour)
	require.NoError(t, err)

	techID := uuid.New()
	token, err := i.Issue(techID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := i.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, techID, got)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	i1, err := jwt.New("test-secret", time.Hour)
	require.NoError(t, err)
	i2, err := jwt.New("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := i1.Issue(uuid.New())
	require.NoError(t, err)

	got, err := i2.Verify(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	i, err := jwt.New("test-secret", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{
		"",
		"not.a.token",
		// alg=none with an empty signature must not pass the
		// HS256 method allow-list
		"eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
			"eyJzdWIiOiIwMDAwMDAwMC0wMDAwLTAwMDAtMDAwMC0wMDAwMDAwMDAwMDAifQ.",
	} {
		got, err := i.Verify(token)
		assert.Error(t, err)
		assert.Equal(t, uuid.Nil, got)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	i, err := jwt.New("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := i.Issue(uuid.New())
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	got, err := i.Verify(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestNewValidation(t *testing.T) {
	_, err := jwt.New("", time.Hour)
	assert.Error(t, err, "an empty secret is not acceptable")

	_, err = jwt.New("test-secret", -time.Hour)
	assert.Error(t, err)

	_, err = jwt.New("test-secret", 0)
	assert.NoError(t, err, "zero lifetime selects the default")
}
