// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bcrypt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbcrypt "golang.org/x/crypto/bcrypt"

	"github.com/climatec/dispatch/pkg/adapter/hash/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	// the minimum cost keeps the test fast; the cost is a deployment
	// tuning knob, not part of the compared semantics
	h, err := bcrypt.New(xbcrypt.MinCost)
	require.NoError(t, err)

	hashed, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotContains(t, hashed, "s3cret")
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))

	assert.True(t, h.Compare(hashed, "s3cret"))
	assert.False(t, h.Compare(hashed, "S3cret"))
	assert.False(t, h.Compare(hashed, ""))
	assert.False(t, h.Compare("not-a-bcrypt-hash", "s3cret"))
}

func TestHashesAreSalted(t *testing.T) {
	h, err := bcrypt.New(xbcrypt.MinCost)
	require.NoError(t, err)

	h1, err := h.Hash("s3cret")
	require.NoError(t, err)
	h2, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "equal passwords must not share a hash")
	assert.True(t, h.Compare(h1, "s3cret"))
	assert.True(t, h.Compare(h2, "s3cret"))
}

func TestNewCostBounds(t *testing.T) {
	_, err := bcrypt.New(0)
	assert.NoError(t, err, "zero cost selects the default")

	_, err = bcrypt.New(xbcrypt.MinCost - 1)
	assert.Error(t, err)

	_, err = bcrypt.New(xbcrypt.MaxCost + 1)
	assert.Error(t, err)
}
