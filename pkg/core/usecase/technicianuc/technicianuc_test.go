// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package technicianuc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climatec/dispatch/internal/test/fakerp"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/usecase/technicianuc"
)

// fakeHasher derives a reversible fake hash, so the tests can tell a
// fresh hash apart from a stale one without the bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashed, password string) bool {
	return hashed == "hashed:"+password
}

// fakeIssuer records the last technician a token was issued for.
type fakeIssuer struct {
	lastID uuid.UUID
}

func (i *fakeIssuer) Issue(technicianID uuid.UUID) (string, error) {
	i.lastID = technicianID
	return "token-" + technicianID.String(), nil
}

func (i *fakeIssuer) Verify(token string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimPrefix(token, "token-"))
}

func newUseCase() (*fakerp.DB, *fakeIssuer, *technicianuc.UseCase) {
	db := fakerp.NewDB()
	issuer := &fakeIssuer{}
	uc := technicianuc.New(
		fakerp.NewPool(db), fakerp.NewTechnicians(db),
		fakeHasher{}, issuer,
	)
	return db, issuer, uc
}

func assertKind(t *testing.T, err error, kind cerr.Kind) {
	t.Helper()
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce, "expected a client-visible error")
	assert.Equal(t, kind, ce.Kind)
}

func TestRegister(t *testing.T) {
	db, _, uc := newUseCase()
	tech, err := uc.Register(
		context.Background(),
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"s3cret",
	)
	require.NoError(t, err)
	require.NotNil(t, tech)
	assert.NotEqual(t, uuid.Nil, tech.ID)
	assert.Equal(t, "carlos@climatec.example", tech.Email)
	assert.Equal(
		t, "hashed:s3cret", tech.PasswordHash,
		"the plaintext may not be stored",
	)
	assert.Contains(t, db.Technicians, tech.ID)
}

func TestRegisterValidation(t *testing.T) {
	for _, tc := range []struct {
		name     string
		techName string
		phone    string
		email    string
		password string
		detail   string
	}{
		{"short name", "C", "11988887777",
			"carlos@climatec.example", "s3cret",
			"name must have at least 2 characters"},
		{"short phone", "Carlos Lima", "119",
			"carlos@climatec.example", "s3cret",
			"phone must have at least 10 digits"},
		{"bad email", "Carlos Lima", "11988887777",
			"carlos-at-climatec", "s3cret",
			"invalid email"},
		{"spaced email", "Carlos Lima", "11988887777",
			"carlos @climatec.example", "s3cret",
			"invalid email"},
		{"short password", "Carlos Lima", "11988887777",
			"carlos@climatec.example", "12345",
			"password must have at least 6 characters"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			db, _, uc := newUseCase()
			tech, err := uc.Register(
				context.Background(),
				tc.techName, tc.phone, tc.email, tc.password,
			)
			assert.Nil(t, tech)
			assertKind(t, err, cerr.KindValidation)
			assert.Contains(t, err.Error(), tc.detail)
			assert.Empty(t, db.Technicians)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, _, uc := newUseCase()
	_, err := uc.Register(
		context.Background(),
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"s3cret",
	)
	require.NoError(t, err)

	tech, err := uc.Register(
		context.Background(),
		"Other Carlos", "11911112222", "carlos@climatec.example",
		"0th3rs3cret",
	)
	assert.Nil(t, tech)
	assertKind(t, err, cerr.KindConflict)
	assert.Contains(t, err.Error(), "email already in use")
}

func TestLogin(t *testing.T) {
	_, issuer, uc := newUseCase()
	tech, err := uc.Register(
		context.Background(),
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"s3cret",
	)
	require.NoError(t, err)

	token, got, err := uc.Login(
		context.Background(), "carlos@climatec.example", "s3cret",
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tech.ID, got.ID)
	assert.Equal(t, "token-"+tech.ID.String(), token)
	assert.Equal(t, tech.ID, issuer.lastID)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	_, _, uc := newUseCase()
	_, err := uc.Register(
		context.Background(),
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"s3cret",
	)
	require.NoError(t, err)

	for _, tc := range []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "carlos@climatec.example", "wrong"},
		{"unknown email", "nobody@climatec.example", "s3cret"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			token, got, err := uc.Login(
				context.Background(), tc.email, tc.password,
			)
			assert.Empty(t, token)
			assert.Nil(t, got)
			assertKind(t, err, cerr.KindAuth)
			assert.Contains(
				t, err.Error(), "email or password incorrect",
				"unknown emails must not be distinguishable",
			)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	_, _, uc := newUseCase()
	token, got, err := uc.Login(
		context.Background(), "not-an-email", "s3cret",
	)
	assert.Empty(t, token)
	assert.Nil(t, got)
	assertKind(t, err, cerr.KindValidation)

	token, got, err = uc.Login(
		context.Background(), "carlos@climatec.example", "",
	)
	assert.Empty(t, token)
	assert.Nil(t, got)
	assertKind(t, err, cerr.KindValidation)
	assert.Contains(t, err.Error(), "password is required")
}

func TestModify(t *testing.T) {
	db, _, uc := newUseCase()
	tech, err := uc.Register(
		context.Background(),
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"s3cret",
	)
	require.NoError(t, err)

	email := "c.lima@climatec.example"
	password := "n3ws3cret"
	got, err := uc.Modify(
		context.Background(), tech.ID,
		technicianuc.Update{Email: &email, Password: &password},
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, email, got.Email)
	assert.Equal(t, "hashed:n3ws3cret", got.PasswordHash)
	assert.Equal(t, email, db.Technicians[tech.ID].Email)

	// the old password no longer authenticates
	_, _, err = uc.Login(context.Background(), email, "s3cret")
	assertKind(t, err, cerr.KindAuth)
	_, _, err = uc.Login(context.Background(), email, "n3ws3cret")
	assert.NoError(t, err)
}

func TestModifyEmailConflicts(t *testing.T) {
	_, _, uc := newUseCase()
	tech, err := uc.Register(
		context.Background(),
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"s3cret",
	)
	require.NoError(t, err)
	_, err = uc.Register(
		context.Background(),
		"Paula Reis", "11933334444", "paula@climatec.example",
		"s3cret2",
	)
	require.NoError(t, err)

	taken := "paula@climatec.example"
	got, err := uc.Modify(
		context.Background(), tech.ID,
		technicianuc.Update{Email: &taken},
	)
	assert.Nil(t, got)
	assertKind(t, err, cerr.KindConflict)

	// re-submitting the current email is not a conflict
	own := "carlos@climatec.example"
	got, err = uc.Modify(
		context.Background(), tech.ID,
		technicianuc.Update{Email: &own},
	)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestModifyMissing(t *testing.T) {
	_, _, uc := newUseCase()
	name := "Carlos Lima"
	got, err := uc.Modify(
		context.Background(), uuid.New(),
		technicianuc.Update{Name: &name},
	)
	assert.NoError(t, err, "a missing id is not an error")
	assert.Nil(t, got)
}

func TestGetListDelete(t *testing.T) {
	_, _, uc := newUseCase()
	tech, err := uc.Register(
		context.Background(),
		"Carlos Lima", "11988887777", "carlos@climatec.example",
		"s3cret",
	)
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), tech.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tech.ID, got.ID)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := uc.Delete(context.Background(), tech.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(context.Background(), tech.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
