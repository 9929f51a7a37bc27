// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientuc_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climatec/dispatch/internal/test/fakerp"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/usecase/clientuc"
)

func newUseCase() (*fakerp.DB, *clientuc.UseCase) {
	db := fakerp.NewDB()
	return db, clientuc.New(fakerp.NewPool(db), fakerp.NewClients(db))
}

func assertKind(t *testing.T, err error, kind cerr.Kind) {
	t.Helper()
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce, "expected a client-visible error")
	assert.Equal(t, kind, ce.Kind)
}

func TestCreate(t *testing.T) {
	db, uc := newUseCase()
	cli, err := uc.Create(
		context.Background(), "Maria Souza", "11999998888",
	)
	require.NoError(t, err)
	require.NotNil(t, cli)
	assert.NotEqual(t, uuid.Nil, cli.ID)
	assert.Equal(t, "Maria Souza", cli.Name)
	assert.Equal(t, "11999998888", cli.Phone)
	assert.False(t, cli.RegisteredAt.IsZero())
	assert.Contains(t, db.Clients, cli.ID)
}

func TestCreateValidation(t *testing.T) {
	for _, tc := range []struct {
		name    string
		cliName string
		phone   string
		detail  string
	}{
		{"short name", "M", "11999998888",
			"name must have at least 2 characters"},
		{"blank name", "   ", "11999998888",
			"name must have at least 2 characters"},
		{"short phone", "Maria Souza", "119",
			"phone must have at least 10 digits"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			db, uc := newUseCase()
			cli, err := uc.Create(
				context.Background(), tc.cliName, tc.phone,
			)
			assert.Nil(t, cli)
			assertKind(t, err, cerr.KindValidation)
			assert.Contains(t, err.Error(), tc.detail)
			assert.Empty(t, db.Clients)
		})
	}
}

func TestCreateDuplicatePhone(t *testing.T) {
	_, uc := newUseCase()
	_, err := uc.Create(
		context.Background(), "Maria Souza", "11999998888",
	)
	require.NoError(t, err)

	cli, err := uc.Create(
		context.Background(), "Jose Alves", "11999998888",
	)
	assert.Nil(t, cli)
	assertKind(t, err, cerr.KindConflict)
	assert.Contains(t, err.Error(), "phone already in use")
}

func TestModify(t *testing.T) {
	db, uc := newUseCase()
	cli, err := uc.Create(
		context.Background(), "Maria Souza", "11999998888",
	)
	require.NoError(t, err)

	name := "Maria S. Lima"
	got, err := uc.Modify(
		context.Background(), cli.ID, clientuc.Update{Name: &name},
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, cli.Phone, got.Phone, "phone must be kept")
	assert.Equal(t, name, db.Clients[cli.ID].Name)
}

func TestModifyPhoneConflicts(t *testing.T) {
	_, uc := newUseCase()
	cli, err := uc.Create(
		context.Background(), "Maria Souza", "11999998888",
	)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "Jose Alves", "11911112222")
	require.NoError(t, err)

	// taking another client's phone is a conflict
	taken := "11911112222"
	got, err := uc.Modify(
		context.Background(), cli.ID, clientuc.Update{Phone: &taken},
	)
	assert.Nil(t, got)
	assertKind(t, err, cerr.KindConflict)

	// re-submitting the current phone is not
	own := "11999998888"
	got, err = uc.Modify(
		context.Background(), cli.ID, clientuc.Update{Phone: &own},
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, own, got.Phone)
}

func TestModifyMissing(t *testing.T) {
	_, uc := newUseCase()
	name := "Maria Souza"
	got, err := uc.Modify(
		context.Background(), uuid.New(), clientuc.Update{Name: &name},
	)
	assert.NoError(t, err, "a missing id is not an error")
	assert.Nil(t, got)
}

func TestGetAndGetByPhone(t *testing.T) {
	_, uc := newUseCase()
	cli, err := uc.Create(
		context.Background(), "Maria Souza", "11999998888",
	)
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), cli.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cli.ID, got.ID)

	got, err = uc.GetByPhone(context.Background(), "11999998888")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cli.ID, got.ID)

	got, err = uc.GetByPhone(context.Background(), "11900000000")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAndDelete(t *testing.T) {
	_, uc := newUseCase()
	cli, err := uc.Create(
		context.Background(), "Maria Souza", "11999998888",
	)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "Jose Alves", "11911112222")
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	deleted, err := uc.Delete(context.Background(), cli.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(context.Background(), cli.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)

	list, err = uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
