// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package technicianuc contains the technicians UseCase: registering
// a technician with a hashed password, authenticating one by email
// and password, and the usual maintenance operations. The email
// address is the uniqueness key.
//
// Login failures are reported uniformly as "email or password
// incorrect", so a caller cannot probe which emails are registered.
package technicianuc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/climatec/dispatch/pkg/core/auth"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/hash"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/climatec/dispatch/pkg/core/repo"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UseCase represents the technicians use case. Besides the database
// collaborators, it holds the password hasher and the access-token
// issuer which are implemented in the adapter layer.
type UseCase struct {
	pool   repo.Pool
	techrp repo.Technicians
	hasher hash.Hasher
	issuer auth.Issuer
}

// New instantiates a technicians use case.
func New(
	p repo.Pool, techs repo.Technicians,
	h hash.Hasher, i auth.Issuer,
) *UseCase {
	return &UseCase{pool: p, techrp: techs, hasher: h, issuer: i}
}

// Update describes the requested field changes of one technician.
// Nil fields are left unchanged. A non-nil Password is validated and
// stored as a fresh hash.
type Update struct {
	Name     *string
	Phone    *string
	Email    *string
	Password *string
}

// Register creates a technician after validating its fields and the
// email uniqueness, storing the password as a hash. The uniqueness
// check and the insert run in one transaction.
func (techs *UseCase) Register(
	ctx context.Context, name, phone, email, password string,
) (tech *model.Technician, err error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := checkPhone(phone); err != nil {
		return nil, err
	}
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	hashed, err := techs.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	err = techs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := techs.techrp.Tx(tx)
			if err := techs.checkEmailFree(ctx, q, email, uuid.Nil); err != nil {
				return err
			}
			nt := model.NewTechnician(name, phone, email, hashed, time.Now())
			if err := q.Insert(ctx, nt); err != nil {
				return fmt.Errorf("inserting technician: %w", err)
			}
			tech = &nt
			return nil
		})
	})
	if err != nil {
		tech = nil
	}
	return
}

// Login authenticates the technician by email and password and issues
// a signed access token. An unknown email and a wrong password fail
// with the same authentication error.
func (techs *UseCase) Login(
	ctx context.Context, email, password string,
) (token string, tech *model.Technician, err error) {
	if err := checkEmail(email); err != nil {
		return "", nil, err
	}
	if password == "" {
		return "", nil, cerr.Validation(errors.New("password is required"))
	}
	err = techs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		tech, err = techs.techrp.Conn(c).ByEmail(ctx, email)
		return err
	})
	if err != nil {
		return "", nil, err
	}
	if tech == nil || !techs.hasher.Compare(tech.PasswordHash, password) {
		return "", nil, cerr.Authentication(
			errors.New("email or password incorrect"),
		)
	}
	token, err = techs.issuer.Issue(tech.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	return token, tech, nil
}

// Modify applies the given field changes to the id technician,
// returning nil (and no error) when the id does not exist. A changed
// email is re-checked for uniqueness, excluding the technician
// itself.
func (techs *UseCase) Modify(
	ctx context.Context, id uuid.UUID, u Update,
) (tech *model.Technician, err error) {
	var hashed string
	if u.Password != nil {
		if err := checkPassword(*u.Password); err != nil {
			return nil, err
		}
		if hashed, err = techs.hasher.Hash(*u.Password); err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
	}
	err = techs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := techs.techrp.Tx(tx)
			cur, err := q.ByID(ctx, id)
			if err != nil {
				return fmt.Errorf("finding technician: %w", err)
			}
			if cur == nil {
				return nil
			}
			next := *cur
			if u.Name != nil {
				if err := checkName(*u.Name); err != nil {
					return err
				}
				next = next.WithName(*u.Name)
			}
			if u.Phone != nil {
				if err := checkPhone(*u.Phone); err != nil {
					return err
				}
				next = next.WithPhone(*u.Phone)
			}
			if u.Email != nil {
				if err := checkEmail(*u.Email); err != nil {
					return err
				}
				if err := techs.checkEmailFree(
					ctx, q, *u.Email, cur.ID,
				); err != nil {
					return err
				}
				next = next.WithEmail(*u.Email)
			}
			if u.Password != nil {
				next = next.WithPasswordHash(hashed)
			}
			ok, err := q.Update(ctx, next)
			if err != nil {
				return fmt.Errorf("updating technician: %w", err)
			}
			if !ok {
				return nil
			}
			tech = &next
			return nil
		})
	})
	if err != nil {
		tech = nil
	}
	return
}

// Get returns the id technician, or nil when it does not exist.
func (techs *UseCase) Get(
	ctx context.Context, id uuid.UUID,
) (tech *model.Technician, err error) {
	err = techs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		tech, err = techs.techrp.Conn(c).ByID(ctx, id)
		return err
	})
	if err != nil {
		tech = nil
	}
	return
}

// List returns all registered technicians.
func (techs *UseCase) List(ctx context.Context) (
	list []model.Technician, err error,
) {
	err = techs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		list, err = techs.techrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Delete removes the id technician, reporting whether it existed.
func (techs *UseCase) Delete(
	ctx context.Context, id uuid.UUID,
) (deleted bool, err error) {
	err = techs.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		deleted, err = techs.techrp.Conn(c).Delete(ctx, id)
		return err
	})
	if err != nil {
		deleted = false
	}
	return
}

func (techs *UseCase) checkEmailFree(
	ctx context.Context, q repo.TechniciansQueryer,
	email string, selfID uuid.UUID,
) error {
	holder, err := q.ByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("finding technician by email: %w", err)
	}
	if holder != nil && holder.ID != selfID {
		return cerr.Conflict(errors.New("email already in use"))
	}
	return nil
}

func checkName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return cerr.Validation(
			errors.New("name must have at least 2 characters"),
		)
	}
	return nil
}

func checkPhone(phone string) error {
	if len(strings.TrimSpace(phone)) < 10 {
		return cerr.Validation(
			errors.New("phone must have at least 10 digits"),
		)
	}
	return nil
}

func checkEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return cerr.Validation(errors.New("invalid email"))
	}
	return nil
}

func checkPassword(password string) error {
	if len(password) < 6 {
		return cerr.Validation(
			errors.New("password must have at least 6 characters"),
		)
	}
	return nil
}
