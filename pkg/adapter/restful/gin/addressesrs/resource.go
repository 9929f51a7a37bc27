// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package addressesrs realizes the client addresses resource, allowing
// the address manipulation REST APIs to be accepted and delegated to
// the addresses use cases respectively.
package addressesrs

import (
	"errors"
	"net/http"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/usecase/addressuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	addrs *addressuc.UseCase
}

// Register instantiates a resource adapting the addresses use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/dispatch/v1/addresses
//  2. GET request to /api/dispatch/v1/addresses
//  3. GET request to /api/dispatch/v1/addresses/:id
//  4. GET request to /api/dispatch/v1/addresses/client/:id
//  5. PUT request to /api/dispatch/v1/addresses/:id
//  6. DELETE request to /api/dispatch/v1/addresses/:id
func Register(r *gin.RouterGroup, addrs *addressuc.UseCase) {
	rs := &resource{addrs: addrs}
	r.POST("addresses", rs.CreateAddress)
	r.GET("addresses", rs.ListAddresses)
	r.GET("addresses/:id", rs.GetAddress)
	r.GET("addresses/client/:id", rs.ListAddressesByClient)
	r.PUT("addresses/:id", rs.UpdateAddress)
	r.DELETE("addresses/:id", rs.DeleteAddress)
}

func (rs *resource) CreateAddress(c *gin.Context) {
	req := rs.DserCreateAddressReq(c)
	if req == nil {
		return
	}
	addr, err := rs.addrs.Create(
		c, req.ClientID,
		req.Street, req.Number, req.Neighborhood,
		req.City, req.State, req.PostalCode, req.Complement,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, addr)
}

func (rs *resource) ListAddresses(c *gin.Context) {
	list, err := rs.addrs.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) ListAddressesByClient(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	list, err := rs.addrs.ListByClient(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetAddress(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	addr, err := rs.addrs.Get(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case addr == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("address not found")))
	default:
		c.JSON(http.StatusOK, addr)
	}
}

func (rs *resource) UpdateAddress(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	req := rs.DserUpdateAddressReq(c)
	if req == nil {
		return
	}
	addr, err := rs.addrs.Modify(c, id, addressuc.Update{
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Complement:   req.Complement,
	})
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case addr == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("address not found")))
	default:
		c.JSON(http.StatusOK, addr)
	}
}

func (rs *resource) DeleteAddress(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := rs.addrs.Delete(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case !deleted:
		serdser.SerErr(c, cerr.NotFound(errors.New("address not found")))
	default:
		c.Status(http.StatusNoContent)
	}
}
