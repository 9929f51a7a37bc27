// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsrs realizes the clients resource, allowing the client
// manipulation REST APIs to be accepted and delegated to the clients
// use cases respectively.
package clientsrs

import (
	"errors"
	"net/http"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/usecase/clientuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	clients *clientuc.UseCase
}

// Register instantiates a resource adapting the clients use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/dispatch/v1/clients
//  2. GET request to /api/dispatch/v1/clients
//  3. GET request to /api/dispatch/v1/clients/:id
//  4. GET request to /api/dispatch/v1/clients/phone/:phone
//  5. PUT request to /api/dispatch/v1/clients/:id
//  6. DELETE request to /api/dispatch/v1/clients/:id
func Register(r *gin.RouterGroup, clients *clientuc.UseCase) {
	rs := &resource{clients: clients}
	r.POST("clients", rs.CreateClient)
	r.GET("clients", rs.ListClients)
	r.GET("clients/:id", rs.GetClient)
	r.GET("clients/phone/:phone", rs.GetClientByPhone)
	r.PUT("clients/:id", rs.UpdateClient)
	r.DELETE("clients/:id", rs.DeleteClient)
}

func (rs *resource) CreateClient(c *gin.Context) {
	req := rs.DserCreateClientReq(c)
	if req == nil {
		return
	}
	cli, err := rs.clients.Create(c, req.Name, req.Phone)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cli)
}

func (rs *resource) ListClients(c *gin.Context) {
	list, err := rs.clients.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetClient(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	cli, err := rs.clients.Get(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case cli == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("client not found")))
	default:
		c.JSON(http.StatusOK, cli)
	}
}

func (rs *resource) GetClientByPhone(c *gin.Context) {
	cli, err := rs.clients.GetByPhone(c, c.Param("phone"))
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case cli == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("client not found")))
	default:
		c.JSON(http.StatusOK, cli)
	}
}

func (rs *resource) UpdateClient(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	req := rs.DserUpdateClientReq(c)
	if req == nil {
		return
	}
	cli, err := rs.clients.Modify(c, id, clientuc.Update{
		Name:  req.Name,
		Phone: req.Phone,
	})
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case cli == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("client not found")))
	default:
		c.JSON(http.StatusOK, cli)
	}
}

func (rs *resource) DeleteClient(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := rs.clients.Delete(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case !deleted:
		serdser.SerErr(c, cerr.NotFound(errors.New("client not found")))
	default:
		c.Status(http.StatusNoContent)
	}
}
