// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package servicesrs realizes the service catalog resource, allowing
// the catalog manipulation REST APIs to be accepted and delegated to
// the services use cases respectively.
package servicesrs

import (
	"errors"
	"net/http"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/usecase/serviceuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	services *serviceuc.UseCase
}

// Register instantiates a resource adapting the services use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/dispatch/v1/services
//  2. GET request to /api/dispatch/v1/services
//  3. GET request to /api/dispatch/v1/services/:id
//  4. PUT request to /api/dispatch/v1/services/:id
//  5. DELETE request to /api/dispatch/v1/services/:id
func Register(r *gin.RouterGroup, services *serviceuc.UseCase) {
	rs := &resource{services: services}
	r.POST("services", rs.CreateService)
	r.GET("services", rs.ListServices)
	r.GET("services/:id", rs.GetService)
	r.PUT("services/:id", rs.UpdateService)
	r.DELETE("services/:id", rs.DeleteService)
}

func (rs *resource) CreateService(c *gin.Context) {
	req := rs.DserCreateServiceReq(c)
	if req == nil {
		return
	}
	srv, err := rs.services.Create(
		c, req.TechnicianID,
		req.Name, req.Description,
		req.Price, req.EstimatedMinutes,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, srv)
}

func (rs *resource) ListServices(c *gin.Context) {
	list, err := rs.services.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetService(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	srv, err := rs.services.Get(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case srv == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("service not found")))
	default:
		c.JSON(http.StatusOK, srv)
	}
}

func (rs *resource) UpdateService(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	req := rs.DserUpdateServiceReq(c)
	if req == nil {
		return
	}
	srv, err := rs.services.Modify(c, id, serviceuc.Update{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		EstimatedMinutes: req.EstimatedMinutes,
	})
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case srv == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("service not found")))
	default:
		c.JSON(http.StatusOK, srv)
	}
}

func (rs *resource) DeleteService(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := rs.services.Delete(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case !deleted:
		serdser.SerErr(c, cerr.NotFound(errors.New("service not found")))
	default:
		c.Status(http.StatusNoContent)
	}
}
