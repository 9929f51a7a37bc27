// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package techniciansrs realizes the technicians resource, covering
// registration, login, and technician manipulation REST APIs. The
// login route is registered with a per-IP rate limiting middleware,
// and the update and delete routes require the bearer access token of
// the addressed technician.
package techniciansrs

import (
	"errors"
	"net/http"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/middleware"
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/usecase/technicianuc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type resource struct {
	techs *technicianuc.UseCase
}

// Register instantiates a resource adapting the technicians use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/dispatch/v1/technicians
//  2. POST request to /api/dispatch/v1/technicians/login
//  3. GET request to /api/dispatch/v1/technicians
//  4. GET request to /api/dispatch/v1/technicians/:id
//  5. PUT request to /api/dispatch/v1/technicians/:id
//  6. DELETE request to /api/dispatch/v1/technicians/:id
//
// The loginLimiter middleware is applied to the login route only. The
// authn middleware guards the update and delete routes; a technician
// account may only be manipulated with its own access token.
func Register(
	r *gin.RouterGroup,
	techs *technicianuc.UseCase,
	loginLimiter gin.HandlerFunc,
	authn gin.HandlerFunc,
) {
	rs := &resource{techs: techs}
	r.POST("technicians", rs.RegisterTechnician)
	r.POST("technicians/login", loginLimiter, rs.Login)
	r.GET("technicians", rs.ListTechnicians)
	r.GET("technicians/:id", rs.GetTechnician)
	r.PUT("technicians/:id", authn, rs.UpdateTechnician)
	r.DELETE("technicians/:id", authn, rs.DeleteTechnician)
}

func (rs *resource) RegisterTechnician(c *gin.Context) {
	req := rs.DserRegisterReq(c)
	if req == nil {
		return
	}
	tech, err := rs.techs.Register(
		c, req.Name, req.Phone, req.Email, req.Password,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, tech)
}

func (rs *resource) Login(c *gin.Context) {
	req := rs.DserLoginReq(c)
	if req == nil {
		return
	}
	token, tech, err := rs.techs.Login(c, req.Email, req.Password)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResp{Token: token, Technician: tech})
}

func (rs *resource) ListTechnicians(c *gin.Context) {
	list, err := rs.techs.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetTechnician(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	tech, err := rs.techs.Get(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case tech == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("technician not found")))
	default:
		c.JSON(http.StatusOK, tech)
	}
}

// authorizeSelf reports whether the technician which the verified
// access token identifies is the one addressed by id, serializing an
// authentication error otherwise. The token itself has been checked
// by the middleware.Authenticate guard already.
func authorizeSelf(c *gin.Context, id uuid.UUID) bool {
	subject, _ := c.MustGet(middleware.TechnicianIDKey).(uuid.UUID)
	if subject != id {
		serdser.SerErr(c, cerr.Authentication(errors.New(
			"access token does not match the requested technician",
		)))
		return false
	}
	return true
}

func (rs *resource) UpdateTechnician(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	if !authorizeSelf(c, id) {
		return
	}
	req := rs.DserUpdateTechnicianReq(c)
	if req == nil {
		return
	}
	tech, err := rs.techs.Modify(c, id, technicianuc.Update{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case tech == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("technician not found")))
	default:
		c.JSON(http.StatusOK, tech)
	}
}

func (rs *resource) DeleteTechnician(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	if !authorizeSelf(c, id) {
		return
	}
	deleted, err := rs.techs.Delete(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case !deleted:
		serdser.SerErr(c, cerr.NotFound(errors.New("technician not found")))
	default:
		c.Status(http.StatusNoContent)
	}
}
