// Copyright (c) 2025 ClimaTec Sistemas
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package appointmentsrs realizes the appointments resource, allowing
// the booking, rescheduling, status transition, and query REST APIs
// to be accepted and delegated to the appointments use cases
// respectively.
package appointmentsrs

import (
	"errors"
	"net/http"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/climatec/dispatch/pkg/core/cerr"
	"github.com/climatec/dispatch/pkg/core/usecase/appointmentuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	appts *appointmentuc.UseCase
}

// Register instantiates a resource adapting the appointments use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/dispatch/v1/appointments
//  2. GET request to /api/dispatch/v1/appointments
//  3. GET request to /api/dispatch/v1/appointments/:id
//  4. GET request to /api/dispatch/v1/appointments/:id/details
//  5. GET request to /api/dispatch/v1/appointments/technician/:id
//  6. GET request to /api/dispatch/v1/appointments/client/:id
//  7. PUT request to /api/dispatch/v1/appointments/:id
//  8. DELETE request to /api/dispatch/v1/appointments/:id
func Register(r *gin.RouterGroup, appts *appointmentuc.UseCase) {
	rs := &resource{appts: appts}
	r.POST("appointments", rs.CreateAppointment)
	r.GET("appointments", rs.ListAppointments)
	r.GET("appointments/:id", rs.GetAppointment)
	r.GET("appointments/:id/details", rs.GetAppointmentDetails)
	r.GET("appointments/technician/:id", rs.ListByTechnician)
	r.GET("appointments/client/:id", rs.ListByClient)
	r.PUT("appointments/:id", rs.UpdateAppointment)
	r.DELETE("appointments/:id", rs.DeleteAppointment)
}

func (rs *resource) CreateAppointment(c *gin.Context) {
	req := rs.DserCreateAppointmentReq(c)
	if req == nil {
		return
	}
	appt, err := rs.appts.Create(
		c,
		req.AddressID, req.TechnicianID, req.ServiceID, req.ClientID,
		req.ScheduledAt, req.Notes,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (rs *resource) ListAppointments(c *gin.Context) {
	list, err := rs.appts.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) GetAppointment(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	appt, err := rs.appts.Get(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case appt == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("appointment not found")))
	default:
		c.JSON(http.StatusOK, appt)
	}
}

func (rs *resource) GetAppointmentDetails(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	det, err := rs.appts.GetDetails(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case det == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("appointment not found")))
	default:
		c.JSON(http.StatusOK, det)
	}
}

func (rs *resource) ListByTechnician(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	list, err := rs.appts.ListByTechnician(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) ListByClient(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	list, err := rs.appts.ListByClient(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rs *resource) UpdateAppointment(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	req := rs.DserUpdateAppointmentReq(c)
	if req == nil {
		return
	}
	appt, err := rs.appts.Modify(c, id, appointmentuc.Update{
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case appt == nil:
		serdser.SerErr(c, cerr.NotFound(errors.New("appointment not found")))
	default:
		c.JSON(http.StatusOK, appt)
	}
}

func (rs *resource) DeleteAppointment(c *gin.Context) {
	id, ok := serdser.ParseUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := rs.appts.Delete(c, id)
	switch {
	case err != nil:
		serdser.SerErr(c, err)
	case !deleted:
		serdser.SerErr(c, cerr.NotFound(errors.New("appointment not found")))
	default:
		c.Status(http.StatusNoContent)
	}
}
