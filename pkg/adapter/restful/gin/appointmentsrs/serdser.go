package appointmentsrs

import (
	"net/http"
	"time"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type rawAppointmentCreateReq struct {
	AddressID    string    `json:"address_id" binding:"required,uuid4"`
	TechnicianID string    `json:"technician_id" binding:"required,uuid4"`
	ServiceID    string    `json:"service_id" binding:"required,uuid4"`
	ClientID     string    `json:"client_id" binding:"required,uuid4"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
	Notes        string    `json:"notes" binding:"omitempty"`
}

type appointmentCreateReq struct {
	AddressID    uuid.UUID
	TechnicianID uuid.UUID
	ServiceID    uuid.UUID
	ClientID     uuid.UUID
	ScheduledAt  time.Time
	Notes        string
}

type appointmentUpdateReq struct {
	ScheduledAt *time.Time `json:"scheduled_at" binding:"omitempty"`
	Status      *string    `json:"status" binding:"omitempty"`
	Notes       *string    `json:"notes" binding:"omitempty"`
}

func (rs *resource) DserCreateAppointmentReq(
	c *gin.Context,
) *appointmentCreateReq {
	req := &rawAppointmentCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := &appointmentCreateReq{
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	}
	var errs map[string][]string
	for _, f := range []struct {
		name string
		raw  string
		dst  *uuid.UUID
	}{
		{"address_id", req.AddressID, &val.AddressID},
		{"technician_id", req.TechnicianID, &val.TechnicianID},
		{"service_id", req.ServiceID, &val.ServiceID},
		{"client_id", req.ClientID, &val.ClientID},
	} {
		id, err := uuid.Parse(f.raw)
		if err != nil {
			serdser.AddErr(&errs, f.name, "Field "+f.name+" is not a UUID.")
			continue
		}
		*f.dst = id
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

func (rs *resource) DserUpdateAppointmentReq(
	c *gin.Context,
) *appointmentUpdateReq {
	req := &appointmentUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
