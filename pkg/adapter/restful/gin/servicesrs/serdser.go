package servicesrs

import (
	"net/http"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type rawServiceCreateReq struct {
	TechnicianID     string  `json:"technician_id" binding:"required,uuid4"`
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description" binding:"omitempty"`
	Price            float64 `json:"price"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

type serviceCreateReq struct {
	TechnicianID     uuid.UUID
	Name             string
	Description      string
	Price            float64
	EstimatedMinutes int
}

type serviceUpdateReq struct {
	Name             *string  `json:"name" binding:"omitempty"`
	Description      *string  `json:"description" binding:"omitempty"`
	Price            *float64 `json:"price" binding:"omitempty"`
	EstimatedMinutes *int     `json:"estimated_minutes" binding:"omitempty"`
}

func (rs *resource) DserCreateServiceReq(c *gin.Context) *serviceCreateReq {
	req := &rawServiceCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	techID, err := uuid.Parse(req.TechnicianID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "technician_id", "Field technician_id is not a UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &serviceCreateReq{
		TechnicianID:     techID,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		EstimatedMinutes: req.EstimatedMinutes,
	}
}

func (rs *resource) DserUpdateServiceReq(c *gin.Context) *serviceUpdateReq {
	req := &serviceUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
