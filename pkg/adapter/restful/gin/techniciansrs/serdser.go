package techniciansrs

import (
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/climatec/dispatch/pkg/core/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type technicianRegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type technicianLoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type technicianUpdateReq struct {
	Name     *string `json:"name" binding:"omitempty"`
	Phone    *string `json:"phone" binding:"omitempty"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty"`
}

type loginResp struct {
	Token      string            `json:"token"`
	Technician *model.Technician `json:"technician"`
}

func (rs *resource) DserRegisterReq(c *gin.Context) *technicianRegisterReq {
	req := &technicianRegisterReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserLoginReq(c *gin.Context) *technicianLoginReq {
	req := &technicianLoginReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserUpdateTechnicianReq(c *gin.Context) *technicianUpdateReq {
	req := &technicianUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
