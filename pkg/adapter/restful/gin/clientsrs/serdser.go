package clientsrs

import (
	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type clientCreateReq struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type clientUpdateReq struct {
	Name  *string `json:"name" binding:"omitempty"`
	Phone *string `json:"phone" binding:"omitempty"`
}

func (rs *resource) DserCreateClientReq(c *gin.Context) *clientCreateReq {
	req := &clientCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserUpdateClientReq(c *gin.Context) *clientUpdateReq {
	req := &clientUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
