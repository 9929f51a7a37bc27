package addressesrs

import (
	"net/http"

	"github.com/climatec/dispatch/pkg/adapter/restful/gin/serdser"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type rawAddressCreateReq struct {
	ClientID     string `json:"client_id" binding:"required,uuid4"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required,len=2"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Complement   string `json:"complement" binding:"omitempty"`
}

type addressCreateReq struct {
	ClientID     uuid.UUID
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	Complement   string
}

type addressUpdateReq struct {
	Street       *string `json:"street" binding:"omitempty"`
	Number       *string `json:"number" binding:"omitempty"`
	Neighborhood *string `json:"neighborhood" binding:"omitempty"`
	City         *string `json:"city" binding:"omitempty"`
	State        *string `json:"state" binding:"omitempty,len=2"`
	PostalCode   *string `json:"postal_code" binding:"omitempty"`
	Complement   *string `json:"complement" binding:"omitempty"`
}

func (rs *resource) DserCreateAddressReq(c *gin.Context) *addressCreateReq {
	req := &rawAddressCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "client_id", "Field client_id is not a UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &addressCreateReq{
		ClientID:     clientID,
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Complement:   req.Complement,
	}
}

func (rs *resource) DserUpdateAddressReq(c *gin.Context) *addressUpdateReq {
	req := &addressUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
