package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/model"
)

type rawVehicleRegisterReq struct {
	PlateNumber string `json:"plate_number" binding:"required"`
	VehicleType string `json:"vehicle_type" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"omitempty"`
}

func (rs *resource) DserRegisterVehicleReq(
	c *gin.Context,
) *model.Vehicle {
	req := &rawVehicleRegisterReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	vt, err := model.ParseVehicleType(req.VehicleType)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "vehicle_type", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &model.Vehicle{
		PlateNumber: req.PlateNumber,
		VehicleType: vt,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	}
}
