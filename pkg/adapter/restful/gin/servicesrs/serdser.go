package servicesrs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/model"
)

type rawServiceCreateReq struct {
	VehicleID     int64  `json:"vehicle_id" binding:"required"`
	EmployeeID    int64  `json:"employee_id" binding:"required"`
	ServiceTypeID int64  `json:"service_type_id" binding:"required"`
	Notes         string `json:"notes" binding:"omitempty"`
}

type rawServiceStatusReq struct {
	Status string `json:"status" binding:"required"`
}

type serviceStatusReq struct {
	ServiceID int64
	Status    model.ServiceStatus
}

type rawSupplyUsageReq struct {
	SupplyID int64   `json:"supply_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

type supplyUsageReq struct {
	ServiceID int64
	SupplyID  int64
	Quantity  float64
}

func (rs *resource) DserCreateServiceReq(
	c *gin.Context,
) *rawServiceCreateReq {
	req := &rawServiceCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserServiceID(c *gin.Context) (int64, bool) {
	sid, err := strconv.ParseInt(c.Param("sid"), 10, 64)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "sid", "Path param sid is not an integer.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return 0, false
	}
	return sid, true
}

func (rs *resource) DserUpdateServiceStatusReq(
	c *gin.Context,
) *serviceStatusReq {
	sid, ok := rs.DserServiceID(c)
	if !ok {
		return nil
	}
	req := &rawServiceStatusReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	status, err := model.ParseServiceStatus(req.Status)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "status", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &serviceStatusReq{
		ServiceID: sid,
		Status:    status,
	}
}

func (rs *resource) DserRecordSupplyUsageReq(
	c *gin.Context,
) *supplyUsageReq {
	sid, ok := rs.DserServiceID(c)
	if !ok {
		return nil
	}
	req := &rawSupplyUsageReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &supplyUsageReq{
		ServiceID: sid,
		SupplyID:  req.SupplyID,
		Quantity:  req.Quantity,
	}
}
