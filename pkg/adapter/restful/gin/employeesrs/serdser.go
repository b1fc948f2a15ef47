package employeesrs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lavadero/cwweb/pkg/adapter/restful/gin/serdser"
	"github.com/lavadero/cwweb/pkg/core/model"
)

type rawEmployeeCreateReq struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Shift    string `json:"shift" binding:"required"`
}

type rawEmployeeStatusReq struct {
	Active *bool `json:"active" binding:"required"`
}

type employeeStatusReq struct {
	EmployeeID int64
	Active     bool
}

func (rs *resource) DserCreateEmployeeReq(
	c *gin.Context,
) *model.Employee {
	req := &rawEmployeeCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Employee{
		Name:     req.Name,
		Position: req.Position,
		Shift:    req.Shift,
	}
}

func (rs *resource) DserEmployeeID(c *gin.Context) (int64, bool) {
	eid, err := strconv.ParseInt(c.Param("eid"), 10, 64)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "eid", "Path param eid is not an integer.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return 0, false
	}
	return eid, true
}

func (rs *resource) DserUpdateEmployeeStatusReq(
	c *gin.Context,
) *employeeStatusReq {
	eid, ok := rs.DserEmployeeID(c)
	if !ok {
		return nil
	}
	req := &rawEmployeeStatusReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &employeeStatusReq{
		EmployeeID: eid,
		Active:     *req.Active,
	}
}
