package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// GET /admin/reports/daily?days=7&outletId=
func (ctl *ReportController) Daily(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	stats, err := ctl.service.Daily(days, outletParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/reports/monthly?outletId=
func (ctl *ReportController) Monthly(c *gin.Context) {
	stats, err := ctl.service.Monthly(outletParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, stats)
}
