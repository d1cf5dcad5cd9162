package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
)

type OutletController struct {
	service *services.OutletService
	reports *services.ReportService
}

func NewOutletController(service *services.OutletService, reports *services.ReportService) *OutletController {
	return &OutletController{service: service, reports: reports}
}

// GET /admin/outlets
func (ctl *OutletController) List(c *gin.Context) {
	outlets, err := ctl.service.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, outlets)
}

// POST /admin/outlets
func (ctl *OutletController) Create(c *gin.Context) {
	var req entity.Outlet
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.service.Create(&req); err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, req)
}

// PATCH /admin/outlets/:id
func (ctl *OutletController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req entity.Outlet
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.ID = uint(id)

	if err := ctl.service.Update(&req); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, req)
}

// DELETE /admin/outlets/:id
func (ctl *OutletController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.service.Delete(uint(id)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "outlet deleted"})
}

// GET /admin/outlets/:id/orders
func (ctl *OutletController) Orders(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	orders, err := ctl.service.Orders(uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/outlets/:id/stats
func (ctl *OutletController) Stats(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := ctl.service.Get(uint(id)); err != nil {
		respondErr(c, err)
		return
	}
	stats, err := ctl.reports.OutletStatistics(uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, stats)
}
