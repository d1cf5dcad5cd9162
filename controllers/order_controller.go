package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
)

type OrderController struct {
	service *services.OrderService
	bills   *services.BillService
}

func NewOrderController(service *services.OrderService, bills *services.BillService) *OrderController {
	return &OrderController{service: service, bills: bills}
}

func outletParam(c *gin.Context) *uint {
	raw := c.Query("outletId")
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil
	}
	u := uint(id)
	return &u
}

// GET /orders?date=2026-08-29&q=&outletId=
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.service.List(c.Request.Context(), outletParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		orders = services.FilterByDateAndSearch(orders, date, c.Query("q"))
	}
	resp.OK(c, orders)
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	draft, err := ctl.service.BuildDraft(req.CustomerID, req.Items)
	if err != nil {
		respondErr(c, err)
		return
	}
	order, err := ctl.service.CommitDraft(c.Request.Context(), draft, req.OutletID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	order, err := ctl.service.Get(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	if err := ctl.service.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

// GET /orders/:id/bill
func (ctl *OrderController) Bill(c *gin.Context) {
	pdf, filename, err := ctl.bills.Render(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", pdf)
}
