package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
)

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

// GET /customers?q=
func (ctl *CustomerController) List(c *gin.Context) {
	customers, err := ctl.service.List(c.Query("q"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, customers)
}

// POST /customers
func (ctl *CustomerController) Create(c *gin.Context) {
	var req entity.Customer
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

// PATCH /customers/:id
func (ctl *CustomerController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req entity.Customer
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

// DELETE /customers/:id
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.service.Delete(uint(id)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "customer deleted"})
}
