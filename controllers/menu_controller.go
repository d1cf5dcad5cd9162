package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// GET /menu-items
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.service.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.service.Get(uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req entity.MenuItem
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

// PATCH /menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req entity.MenuItem
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

// DELETE /menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.service.Delete(uint(id)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
