package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
)

type LoyaltyController struct {
	service *services.LoyaltyService
}

func NewLoyaltyController(service *services.LoyaltyService) *LoyaltyController {
	return &LoyaltyController{service: service}
}

// GET /admin/loyalty-settings
func (ctl *LoyaltyController) Get(c *gin.Context) {
	settings, err := ctl.service.Get()
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, settings)
}

// PUT /admin/loyalty-settings
func (ctl *LoyaltyController) Update(c *gin.Context) {
	var req struct {
		PointsPerAmount int64 `json:"pointsPerAmount"`
		AmountThreshold int64 `json:"amountThreshold"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	settings, err := ctl.service.Update(req.PointsPerAmount, req.AmountThreshold)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, settings)
}
