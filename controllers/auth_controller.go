package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
	"github.com/Renison-Gohel/food-orderly/utils"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /auth/register (admin only)
func (ctl *AuthController) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.service.Register(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unknown user")
		return
	}
	resp.OK(c, user)
}
