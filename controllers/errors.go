package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Renison-Gohel/food-orderly/pkg/resp"
	"github.com/Renison-Gohel/food-orderly/services"
)

// respondErr maps the service error taxonomy onto HTTP: validation 400,
// invalid transition 409, stale reference 404, anything else is a backend
// failure.
func respondErr(c *gin.Context, err error) {
	var ve *services.ValidationError
	var te *services.InvalidTransitionError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Msg)
	case errors.As(err, &te):
		resp.Conflict(c, te.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
