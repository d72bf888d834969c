package controllers

import (
	"errors"

	"github.com/cyborg-s/coderr-backend/pkg/resp"
	"github.com/cyborg-s/coderr-backend/services"
	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
