package controllers

import (
	"github.com/cyborg-s/coderr-backend/pkg/resp"
	"github.com/cyborg-s/coderr-backend/services"
	"github.com/gin-gonic/gin"
)

type BaseInfoController struct {
	Service *services.BaseInfoService
}

func NewBaseInfoController(s *services.BaseInfoService) *BaseInfoController {
	return &BaseInfoController{Service: s}
}

// GET /base-info (public): platform-wide counts and the mean rating
func (bc *BaseInfoController) Get(c *gin.Context) {
	out, err := bc.Service.Get()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
