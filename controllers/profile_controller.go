package controllers

import (
	"strconv"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/pkg/resp"
	"github.com/cyborg-s/coderr-backend/services"
	"github.com/cyborg-s/coderr-backend/utils"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Service *services.ProfileService
}

func NewProfileController(s *services.ProfileService) *ProfileController {
	return &ProfileController{Service: s}
}

// GET /profile/:user_id
func (pc *ProfileController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("user_id"))
	p, err := pc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /profile/:user_id (owner only)
func (pc *ProfileController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("user_id"))

	var req services.PatchProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := pc.Service.Patch(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /profiles/business
func (pc *ProfileController) ListBusiness(c *gin.Context) {
	profiles, err := pc.Service.ListByType(entity.ProfileBusiness)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, profiles)
}

// GET /profiles/customer
func (pc *ProfileController) ListCustomer(c *gin.Context) {
	profiles, err := pc.Service.ListByType(entity.ProfileCustomer)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, profiles)
}
