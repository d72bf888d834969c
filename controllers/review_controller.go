package controllers

import (
	"strconv"

	"github.com/cyborg-s/coderr-backend/pkg/resp"
	"github.com/cyborg-s/coderr-backend/services"
	"github.com/cyborg-s/coderr-backend/utils"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// GET /reviews?business_user_id=&reviewer_id=&ordering=
func (rc *ReviewController) List(c *gin.Context) {
	var businessUserID, reviewerID uint
	if v, err := strconv.Atoi(c.Query("business_user_id")); err == nil && v > 0 {
		businessUserID = uint(v)
	}
	if v, err := strconv.Atoi(c.Query("reviewer_id")); err == nil && v > 0 {
		reviewerID = uint(v)
	}

	reviews, err := rc.Service.List(businessUserID, reviewerID, c.Query("ordering"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /reviews (customer only; reviewer is always the caller)
func (rc *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rev)
}

// GET /reviews/:id
func (rc *ReviewController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rev, err := rc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rev)
}

// PATCH /reviews/:id (reviewer only)
func (rc *ReviewController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.PatchReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Service.Patch(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rev)
}

// DELETE /reviews/:id (reviewer only)
func (rc *ReviewController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
