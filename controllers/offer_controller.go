package controllers

import (
	"strconv"

	"github.com/cyborg-s/coderr-backend/pkg/resp"
	"github.com/cyborg-s/coderr-backend/repository"
	"github.com/cyborg-s/coderr-backend/services"
	"github.com/cyborg-s/coderr-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OfferController struct {
	Service *services.OfferService
}

func NewOfferController(s *services.OfferService) *OfferController {
	return &OfferController{Service: s}
}

// GET /offers (public)
func (oc *OfferController) List(c *gin.Context) {
	var f repository.OfferFilter

	if v, err := strconv.Atoi(c.Query("creator_id")); err == nil && v > 0 {
		f.CreatorID = uint(v)
	}
	if raw := c.Query("min_price"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			f.MinPrice = &d
		} else {
			resp.BadRequest(c, "min_price must be a number")
			return
		}
	}
	if raw := c.Query("max_delivery_time"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "max_delivery_time must be an integer")
			return
		}
		f.MaxDeliveryTime = &v
	}
	f.Search = c.Query("search")
	f.Ordering = c.Query("ordering")
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))

	out, err := oc.Service.List(f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /offers (business only)
func (oc *OfferController) Create(c *gin.Context) {
	var req services.CreateOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /offers/:id (public)
func (oc *OfferController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := oc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /offers/:id (owner only)
func (oc *OfferController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.PatchOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Patch(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /offers/:id (owner only)
func (oc *OfferController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /offerdetails/:id (public)
func (oc *OfferController) DetailVariant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := oc.Service.GetDetail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}
