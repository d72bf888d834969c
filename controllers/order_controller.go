package controllers

import (
	"strconv"

	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/pkg/resp"
	"github.com/cyborg-s/coderr-backend/services"
	"github.com/cyborg-s/coderr-backend/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// GET /orders: business users see received orders, customers their own
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Service.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders (customer only)
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id (either party of the order)
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.Service.Get(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateOrderReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id (business side only, status transition)
func (oc *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.UpdateStatus(utils.CurrentUserID(c), uint(id), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id (staff only)
func (oc *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.Delete(utils.CurrentUserID(c), uint(id), utils.IsStaff(c)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /order-count/:business_user_id
func (oc *OrderController) CountInProgress(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("business_user_id"))
	count, err := oc.Service.CountByStatus(uint(id), entity.OrderInProgress)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orderCount": count})
}

// GET /completed-order-count/:business_user_id
func (oc *OrderController) CountCompleted(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("business_user_id"))
	count, err := oc.Service.CountByStatus(uint(id), entity.OrderCompleted)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"completedOrderCount": count})
}
