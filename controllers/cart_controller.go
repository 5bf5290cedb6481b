package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/daniellbaii/mp-fishnchips/middlewares"
	"github.com/daniellbaii/mp-fishnchips/pkg/resp"
	"github.com/daniellbaii/mp-fishnchips/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sid := middlewares.SessionID(c)
	resp.OK(c, h.Svc.Get(sid))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	sid := middlewares.SessionID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	state, err := h.Svc.Add(sid, &req)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, state)
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	sid := middlewares.SessionID(c)

	var body struct {
		LineItemID string `json:"lineItemId" binding:"required"`
		Quantity   int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.UpdateQuantity(sid, body.LineItemID, body.Quantity))
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	sid := middlewares.SessionID(c)
	resp.OK(c, h.Svc.Remove(sid, c.Param("id")))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sid := middlewares.SessionID(c)
	resp.OK(c, h.Svc.Clear(sid))
}

// POST /cart/open
func (h *CartController) Open(c *gin.Context) {
	sid := middlewares.SessionID(c)
	resp.OK(c, h.Svc.Open(sid))
}

// POST /cart/close
func (h *CartController) Close(c *gin.Context) {
	sid := middlewares.SessionID(c)
	resp.OK(c, h.Svc.Close(sid))
}

// POST /cart/toggle
func (h *CartController) Toggle(c *gin.Context) {
	sid := middlewares.SessionID(c)
	resp.OK(c, h.Svc.Toggle(sid))
}
