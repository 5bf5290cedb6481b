package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daniellbaii/mp-fishnchips/entity"
	"github.com/daniellbaii/mp-fishnchips/middlewares"
	"github.com/daniellbaii/mp-fishnchips/pkg/resp"
	"github.com/daniellbaii/mp-fishnchips/repository"
	"github.com/daniellbaii/mp-fishnchips/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type placeOrderReq struct {
	CustomerInfo  entity.CustomerInfo `json:"customerInfo"`
	PaymentMethod string              `json:"paymentMethod"`
	PickupTime    string              `json:"pickupTime"` // RFC 3339
}

// POST /orders
//
// Validation failures come back as a field-keyed error map so each field
// can be corrected independently. Storage failures are a generic 500; no
// partial order is left behind.
func (h *OrderController) Create(c *gin.Context) {
	sid := middlewares.SessionID(c)

	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fieldErrs := services.ValidateCustomerInfo(req.CustomerInfo)

	now := time.Now()
	var pickup time.Time
	if req.PickupTime != "" {
		t, err := time.Parse(time.RFC3339, req.PickupTime)
		if err != nil {
			fieldErrs["pickupTime"] = "Please select a pickup time"
		} else {
			pickup = t
		}
	}
	if _, present := fieldErrs["pickupTime"]; !present {
		if msg, ok := services.ValidatePickupTime(pickup, now); !ok {
			fieldErrs["pickupTime"] = msg
		}
	}

	method := entity.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = entity.PaymentCash
	}
	if method != entity.PaymentCash && method != entity.PaymentCard {
		fieldErrs["paymentMethod"] = "Unknown payment method"
	}

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": fieldErrs})
		return
	}

	order, err := h.Svc.PlaceOrder(sid, &services.PlaceOrderIn{
		CustomerInfo:  req.CustomerInfo,
		PaymentMethod: method,
		PickupTime:    pickup,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, errors.New("could not place your order, please try again"))
		return
	}
	resp.Created(c, gin.H{"orderId": order.ID})
}

// GET /orders/:id
//
// A miss is a navigation fault for the confirmation view: 404, client
// redirects to the menu.
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /checkout/pickup-times
func (h *OrderController) PickupTimes(c *gin.Context) {
	resp.OK(c, services.PickupSlots(time.Now()))
}
