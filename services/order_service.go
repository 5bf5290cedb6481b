package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/daniellbaii/mp-fishnchips/entity"
	"github.com/daniellbaii/mp-fishnchips/repository"
)

var ErrEmptyCart = errors.New("cart is empty")

type PlaceOrderIn struct {
	CustomerInfo  entity.CustomerInfo
	PaymentMethod entity.PaymentMethod
	PickupTime    time.Time
}

// OrderService turns a cart snapshot plus customer details into an
// immutable Order on the append-only log. It assumes the checkout form has
// already validated the customer input.
type OrderService struct {
	Log  repository.OrderLog
	Cart *CartService

	now func() time.Time
}

func NewOrderService(log repository.OrderLog, cart *CartService) *OrderService {
	return &OrderService{Log: log, Cart: cart, now: time.Now}
}

// PlaceOrder snapshots the session's cart, appends the order and clears
// the cart. A storage failure aborts the whole operation with the cart
// untouched; no partial order is ever persisted.
func (s *OrderService) PlaceOrder(sessionID string, in *PlaceOrderIn) (*entity.Order, error) {
	snap := s.Cart.Snapshot(sessionID)
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	pickup := in.PickupTime
	order := &entity.Order{
		ID:            newOrderID(s.now()),
		Items:         snap.Items,
		CustomerInfo:  in.CustomerInfo,
		TotalAmount:   snap.TotalAmount,
		Status:        entity.OrderPending,
		CreatedAt:     s.now(),
		PickupTime:    &pickup,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: paymentStatusFor(in.PaymentMethod),
	}

	if err := s.Log.Append(order); err != nil {
		return nil, err
	}
	s.Cart.Clear(sessionID)
	return order, nil
}

func (s *OrderService) GetOrder(id string) (*entity.Order, error) {
	return s.Log.Find(id)
}

func (s *OrderService) ListOrders() ([]entity.Order, error) {
	return s.Log.List()
}

// Card processing is out of scope; marking card orders completed is a
// placeholder until a real gateway exists.
func paymentStatusFor(m entity.PaymentMethod) entity.PaymentStatus {
	if m == entity.PaymentCard {
		return entity.PaymentStatusCompleted
	}
	return entity.PaymentStatusPending
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderID is time plus a short random suffix: unique with very high
// probability for a single shop, not collision-proof.
func newOrderID(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return fmt.Sprintf("MP%d%s", now.UnixMilli(), suffix)
}
