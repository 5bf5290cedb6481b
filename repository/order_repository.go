package repository

import (
	"encoding/json"
	"errors"

	"github.com/daniellbaii/mp-fishnchips/entity"
)

const orderLogKey = "mp-fishnchips-orders"

var ErrOrderNotFound = errors.New("order not found")

// OrderLog is an append-only sequence of placed orders. The interface keeps
// the core's contract at "append a record"; a backend with true atomic
// append can slot in without touching callers.
type OrderLog interface {
	Append(o *entity.Order) error
	Find(id string) (*entity.Order, error)
	List() ([]entity.Order, error)
}

// OrderRepository implements OrderLog over the key-value Store with a
// read-array, push, write-back-whole-array cycle.
type OrderRepository struct{ Store Store }

func NewOrderRepository(store Store) *OrderRepository {
	return &OrderRepository{Store: store}
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	raw, ok, err := r.Store.Get(orderLogKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entity.Order{}, nil
	}
	var orders []entity.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Append(o *entity.Order) error {
	orders, err := r.List()
	if err != nil {
		return err
	}
	orders = append(orders, *o)
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.Store.Set(orderLogKey, string(raw))
}

func (r *OrderRepository) Find(id string) (*entity.Order, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}
