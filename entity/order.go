package entity

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Order is immutable once created. Items is a snapshot of the cart's line
// items at submission time; mutating the live cart afterwards must not
// touch it.
type Order struct {
	ID            string         `json:"id"`
	Items         []CartLineItem `json:"items"`
	CustomerInfo  CustomerInfo   `json:"customerInfo"`
	TotalAmount   int64          `json:"totalAmount"`
	Status        OrderStatus    `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	PickupTime    *time.Time     `json:"pickupTime,omitempty"`
	PaymentMethod PaymentMethod  `json:"paymentMethod"`
	PaymentStatus PaymentStatus  `json:"paymentStatus"`
}
