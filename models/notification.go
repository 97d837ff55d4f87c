package models

import (
	"fmt"
	"time"
)

// NotificationTypeNewOrder tags notifications produced for freshly
// created orders, on both the push and the polling path.
const NotificationTypeNewOrder = "NEW_ORDER"

// Notification is the ephemeral view admins receive when an order is
// placed. It is never persisted: the push path synthesizes it right
// after the order commits, and the polling path reconstructs the same
// value from the orders/users join. Consumers de-duplicate on ID.
type Notification struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    uint      `json:"orderId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	TotalPrice float64   `json:"totalPrice"`
	ItemCount  int       `json:"itemCount"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// NotificationID builds the composite id for an order event. Using the
// order's own creation time keeps the id stable across polls, so a
// consumer sees the same id for the same order every time.
func NotificationID(orderID uint, at time.Time) string {
	return fmt.Sprintf("order-%d-%d", orderID, at.UnixMilli())
}
