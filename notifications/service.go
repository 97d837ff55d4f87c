package notifications

import (
	"time"

	"github.com/romana/rlog"

	"restaurant-api/models"
)

// Service turns domain events into admin notifications. All publishes
// are fire and forget: a failed or undelivered notification must never
// fail the request that produced it.
type Service struct {
	hub *Hub
}

func NewService(hub *Hub) *Service {
	return &Service{hub: hub}
}

// NewOrder notifies subscribed admins that an order was just created.
// Called synchronously after the order transaction commits, never
// before.
func (s *Service) NewOrder(orderID uint, userName, userEmail string, totalPrice float64, itemCount int, createdAt time.Time) {
	if s == nil || s.hub == nil {
		rlog.Warn("notification hub unavailable, skipping new-order notification")
		return
	}
	n := models.Notification{
		ID:         models.NotificationID(orderID, createdAt),
		Type:       models.NotificationTypeNewOrder,
		OrderID:    orderID,
		UserName:   userName,
		UserEmail:  userEmail,
		TotalPrice: totalPrice,
		ItemCount:  itemCount,
		Timestamp:  createdAt,
		Read:       false,
	}
	delivered := s.hub.Publish(GroupAdmins, Event{Name: "new-order", Data: n})
	rlog.Infof("new-order notification for order %d delivered to %d admin session(s)", orderID, delivered)
}

// OrderStatusUpdate notifies subscribed admins of a status change.
func (s *Service) OrderStatusUpdate(orderID uint, status models.OrderStatus) {
	if s == nil || s.hub == nil {
		rlog.Warn("notification hub unavailable, skipping status notification")
		return
	}
	update := map[string]interface{}{
		"orderId":   orderID,
		"status":    status,
		"timestamp": time.Now(),
	}
	s.hub.Publish(GroupAdmins, Event{Name: "order-status-update", Data: update})
}
