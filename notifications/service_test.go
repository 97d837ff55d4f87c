package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-api/models"
)

func TestNewOrderPublishesNotificationShape(t *testing.T) {
	hub := NewHub()
	svc := NewService(hub)
	s := hub.Register("admin")
	hub.Join("admin", GroupAdmins)

	created := time.Now()
	svc.NewOrder(7, "Ana", "ana@example.com", 25.00, 1, created)

	var ev Event
	select {
	case ev = <-s.Events():
	default:
		t.Fatal("no event delivered")
	}
	assert.Equal(t, "new-order", ev.Name)

	n, ok := ev.Data.(models.Notification)
	require.True(t, ok)
	assert.Equal(t, models.NotificationID(7, created), n.ID)
	assert.Equal(t, models.NotificationTypeNewOrder, n.Type)
	assert.EqualValues(t, 7, n.OrderID)
	assert.Equal(t, "Ana", n.UserName)
	assert.Equal(t, "ana@example.com", n.UserEmail)
	assert.Equal(t, 25.00, n.TotalPrice)
	assert.Equal(t, 1, n.ItemCount)
	assert.False(t, n.Read)
}

func TestOrderStatusUpdatePublishes(t *testing.T) {
	hub := NewHub()
	svc := NewService(hub)
	s := hub.Register("admin")
	hub.Join("admin", GroupAdmins)

	svc.OrderStatusUpdate(7, models.StatusPaid)

	select {
	case ev := <-s.Events():
		assert.Equal(t, "order-status-update", ev.Name)
	default:
		t.Fatal("no event delivered")
	}
}

func TestServiceSwallowsMissingHub(t *testing.T) {
	// No subscribers, nil hub, nil service: none of these may panic or
	// surface an error to the order path.
	NewService(nil).NewOrder(1, "Ana", "ana@example.com", 10, 1, time.Now())
	var svc *Service
	svc.NewOrder(1, "Ana", "ana@example.com", 10, 1, time.Now())
	svc.OrderStatusUpdate(1, models.StatusPaid)

	NewService(NewHub()).NewOrder(1, "Ana", "ana@example.com", 10, 1, time.Now())
}
