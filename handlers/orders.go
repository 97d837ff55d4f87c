package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"gorm.io/gorm"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/notifications"
	"restaurant-api/store"
)

// OrderHandler carries the notification service so order endpoints can
// publish to admin sessions after commits. The store is reached through
// config.DB like every other handler.
type OrderHandler struct {
	Notifier *notifications.Service
}

func NewOrderHandler(notifier *notifications.Service) *OrderHandler {
	return &OrderHandler{Notifier: notifier}
}

type CreateOrderRequest struct {
	Items      []store.NewOrderItem `json:"items" binding:"required,min=1,dive"`
	TotalPrice *float64             `json:"totalPrice" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// Create places an order for the authenticated caller. The notification
// to admins is fired after the transaction commits and its outcome
// never affects the response.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Items and total price are required")
		return
	}

	userID := middleware.GetUserID(c)
	order, err := store.CreateOrder(config.DB, userID, req.Items, *req.TotalPrice)
	if err != nil {
		rlog.Errorf("creating order for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	userName := ""
	if u, err := store.UserByID(config.DB, userID); err == nil {
		userName = u.Name
	}
	h.Notifier.NewOrder(order.ID, userName, middleware.GetEmail(c), order.TotalPrice, len(req.Items), order.CreatedAt)

	respondData(c, http.StatusCreated, gin.H{"orderId": order.ID})
}

// UserOrders returns the caller's orders, newest first.
func (h *OrderHandler) UserOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders, err := store.OrdersByUser(config.DB, userID)
	if err != nil {
		rlog.Errorf("listing orders for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// AllOrders returns every order with owner info (admin only).
func (h *OrderHandler) AllOrders(c *gin.Context) {
	limit, offset := pagination(c)
	orders, err := store.AllOrders(config.DB, limit, offset)
	if err != nil {
		rlog.Errorf("listing all orders: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// Recent reconstructs new-order notifications from the store, giving
// admin sessions without a live socket the same events by polling.
func (h *OrderHandler) Recent(c *gin.Context) {
	minutes := 5
	if raw := c.Query("minutes"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "minutes must be a positive integer")
			return
		}
		minutes = n
	}

	recent, err := store.RecentOrders(config.DB, minutes)
	if err != nil {
		rlog.Errorf("listing recent orders: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, recent)
}

// UpdateStatus moves an order to the given status (admin only). Any
// status in the enumeration may follow any other.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	order, err := store.UpdateOrderStatus(config.DB, uint(orderID), req.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		rlog.Errorf("updating order %d status: %v", orderID, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Notifier.OrderStatusUpdate(order.ID, order.Status)
	respondData(c, http.StatusOK, order)
}

// pagination reads limit/offset query params with sane bounds.
func pagination(c *gin.Context) (int, int) {
	limit := 100
	offset := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
