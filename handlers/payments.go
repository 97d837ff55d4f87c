package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"

	"restaurant-api/config"
	"restaurant-api/models"
	"restaurant-api/notifications"
	"restaurant-api/payments"
	"restaurant-api/store"
)

// PaymentHandler bridges the external processor. A charge that comes
// back approved or in_process is recorded; an approved charge linked to
// an order also moves that order to PAID.
type PaymentHandler struct {
	Processor payments.Processor
	Notifier  *notifications.Service
}

func NewPaymentHandler(processor payments.Processor, notifier *notifications.Service) *PaymentHandler {
	return &PaymentHandler{Processor: processor, Notifier: notifier}
}

// Process forwards the charge to the processor and persists the
// outcome.
func (h *PaymentHandler) Process(c *gin.Context) {
	var req payments.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if h.Processor == nil {
		rlog.Error("payment processor not configured")
		respondError(c, http.StatusInternalServerError, "Payment processing unavailable")
		return
	}

	result, err := h.Processor.Process(c.Request.Context(), req)
	if err != nil {
		rlog.Errorf("processing payment: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if result.Approved() {
		record := models.Payment{
			MPPaymentID:       result.ID,
			Status:            result.Status,
			StatusDetail:      result.StatusDetail,
			TransactionAmount: result.TransactionAmount,
			PaymentMethodID:   result.PaymentMethodID,
			PayerEmail:        req.PayerEmail,
			OrderID:           req.OrderID,
		}
		if err := store.CreatePayment(config.DB, &record); err != nil {
			rlog.Errorf("recording payment %d: %v", result.ID, err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if req.OrderID != nil && result.Status == "approved" {
			order, err := store.UpdateOrderStatus(config.DB, *req.OrderID, models.StatusPaid)
			if err != nil {
				rlog.Warnf("marking order %d paid: %v", *req.OrderID, err)
			} else {
				h.Notifier.OrderStatusUpdate(order.ID, order.Status)
			}
		}
	}

	respondData(c, http.StatusCreated, result)
}

// List returns recorded payments (admin only).
func (h *PaymentHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	rows, err := store.Payments(config.DB, limit, offset)
	if err != nil {
		rlog.Errorf("listing payments: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, rows)
}
