package models

import "time"

// Payment records an external-processor outcome. Rows are written once
// after the processor approves (or holds) a charge and never updated.
type Payment struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	MPPaymentID       int64     `json:"mpPaymentId" gorm:"column:mp_payment_id"`
	Status            string    `json:"status" gorm:"not null"`
	StatusDetail      string    `json:"statusDetail"`
	TransactionAmount float64   `json:"transactionAmount"`
	PaymentMethodID   string    `json:"paymentMethodId"`
	PayerEmail        string    `json:"payerEmail"`
	OrderID           *uint     `json:"orderId"`
	CreatedAt         time.Time `json:"createdAt"`
}

// PaymentWithUser joins a payment through its order to the paying user,
// for the admin listing.
type PaymentWithUser struct {
	Payment
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}
