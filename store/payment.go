package store

import (
	"gorm.io/gorm"

	"restaurant-api/models"
)

func CreatePayment(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

// Payments lists recorded payments, newest first, joined through their
// order to the paying user where one is linked.
func Payments(db *gorm.DB, limit, offset int) ([]models.PaymentWithUser, error) {
	payments := make([]models.PaymentWithUser, 0)
	err := db.Table("payments").
		Select("payments.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN orders ON orders.id = payments.order_id").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Order("payments.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
