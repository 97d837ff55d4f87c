package store

import (
	"time"

	"gorm.io/gorm"

	"restaurant-api/models"
)

// NewOrderItem is one (menu item, quantity) pair of an incoming order.
type NewOrderItem struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// CreateOrder inserts an order with status PENDING plus one row per
// item, all inside a single transaction. Either everything commits or
// nothing is visible to other readers. Input validation (non-empty
// items, positive quantities) is the caller's job. Returns the created
// order so callers can notify with its identity and commit timestamp.
func CreateOrder(db *gorm.DB, userID uint, items []NewOrderItem, totalPrice float64) (*models.Order, error) {
	order := models.Order{
		UserID:     userID,
		TotalPrice: totalPrice,
		Status:     models.StatusPending,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range items {
			row := models.OrderItem{
				OrderID:  order.ID,
				MenuID:   item.MenuID,
				Quantity: item.Quantity,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// itemRow carries the OrderItem⋈MenuItem join for one order.
type itemRow struct {
	MenuID   uint
	Quantity int
	Title    string
	Price    float64
}

func orderItems(db *gorm.DB, orderID uint) ([]models.OrderItem, error) {
	var rows []itemRow
	err := db.Table("order_items").
		Select("order_items.menu_id, order_items.quantity, menu_items.title, menu_items.price").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]models.OrderItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, models.OrderItem{
			OrderID:  orderID,
			MenuID:   r.MenuID,
			Quantity: r.Quantity,
			Title:    r.Title,
			Price:    r.Price,
		})
	}
	return items, nil
}

// OrdersByUser returns one user's orders, newest first, each with its
// item list carrying the current menu title/price snapshot.
func OrdersByUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := orderItems(db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// AllOrders returns every order joined to its owner's name and email,
// newest first. limit/offset bound the admin view.
func AllOrders(db *gorm.DB, limit, offset int) ([]models.OrderWithUser, error) {
	orders := make([]models.OrderWithUser, 0)
	err := db.Table("orders").
		Select("orders.id, orders.user_id, orders.total_price, orders.status, orders.created_at, orders.updated_at, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := orderItems(db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// UpdateOrderStatus sets the status and refreshes the update timestamp,
// returning the updated order, or gorm.ErrRecordNotFound when no row
// matched.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (*models.Order, error) {
	res := db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// RecentOrders reconstructs the new-order notification set from the
// store: every order created within the trailing window, joined to its
// owner and mapped to the same shape the live fan-out emits. Pure read;
// calling it twice with no intervening writes yields identical sets.
func RecentOrders(db *gorm.DB, minutes int) ([]models.Notification, error) {
	cutoff := time.Now().Add(-time.Duration(minutes) * time.Minute)

	type recentRow struct {
		ID         uint
		TotalPrice float64
		CreatedAt  time.Time
		UserName   string
		UserEmail  string
	}
	var rows []recentRow
	err := db.Table("orders").
		Select("orders.id, orders.total_price, orders.created_at, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.created_at >= ?", cutoff).
		Order("orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(rows))
	for _, r := range rows {
		var itemCount int64
		err := db.Model(&models.OrderItem{}).
			Where("order_id = ?", r.ID).
			Count(&itemCount).Error
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, models.Notification{
			ID:         models.NotificationID(r.ID, r.CreatedAt),
			Type:       models.NotificationTypeNewOrder,
			OrderID:    r.ID,
			UserName:   r.UserName,
			UserEmail:  r.UserEmail,
			TotalPrice: r.TotalPrice,
			ItemCount:  int(itemCount),
			Timestamp:  r.CreatedAt,
			Read:       false,
		})
	}
	return notifications, nil
}
