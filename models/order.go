package models

import "time"

// OrderStatus enumerates the states an order can report.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusPaid       OrderStatus = "PAID"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// AllOrderStatuses lists every valid status, in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusPaid,
	StatusCompleted,
	StatusCancelled,
}

// ValidOrderStatus reports whether s is a member of the enumeration.
// No transition graph is enforced: any status may follow any other.
func ValidOrderStatus(s OrderStatus) bool {
	for _, v := range AllOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	UserID     uint        `json:"userId" gorm:"not null"`
	User       User        `json:"-" gorm:"foreignKey:UserID"`
	TotalPrice float64     `json:"totalPrice" gorm:"not null"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ID       uint     `json:"-" gorm:"primaryKey"`
	OrderID  uint     `json:"-" gorm:"not null"`
	MenuID   uint     `json:"menuId" gorm:"not null"`
	MenuItem MenuItem `json:"-" gorm:"foreignKey:MenuID"`
	Quantity int      `json:"quantity" gorm:"not null"`

	// Snapshot of the referenced menu item, filled on reads.
	Title string  `json:"title" gorm:"-"`
	Price float64 `json:"price" gorm:"-"`
}

// OrderWithUser is the admin read shape: an order joined to its owner.
type OrderWithUser struct {
	Order
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}
