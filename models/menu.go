package models

import "time"

// Category is static reference data for menu items.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	CategoryID  uint      `json:"-" gorm:"not null"`
	Category    Category  `json:"category" gorm:"foreignKey:CategoryID"`
	ImageURL    string    `json:"imageUrl"`
	IsAvailable bool      `json:"isAvailable" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
