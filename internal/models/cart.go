package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart represents a user's shopping cart. A user has at most one cart.
type Cart struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// TableName specifies the table name for Cart model
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one product line in a cart, keyed by (cart, product).
type CartItem struct {
	CartID    uint      `gorm:"primaryKey;autoIncrement:false" json:"cart_id"`
	ProductID uint      `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}
