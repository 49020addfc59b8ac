package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentMethod represents supported payment methods
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// Payment represents a payment for a cart. A cart has at most one payment.
type Payment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CartID         uint           `gorm:"uniqueIndex;not null" json:"cart_id"`
	Method         PaymentMethod  `gorm:"size:20;not null" json:"method"`
	Amount         float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	TransactionRef string         `gorm:"size:36;not null" json:"transaction_ref"`
	ConfirmedAt    *time.Time     `json:"confirmed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Cart Cart `gorm:"foreignKey:CartID" json:"-"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}
