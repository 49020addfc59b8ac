package repository

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

// PaymentRepository handles payment data access
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	result := r.db.First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return &payment, nil
}

// GetByCartID retrieves the payment for a cart
func (r *PaymentRepository) GetByCartID(cartID uint) (*models.Payment, error) {
	var payment models.Payment
	result := r.db.Where("cart_id = ?", cartID).First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return &payment, nil
}

// ExistsByCartID checks whether a cart already has a payment
func (r *PaymentRepository) ExistsByCartID(cartID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all payments
func (r *PaymentRepository) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	result := r.db.Order("created_at DESC").Find(&payments)
	return payments, result.Error
}

// Update updates a payment
func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// Delete soft deletes a payment
func (r *PaymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}
