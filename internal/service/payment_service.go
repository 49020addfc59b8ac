package service

import (
	"errors"
	"time"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPaymentExists = errors.New("cart already has a payment")
	ErrEmptyCart     = errors.New("cart has no items to pay for")
)

// PaymentService handles payment operations
type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	cartService *CartService
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo *repository.PaymentRepository, cartService *CartService) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		cartService: cartService,
	}
}

// CreatePaymentRequest represents the create payment request
type CreatePaymentRequest struct {
	CartID uint                 `json:"cart_id" binding:"required"`
	Method models.PaymentMethod `json:"method" binding:"required,oneof=pix credit_card boleto"`
	Amount float64              `json:"amount" binding:"omitempty,gt=0"`
}

// UpdatePaymentRequest represents the update payment request
type UpdatePaymentRequest struct {
	Method *models.PaymentMethod `json:"method" binding:"omitempty,oneof=pix credit_card boleto"`
	Amount *float64              `json:"amount" binding:"omitempty,gt=0"`
}

// CreatePayment creates a payment for a cart. When no amount is supplied the
// cart's current total is used. One payment per cart; the unique index on
// cart_id is the guard against a create race.
func (s *PaymentService) CreatePayment(req *CreatePaymentRequest) (*models.Payment, error) {
	if _, err := s.cartService.GetCartByID(req.CartID); err != nil {
		return nil, err
	}

	exists, err := s.paymentRepo.ExistsByCartID(req.CartID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPaymentExists
	}

	amount := req.Amount
	if amount == 0 {
		amount, err = s.cartService.CartTotal(req.CartID)
		if err != nil {
			return nil, err
		}
		if amount == 0 {
			return nil, ErrEmptyCart
		}
	}

	payment := &models.Payment{
		CartID:         req.CartID,
		Method:         req.Method,
		Amount:         amount,
		TransactionRef: uuid.New().String(),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPaymentExists
		}
		return nil, err
	}
	return payment, nil
}

// GetPayments retrieves all payments
func (s *PaymentService) GetPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}

// GetPaymentByID retrieves a payment by ID
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

// UpdatePayment updates a payment
func (s *PaymentService) UpdatePayment(id uint, req *UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ConfirmPayment records the confirmation timestamp. Idempotent: confirming
// an already-confirmed payment keeps the original timestamp.
func (s *PaymentService) ConfirmPayment(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if payment.ConfirmedAt == nil {
		now := time.Now()
		payment.ConfirmedAt = &now
		if err := s.paymentRepo.Update(payment); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

// DeletePayment deletes a payment
func (s *PaymentService) DeletePayment(id uint) error {
	if _, err := s.paymentRepo.GetByID(id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(id)
}
