package handler

import (
	"errors"
	"strconv"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment API requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment handles payment creation
// POST /api/v1/pagamentos
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.CreatePayment(&req)
	if err != nil {
		if errors.Is(err, service.ErrPaymentExists) {
			response.Conflict(c, "cart already has a payment")
			return
		}
		if errors.Is(err, service.ErrEmptyCart) {
			response.BadRequest(c, "cart has no items to pay for")
			return
		}
		if errors.Is(err, repository.ErrCartNotFound) {
			response.NotFound(c, "cart not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, payment)
}

// GetPayments handles listing all payments
// GET /api/v1/pagamentos
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments, err := h.paymentService.GetPayments()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, payments)
}

// GetPayment handles getting a single payment
// GET /api/v1/pagamentos/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}

	payment, err := h.paymentService.GetPaymentByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.NotFound(c, "payment not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, payment)
}

// UpdatePayment handles updating a payment
// PUT /api/v1/pagamentos/:id
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}

	var req service.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.UpdatePayment(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.NotFound(c, "payment not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, payment)
}

// ConfirmPayment handles confirming a payment
// POST /api/v1/pagamentos/:id/confirmar
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}

	payment, err := h.paymentService.ConfirmPayment(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.NotFound(c, "payment not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, payment)
}

// DeletePayment handles deleting a payment
// DELETE /api/v1/pagamentos/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}

	if err := h.paymentService.DeletePayment(uint(id)); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.NotFound(c, "payment not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "payment deleted"})
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	payments := rg.Group("/pagamentos")
	payments.Use(authMiddleware)
	{
		payments.POST("", h.CreatePayment)
		payments.GET("", h.GetPayments)
		payments.GET("/:id", h.GetPayment)
		payments.PUT("/:id", h.UpdatePayment)
		payments.DELETE("/:id", h.DeletePayment)
		payments.POST("/:id/confirmar", h.ConfirmPayment)
	}
}
