package handler

import (
	"errors"
	"strconv"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart API requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// CreateCart handles cart creation
// POST /api/v1/carrinho
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req service.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.CreateCart(&req)
	if err != nil {
		if errors.Is(err, service.ErrCartExists) {
			response.Conflict(c, "user already has a cart")
			return
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, cart)
}

// GetCarts handles listing all carts
// GET /api/v1/carrinho
func (h *CartHandler) GetCarts(c *gin.Context) {
	carts, err := h.cartService.GetCarts()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, carts)
}

// GetCart handles getting a single cart with its items
// GET /api/v1/carrinho/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cart id")
		return
	}

	cart, err := h.cartService.GetCartByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			response.NotFound(c, "cart not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cart)
}

// GetCartByUser handles getting a user's cart
// GET /api/v1/carrinho/usuario/:userId
func (h *CartHandler) GetCartByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	cart, err := h.cartService.GetCartByUserID(uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			response.NotFound(c, "cart not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cart)
}

// AddItem handles adding a product to a cart
// POST /api/v1/carrinho/:id/itens
func (h *CartHandler) AddItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cart id")
		return
	}

	var req service.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.cartService.AddItem(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			response.NotFound(c, "cart not found")
			return
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, item)
}

// RemoveItem handles removing a product from a cart
// DELETE /api/v1/carrinho/:id/itens/:produtoId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cart id")
		return
	}

	productID, err := strconv.ParseUint(c.Param("produtoId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	if err := h.cartService.RemoveItem(uint(id), uint(productID)); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			response.NotFound(c, "cart item not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "item removed"})
}

// ClearItems handles removing all items from a cart
// DELETE /api/v1/carrinho/:id/itens
func (h *CartHandler) ClearItems(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cart id")
		return
	}

	if err := h.cartService.ClearItems(uint(id)); err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			response.NotFound(c, "cart not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "cart cleared"})
}

// DeleteCart handles deleting a cart
// DELETE /api/v1/carrinho/:id
func (h *CartHandler) DeleteCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cart id")
		return
	}

	if err := h.cartService.DeleteCart(uint(id)); err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			response.NotFound(c, "cart not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "cart deleted"})
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	carts := rg.Group("/carrinho")
	carts.Use(authMiddleware)
	{
		carts.POST("", h.CreateCart)
		carts.GET("", h.GetCarts)
		carts.GET("/:id", h.GetCart)
		carts.GET("/usuario/:userId", h.GetCartByUser)
		carts.DELETE("/:id", h.DeleteCart)
		carts.POST("/:id/itens", h.AddItem)
		carts.DELETE("/:id/itens", h.ClearItems)
		carts.DELETE("/:id/itens/:produtoId", h.RemoveItem)
	}
}
