package handler

import (
	"errors"
	"strconv"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product API requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct handles product creation
// POST /api/v1/produto
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, product)
}

// GetProducts handles listing all products
// GET /api/v1/produto
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, products)
}

// GetProduct handles getting a single product
// GET /api/v1/produto/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, product)
}

// UpdateProduct handles updating a product
// PUT /api/v1/produto/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, product)
}

// DeleteProduct handles deleting a product
// DELETE /api/v1/produto/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "product deleted"})
}

// RegisterRoutes registers product routes. Mutations are admin-only.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware, adminMiddleware gin.HandlerFunc) {
	products := rg.Group("/produto")
	products.Use(authMiddleware)
	{
		products.POST("", adminMiddleware, h.CreateProduct)
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", adminMiddleware, h.UpdateProduct)
		products.DELETE("/:id", adminMiddleware, h.DeleteProduct)
	}
}
