package repository

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository handles cart data access
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Create creates a new cart
func (r *CartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetByID retrieves a cart by ID with its items
func (r *CartRepository) GetByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	result := r.db.Preload("Items").Preload("Items.Product").First(&cart, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, result.Error
	}
	return &cart, nil
}

// GetByUserID retrieves a user's cart with its items
func (r *CartRepository) GetByUserID(userID uint) (*models.Cart, error) {
	var cart models.Cart
	result := r.db.Preload("Items").Preload("Items.Product").Where("user_id = ?", userID).First(&cart)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, result.Error
	}
	return &cart, nil
}

// ExistsByUserID checks whether a user already has a cart
func (r *CartRepository) ExistsByUserID(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Cart{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all carts
func (r *CartRepository) GetAll() ([]models.Cart, error) {
	var carts []models.Cart
	result := r.db.Preload("Items").Order("created_at DESC").Find(&carts)
	return carts, result.Error
}

// Delete soft deletes a cart
func (r *CartRepository) Delete(id uint) error {
	return r.db.Delete(&models.Cart{}, id).Error
}

// CartItemRepository handles cart item data access
type CartItemRepository struct {
	db *gorm.DB
}

// NewCartItemRepository creates a new CartItemRepository
func NewCartItemRepository(db *gorm.DB) *CartItemRepository {
	return &CartItemRepository{db: db}
}

// Create creates a new cart item
func (r *CartItemRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// GetByCartAndProduct retrieves a cart item by its composite key
func (r *CartItemRepository) GetByCartAndProduct(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	result := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, result.Error
	}
	return &item, nil
}

// GetByCartID retrieves all items in a cart
func (r *CartItemRepository) GetByCartID(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	result := r.db.Preload("Product").Where("cart_id = ?", cartID).Find(&items)
	return items, result.Error
}

// UpdateQuantity updates the quantity of a cart item
func (r *CartItemRepository) UpdateQuantity(cartID, productID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity).Error
}

// Delete deletes a cart item by its composite key
func (r *CartItemRepository) Delete(cartID, productID uint) error {
	return r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&models.CartItem{}).Error
}

// DeleteByCartID deletes all items in a cart
func (r *CartItemRepository) DeleteByCartID(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
