package service

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCartExists = errors.New("user already has a cart")
)

// CartService handles cart operations
type CartService struct {
	cartRepo    *repository.CartRepository
	itemRepo    *repository.CartItemRepository
	productRepo *repository.ProductRepository
	userRepo    *repository.UserRepository
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo *repository.CartRepository,
	itemRepo *repository.CartItemRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// CreateCartRequest represents the create cart request
type CreateCartRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AddItemRequest represents the add item request
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,gt=0"`
}

// CreateCart creates a cart for a user. A user has at most one cart; the
// pre-check catches the common case and the unique index on user_id catches
// the race between two concurrent creates.
func (s *CartService) CreateCart(req *CreateCartRequest) (*models.Cart, error) {
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		return nil, err
	}

	exists, err := s.cartRepo.ExistsByUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCartExists
	}

	cart := &models.Cart{UserID: req.UserID}
	if err := s.cartRepo.Create(cart); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCartExists
		}
		return nil, err
	}
	return cart, nil
}

// GetCarts retrieves all carts
func (s *CartService) GetCarts() ([]models.Cart, error) {
	return s.cartRepo.GetAll()
}

// GetCartByID retrieves a cart by ID
func (s *CartService) GetCartByID(id uint) (*models.Cart, error) {
	return s.cartRepo.GetByID(id)
}

// GetCartByUserID retrieves a user's cart
func (s *CartService) GetCartByUserID(userID uint) (*models.Cart, error) {
	return s.cartRepo.GetByUserID(userID)
}

// AddItem adds a product to a cart, incrementing the quantity when the
// (cart, product) row already exists
func (s *CartService) AddItem(cartID uint, req *AddItemRequest) (*models.CartItem, error) {
	if _, err := s.cartRepo.GetByID(cartID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(req.ProductID); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item, err := s.itemRepo.GetByCartAndProduct(cartID, req.ProductID)
	if err == nil {
		item.Quantity += quantity
		if err := s.itemRepo.UpdateQuantity(cartID, req.ProductID, item.Quantity); err != nil {
			return nil, err
		}
		return item, nil
	}
	if !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, err
	}

	item = &models.CartItem{
		CartID:    cartID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem removes a product from a cart
func (s *CartService) RemoveItem(cartID, productID uint) error {
	if _, err := s.itemRepo.GetByCartAndProduct(cartID, productID); err != nil {
		return err
	}
	return s.itemRepo.Delete(cartID, productID)
}

// ClearItems removes all items from a cart
func (s *CartService) ClearItems(cartID uint) error {
	if _, err := s.cartRepo.GetByID(cartID); err != nil {
		return err
	}
	return s.itemRepo.DeleteByCartID(cartID)
}

// DeleteCart deletes a cart and its items
func (s *CartService) DeleteCart(id uint) error {
	if _, err := s.cartRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteByCartID(id); err != nil {
		return err
	}
	return s.cartRepo.Delete(id)
}

// CartTotal computes the current total of a cart from its items
func (s *CartService) CartTotal(cartID uint) (float64, error) {
	items, err := s.itemRepo.GetByCartID(cartID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Product.Price
	}
	return total, nil
}
