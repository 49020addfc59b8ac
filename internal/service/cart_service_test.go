package service_test

import (
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCartOnePerUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "cart@example.com")

	_, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	assert.ErrorIs(t, err, service.ErrCartExists)
}

func TestCreateCartUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: 999})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAddItemIncrementsQuantity(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "items@example.com")

	cart, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	product, err := env.product.CreateProduct(&service.CreateProductRequest{
		Name:  "Whey Protein",
		Price: 120.50,
	})
	require.NoError(t, err)

	item, err := env.cart.AddItem(cart.ID, &service.AddItemRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// Re-adding the same product increments rather than duplicating
	item, err = env.cart.AddItem(cart.ID, &service.AddItemRequest{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	var count int64
	require.NoError(t, env.db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "noproduct@example.com")

	cart, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = env.cart.AddItem(cart.ID, &service.AddItemRequest{ProductID: 999})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestRemoveItemNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "removal@example.com")

	cart, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	err = env.cart.RemoveItem(cart.ID, 42)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
}

func TestClearItems(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "clear@example.com")

	cart, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	for _, name := range []string{"Creatine", "BCAA"} {
		product, perr := env.product.CreateProduct(&service.CreateProductRequest{Name: name, Price: 50})
		require.NoError(t, perr)
		_, perr = env.cart.AddItem(cart.ID, &service.AddItemRequest{ProductID: product.ID})
		require.NoError(t, perr)
	}

	require.NoError(t, env.cart.ClearItems(cart.ID))

	fetched, err := env.cart.GetCartByID(cart.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Items)
}

func TestCartTotal(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "total@example.com")

	cart, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	product, err := env.product.CreateProduct(&service.CreateProductRequest{Name: "Shaker", Price: 25})
	require.NoError(t, err)

	_, err = env.cart.AddItem(cart.ID, &service.AddItemRequest{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	total, err := env.cart.CartTotal(cart.ID)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, total, 0.001)
}

func TestGetCartByUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "mycart@example.com")

	cart, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	found, err := env.cart.GetCartByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)

	other := env.registerUser(t, "nocart@example.com")
	_, err = env.cart.GetCartByUserID(other.ID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}
