package service_test

import (
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) cartWithItem(t *testing.T, email string, price float64, quantity int) *models.Cart {
	t.Helper()
	user := e.registerUser(t, email)

	cart, err := e.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	product, err := e.product.CreateProduct(&service.CreateProductRequest{
		Name:  "Plano Mensal",
		Price: price,
	})
	require.NoError(t, err)

	_, err = e.cart.AddItem(cart.ID, &service.AddItemRequest{ProductID: product.ID, Quantity: quantity})
	require.NoError(t, err)
	return cart
}

func TestCreatePaymentOnePerCart(t *testing.T) {
	env := newTestEnv(t)
	cart := env.cartWithItem(t, "pay@example.com", 99.90, 1)

	_, err := env.payment.CreatePayment(&service.CreatePaymentRequest{
		CartID: cart.ID,
		Method: models.PaymentMethodPix,
	})
	require.NoError(t, err)

	_, err = env.payment.CreatePayment(&service.CreatePaymentRequest{
		CartID: cart.ID,
		Method: models.PaymentMethodBoleto,
	})
	assert.ErrorIs(t, err, service.ErrPaymentExists)
}

func TestCreatePaymentAmountDefaultsToCartTotal(t *testing.T) {
	env := newTestEnv(t)
	cart := env.cartWithItem(t, "amount@example.com", 40, 2)

	payment, err := env.payment.CreatePayment(&service.CreatePaymentRequest{
		CartID: cart.ID,
		Method: models.PaymentMethodCreditCard,
	})
	require.NoError(t, err)
	assert.InDelta(t, 80.0, payment.Amount, 0.001)
	assert.NotEmpty(t, payment.TransactionRef)
	assert.Nil(t, payment.ConfirmedAt)
}

func TestCreatePaymentUnknownCart(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payment.CreatePayment(&service.CreatePaymentRequest{
		CartID: 999,
		Method: models.PaymentMethodPix,
	})
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	env := newTestEnv(t)
	cart := env.cartWithItem(t, "confirm@example.com", 10, 1)

	payment, err := env.payment.CreatePayment(&service.CreatePaymentRequest{
		CartID: cart.ID,
		Method: models.PaymentMethodPix,
	})
	require.NoError(t, err)

	confirmed, err := env.payment.ConfirmPayment(payment.ID)
	require.NoError(t, err)
	require.NotNil(t, confirmed.ConfirmedAt)
	firstAt := *confirmed.ConfirmedAt

	again, err := env.payment.ConfirmPayment(payment.ID)
	require.NoError(t, err)
	require.NotNil(t, again.ConfirmedAt)
	assert.True(t, again.ConfirmedAt.Equal(firstAt))
}

func TestConfirmPaymentNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payment.ConfirmPayment(999)
	assert.ErrorIs(t, err, repository.ErrPaymentNotFound)
}

func TestCreatePaymentEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "emptycart@example.com")

	cart, err := env.cart.CreateCart(&service.CreateCartRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = env.payment.CreatePayment(&service.CreatePaymentRequest{
		CartID: cart.ID,
		Method: models.PaymentMethodPix,
	})
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}
