package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

func TestShippingCost(t *testing.T) {
	assert.Equal(t, 0.0, shippingCost(0))
	assert.Equal(t, 0.0, shippingCost(-2))
	assert.Equal(t, 0.0, shippingCost(1))   // up to 1kg ships free
	assert.Equal(t, 30.0, shippingCost(2))  // first band
	assert.Equal(t, 30.0, shippingCost(31)) // still first band
	assert.Equal(t, 60.0, shippingCost(32))
	assert.Equal(t, 90.0, shippingCost(75))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, validOrderStatus(models.OrderStatusPending))
	assert.True(t, validOrderStatus(models.OrderStatusCancelled))
	assert.False(t, validOrderStatus(models.OrderStatus("returned")))
}

func TestValidPaymentStatus(t *testing.T) {
	assert.True(t, validPaymentStatus(models.PaymentStatusPaid))
	assert.False(t, validPaymentStatus(models.PaymentStatus("chargeback")))
}

func TestGenerateOrderRefUnique(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}
