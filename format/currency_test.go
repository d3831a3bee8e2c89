package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "$0.00", Price(0))
	assert.Equal(t, "$449.00", Price(449))
	assert.Equal(t, "$1,299.00", Price(1299))
	assert.Equal(t, "$1,299.50", Price(1299.5))
	assert.Equal(t, "$12,345,678.90", Price(12345678.90))
	assert.Equal(t, "-$12.50", Price(-12.5))
}

func TestPriceRoundsCents(t *testing.T) {
	assert.Equal(t, "$10.00", Price(9.999))
	assert.Equal(t, "$0.10", Price(0.095))
}
