package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBrand(t *testing.T) {
	cases := map[string]string{
		"4111111111111111": BrandVisa,
		"5111111111111111": BrandMastercard,
		"5511111111111111": BrandMastercard,
		"5011111111111111": BrandGeneric, // 50 is outside the 51–55 range
		"5611111111111111": BrandGeneric,
		"341111111111111":  BrandAmex,
		"371111111111111":  BrandAmex,
		"6011111111111117": BrandDiscover,
		"6511111111111111": BrandDiscover,
		"6411111111111111": BrandGeneric,
		"3611111111111111": BrandGeneric,
	}
	for number, want := range cases {
		assert.Equal(t, want, DetectBrand(number), "number %s", number)
	}
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "3411 1111 1111 111", FormatCardNumber("3411-1111-1111-111"))
	assert.Equal(t, "", FormatCardNumber(""))
}

func TestDeriveCard(t *testing.T) {
	card, err := DeriveCard("4111 1111 1111 1111")
	require.NoError(t, err)
	assert.Equal(t, BrandVisa, card.Brand)
	assert.Equal(t, "1111", card.Last4)

	_, err = DeriveCard("4111")
	assert.ErrorIs(t, err, ErrCardNumberInvalid)

	_, err = DeriveCard("41111111111111111111")
	assert.ErrorIs(t, err, ErrCardNumberInvalid)
}
