package checkout

import (
	"errors"
	"strings"
)

// Card brand detection is cosmetic classification for the payment step's
// display, never payment validation. Only the literal prefixes below are
// recognized; everything else falls back to the generic label.

const (
	BrandVisa       = "Visa"
	BrandMastercard = "Mastercard"
	BrandAmex       = "Amex"
	BrandDiscover   = "Discover"
	BrandGeneric    = "Card"
)

var ErrCardNumberInvalid = errors.New("card number must be 12 to 19 digits")

// CardDetails is what the payment step keeps: never the full number.
type CardDetails struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

func digitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectBrand classifies a card number by its leading digits.
func DetectBrand(number string) string {
	d := digitsOnly(number)
	switch {
	case strings.HasPrefix(d, "4"):
		return BrandVisa
	case len(d) >= 2 && d[0] == '5' && d[1] >= '1' && d[1] <= '5':
		return BrandMastercard
	case strings.HasPrefix(d, "34"), strings.HasPrefix(d, "37"):
		return BrandAmex
	case strings.HasPrefix(d, "6011"), strings.HasPrefix(d, "65"):
		return BrandDiscover
	default:
		return BrandGeneric
	}
}

// FormatCardNumber groups the digits in blocks of 4: "4111 1111 1111 1111".
func FormatCardNumber(number string) string {
	d := digitsOnly(number)
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DeriveCard produces the brand/last-4 pair the payment step requires before
// allowing progression.
func DeriveCard(number string) (CardDetails, error) {
	d := digitsOnly(number)
	if len(d) < 12 || len(d) > 19 {
		return CardDetails{}, ErrCardNumberInvalid
	}
	return CardDetails{
		Brand: DetectBrand(d),
		Last4: d[len(d)-4:],
	}, nil
}
