package checkout

import (
	"errors"
	"time"
)

// Delivery slots offered by the carrier.
var DeliverySlots = []string{
	"09:00-12:00",
	"12:00-15:00",
	"15:00-18:00",
}

const (
	minLeadDays = 2
	maxLeadDays = 30
)

var (
	ErrDeliveryDateTooSoon = errors.New("delivery date must be at least 2 days out")
	ErrDeliveryDateTooFar  = errors.New("delivery date must be within 30 days")
	ErrDeliverySlotMissing = errors.New("a delivery time slot is required")
	ErrDeliverySlotUnknown = errors.New("unknown delivery time slot")
)

// ValidateDeliveryDate requires a date between 2 and 30 days from today,
// bounds inclusive. Comparison is by calendar day in the reference's location.
func ValidateDeliveryDate(date, now time.Time) error {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	}
	earliest := day(now).AddDate(0, 0, minLeadDays)
	latest := day(now).AddDate(0, 0, maxLeadDays)

	d := day(date)
	if d.Before(earliest) {
		return ErrDeliveryDateTooSoon
	}
	if d.After(latest) {
		return ErrDeliveryDateTooFar
	}
	return nil
}

// ValidateDeliverySlot checks the slot against the carrier's offering.
func ValidateDeliverySlot(slot string) error {
	if slot == "" {
		return ErrDeliverySlotMissing
	}
	for _, s := range DeliverySlots {
		if s == slot {
			return nil
		}
	}
	return ErrDeliverySlotUnknown
}
