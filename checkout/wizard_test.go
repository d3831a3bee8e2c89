package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func TestValidateDeliveryDateWindow(t *testing.T) {
	days := func(n int) time.Time { return testNow.AddDate(0, 0, n) }

	assert.ErrorIs(t, ValidateDeliveryDate(days(0), testNow), ErrDeliveryDateTooSoon)
	assert.ErrorIs(t, ValidateDeliveryDate(days(1), testNow), ErrDeliveryDateTooSoon)
	assert.NoError(t, ValidateDeliveryDate(days(2), testNow)) // lower bound inclusive
	assert.NoError(t, ValidateDeliveryDate(days(17), testNow))
	assert.NoError(t, ValidateDeliveryDate(days(30), testNow)) // upper bound inclusive
	assert.ErrorIs(t, ValidateDeliveryDate(days(31), testNow), ErrDeliveryDateTooFar)
}

func TestValidateDeliveryDateIgnoresTimeOfDay(t *testing.T) {
	// Midnight on day 2 qualifies even though fewer than 48 hours remain.
	earliest := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateDeliveryDate(earliest, testNow))
}

func TestValidateDeliverySlot(t *testing.T) {
	assert.ErrorIs(t, ValidateDeliverySlot(""), ErrDeliverySlotMissing)
	assert.ErrorIs(t, ValidateDeliverySlot("03:00-06:00"), ErrDeliverySlotUnknown)
	assert.NoError(t, ValidateDeliverySlot("09:00-12:00"))
}

func TestWizardHappyPath(t *testing.T) {
	w := NewWizardAt(fixedNow)
	require.Equal(t, StepDelivery, w.Step())

	err := w.CommitDelivery(DeliverySelection{Date: testNow.AddDate(0, 0, 5), Slot: "12:00-15:00"})
	require.NoError(t, err)
	require.Equal(t, StepPayment, w.Step())

	card, err := DeriveCard("4111111111111111")
	require.NoError(t, err)
	err = w.CommitPayment(PaymentSelection{Method: models.PaymentMethodCard, Card: &card})
	require.NoError(t, err)
	require.Equal(t, StepReview, w.Step())

	require.NoError(t, w.Confirm())
	assert.Equal(t, StepConfirmed, w.Step())
}

func TestWizardBlocksInvalidDelivery(t *testing.T) {
	w := NewWizardAt(fixedNow)

	err := w.CommitDelivery(DeliverySelection{Date: testNow.AddDate(0, 0, 1), Slot: "09:00-12:00"})
	assert.ErrorIs(t, err, ErrDeliveryDateTooSoon)
	assert.Equal(t, StepDelivery, w.Step())

	err = w.CommitDelivery(DeliverySelection{Date: testNow.AddDate(0, 0, 5)})
	assert.ErrorIs(t, err, ErrDeliverySlotMissing)
	assert.Equal(t, StepDelivery, w.Step())
}

func TestWizardPaymentValidation(t *testing.T) {
	w := NewWizardAt(fixedNow)
	require.NoError(t, w.CommitDelivery(DeliverySelection{Date: testNow.AddDate(0, 0, 5), Slot: "09:00-12:00"}))

	err := w.CommitPayment(PaymentSelection{})
	assert.ErrorIs(t, err, ErrPaymentMethodMissing)

	err = w.CommitPayment(PaymentSelection{Method: models.PaymentMethodCard})
	assert.ErrorIs(t, err, ErrCardDetailsMissing)

	err = w.CommitPayment(PaymentSelection{Method: "crypto"})
	assert.Error(t, err)

	// Cash on delivery needs no card details.
	require.NoError(t, w.CommitPayment(PaymentSelection{Method: models.PaymentMethodCOD}))
	assert.Equal(t, StepReview, w.Step())
}

func TestWizardRejectsOutOfOrderCommits(t *testing.T) {
	w := NewWizardAt(fixedNow)

	assert.ErrorIs(t, w.CommitPayment(PaymentSelection{Method: models.PaymentMethodCOD}), ErrWrongStep)
	assert.ErrorIs(t, w.Confirm(), ErrWrongStep)

	require.NoError(t, w.CommitDelivery(DeliverySelection{Date: testNow.AddDate(0, 0, 5), Slot: "09:00-12:00"}))
	assert.ErrorIs(t, w.CommitDelivery(DeliverySelection{Date: testNow.AddDate(0, 0, 6), Slot: "09:00-12:00"}), ErrWrongStep)
}
