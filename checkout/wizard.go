// Package checkout models the storefront's checkout flow as an explicit
// linear state machine: delivery → payment → review → confirmed. Each step
// holds its own draft until committed; progression is blocked until the
// step's selection validates.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

type Step string

const (
	StepDelivery  Step = "delivery"
	StepPayment   Step = "payment"
	StepReview    Step = "review"
	StepConfirmed Step = "confirmed"
)

var (
	ErrWrongStep            = errors.New("operation not valid for current step")
	ErrPaymentMethodMissing = errors.New("a payment method is required")
	ErrCardDetailsMissing   = errors.New("card details are required for card payment")
)

type DeliverySelection struct {
	Date time.Time `json:"date"`
	Slot string    `json:"slot"`
}

type PaymentSelection struct {
	Method models.PaymentMethod `json:"method"`
	Card   *CardDetails         `json:"card,omitempty"`
}

// Wizard accumulates the step selections. The zero value is not usable;
// construct with NewWizard.
type Wizard struct {
	step     Step
	now      func() time.Time
	delivery DeliverySelection
	payment  PaymentSelection
}

func NewWizard() *Wizard {
	return &Wizard{step: StepDelivery, now: time.Now}
}

// NewWizardAt pins the reference clock; used by tests.
func NewWizardAt(now func() time.Time) *Wizard {
	return &Wizard{step: StepDelivery, now: now}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Delivery() DeliverySelection {
	return w.delivery
}

func (w *Wizard) Payment() PaymentSelection {
	return w.payment
}

// CommitDelivery validates the slot and the 2–30 day window, then advances
// to the payment step.
func (w *Wizard) CommitDelivery(sel DeliverySelection) error {
	if w.step != StepDelivery {
		return ErrWrongStep
	}
	if err := ValidateDeliverySlot(sel.Slot); err != nil {
		return err
	}
	if err := ValidateDeliveryDate(sel.Date, w.now()); err != nil {
		return err
	}
	w.delivery = sel
	w.step = StepPayment
	return nil
}

// CommitPayment requires a known method; the card method additionally needs
// the derived brand/last-4 pair.
func (w *Wizard) CommitPayment(sel PaymentSelection) error {
	if w.step != StepPayment {
		return ErrWrongStep
	}
	if !sel.Method.Valid() {
		if sel.Method == "" {
			return ErrPaymentMethodMissing
		}
		return fmt.Errorf("unknown payment method %q", sel.Method)
	}
	if sel.Method == models.PaymentMethodCard && (sel.Card == nil || sel.Card.Last4 == "") {
		return ErrCardDetailsMissing
	}
	w.payment = sel
	w.step = StepReview
	return nil
}

// Confirm finalizes the wizard from the review step.
func (w *Wizard) Confirm() error {
	if w.step != StepReview {
		return ErrWrongStep
	}
	w.step = StepConfirmed
	return nil
}
