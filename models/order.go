package models

import (
	"errors"
	"strconv"
	"time"
)

type OrderStatus string
type PaymentStatus string
type RefundStatus string

const (
	// Order statuses (storefront flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // Being prepared for dispatch
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by customer or staff

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	// Refund statuses (empty means no refund involved)
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusCompleted RefundStatus = "completed"
)

// PaymentMethod is a closed set; display metadata lives alongside.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCOD  PaymentMethod = "cod"
	PaymentMethodBank PaymentMethod = "bank"
)

type PaymentMethodInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var paymentMethodInfo = map[PaymentMethod]PaymentMethodInfo{
	PaymentMethodCard: {Label: "Credit / Debit Card", Description: "Pay securely with your card"},
	PaymentMethodCOD:  {Label: "Cash on Delivery", Description: "Pay when your furniture arrives"},
	PaymentMethodBank: {Label: "Bank Transfer", Description: "Direct transfer, order ships after clearance"},
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodInfo[m]
	return ok
}

func (m PaymentMethod) Info() PaymentMethodInfo {
	return paymentMethodInfo[m]
}

// Cancellation reasons; free text is carried only for "other".
type CancellationReason string

const (
	CancelReasonChangedMind  CancellationReason = "changed_mind"
	CancelReasonFoundCheaper CancellationReason = "found_cheaper"
	CancelReasonDeliveryLate CancellationReason = "delivery_too_late"
	CancelReasonOther        CancellationReason = "other"
)

func (r CancellationReason) Valid() bool {
	switch r {
	case CancelReasonChangedMind, CancelReasonFoundCheaper, CancelReasonDeliveryLate, CancelReasonOther:
		return true
	}
	return false
}

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string        `gorm:"not null" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingCost  float64       `json:"shipping_cost"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`

	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	DeliverySlot string     `json:"delivery_slot,omitempty"`

	// Cancellation fields; refund fields are set only when a paid order is cancelled.
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	CancellationReason CancellationReason `gorm:"type:VARCHAR(30)" json:"cancellation_reason,omitempty"`
	CancellationNote   string             `json:"cancellation_note,omitempty"`
	RefundStatus       RefundStatus       `gorm:"type:VARCHAR(20)" json:"refund_status,omitempty"`
	RefundRequestedAt  *time.Time         `json:"refund_requested_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

var ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

// OrderLookupClause builds the WHERE fragment for a customer-visible order
// number: numeric values address the primary key, anything else the order
// ref. Keeping the two apart matters on Postgres, where a ref string bound
// against the bigint id column fails at bind time.
func OrderLookupClause(ref string) (string, interface{}) {
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		return "id = ?", id
	}
	return "order_ref = ?", ref
}

// Cancel applies the cancellation transition in place. Refund fields open
// only when the payment was already captured; the note is kept as given.
func (o *Order) Cancel(reason CancellationReason, note string, at time.Time) error {
	switch o.Status {
	case OrderStatusPending, OrderStatusProcessing:
	default:
		return ErrOrderNotCancellable
	}

	o.Status = OrderStatusCancelled
	o.CancelledAt = &at
	o.CancellationReason = reason
	o.CancellationNote = note

	if o.PaymentStatus == PaymentStatusPaid {
		o.RefundStatus = RefundStatusPending
		o.RefundRequestedAt = &at
	}
	return nil
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"`
	Weight       float64 `json:"weight"`
	Quantity     int     `json:"quantity"`
}
