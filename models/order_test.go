package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLookupClauseNumericIDTargetsPrimaryKey(t *testing.T) {
	clause, arg := OrderLookupClause("42")
	assert.Equal(t, "id = ?", clause)
	assert.Equal(t, uint64(42), arg)
}

func TestOrderLookupClauseRefNeverBindsAgainstID(t *testing.T) {
	// Order refs contain '-' and uuid hex; binding them against the bigint
	// id column fails on Postgres, so they must route to order_ref only.
	for _, ref := range []string{
		"20260831120000-0b5d3c1a-9f2e-4b7d-8c6a-1f2e3d4c5b6a",
		"123e4567-e89b-12d3-a456-426614174000",
		"abc",
		"",
	} {
		clause, arg := OrderLookupClause(ref)
		assert.Equal(t, "order_ref = ?", clause, "ref %q", ref)
		assert.Equal(t, ref, arg)
	}
}

func TestCancelUnpaidOrderSetsCancellationFieldsOnly(t *testing.T) {
	order := Order{Status: OrderStatusPending, PaymentStatus: PaymentStatusPending}
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, order.Cancel(CancelReasonChangedMind, "", at))

	assert.Equal(t, OrderStatusCancelled, order.Status)
	require.NotNil(t, order.CancelledAt)
	assert.Equal(t, at, *order.CancelledAt)
	assert.Equal(t, CancelReasonChangedMind, order.CancellationReason)

	assert.Empty(t, order.RefundStatus)
	assert.Nil(t, order.RefundRequestedAt)
}

func TestCancelPaidOrderOpensRefundRequest(t *testing.T) {
	order := Order{Status: OrderStatusProcessing, PaymentStatus: PaymentStatusPaid}
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, order.Cancel(CancelReasonOther, "wrong colour", at))

	assert.Equal(t, OrderStatusCancelled, order.Status)
	assert.Equal(t, "wrong colour", order.CancellationNote)
	assert.Equal(t, RefundStatusPending, order.RefundStatus)
	require.NotNil(t, order.RefundRequestedAt)
	assert.Equal(t, at, *order.RefundRequestedAt)
}

func TestCancelRejectedOnceShipped(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		order := Order{Status: status, PaymentStatus: PaymentStatusPaid}
		err := order.Cancel(CancelReasonDeliveryLate, "", time.Now())

		assert.ErrorIs(t, err, ErrOrderNotCancellable, "status %s", status)
		assert.Equal(t, status, order.Status, "state must stay untouched on rejection")
		assert.Nil(t, order.CancelledAt)
		assert.Empty(t, order.RefundStatus)
	}
}
