package models_test

import (
	"testing"
	"time"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newOrder(status models.OrderStatus) *models.Order {
	return &models.Order{
		ID:            "order-1",
		Total:         decimal.RequireFromString("149.50"),
		Currency:      models.CurrencyZAR,
		Status:        status,
		CustomerEmail: "thandi@example.com",
		Payment: &models.Payment{
			ID:      "payment-1",
			OrderID: "order-1",
			Amount:  decimal.RequireFromString("149.50"),
			Status:  models.PaymentStatusInitiated,
		},
	}
}

func completeUpdate(at time.Time) models.PaymentUpdate {
	return models.PaymentUpdate{
		PaymentStatus:   models.PaymentStatusCompleted,
		OrderStatus:     models.OrderStatusPaid,
		ExternalID:      "1089250",
		RawNotification: datatypes.JSON(`[{"name":"payment_status","value":"COMPLETE"}]`),
		ReceivedAt:      at,
	}
}

func TestApply_CompleteMarksPaid(t *testing.T) {
	order := newOrder(models.OrderStatusPending)
	at := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	applied := order.Apply(completeUpdate(at))

	assert.True(t, applied)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, models.PaymentStatusCompleted, order.Payment.Status)
	require.NotNil(t, order.Payment.ExternalID)
	assert.Equal(t, "1089250", *order.Payment.ExternalID)
	require.NotNil(t, order.Payment.PaidAt)
	assert.Equal(t, at, *order.Payment.PaidAt)
	assert.JSONEq(t, `[{"name":"payment_status","value":"COMPLETE"}]`, string(order.Payment.RawNotification))
}

func TestApply_TerminalOrdersAreImmutable(t *testing.T) {
	for _, status := range []models.OrderStatus{models.OrderStatusPaid, models.OrderStatusCancelled} {
		order := newOrder(status)

		applied := order.Apply(models.PaymentUpdate{
			PaymentStatus: models.PaymentStatusFailed,
			OrderStatus:   models.OrderStatusCancelled,
			ExternalID:    "other",
		})

		assert.False(t, applied)
		assert.Equal(t, status, order.Status)
		assert.Equal(t, models.PaymentStatusInitiated, order.Payment.Status)
		assert.Nil(t, order.Payment.ExternalID)
	}
}

func TestApply_ReplayIsNoop(t *testing.T) {
	order := newOrder(models.OrderStatusPending)
	first := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	assert.True(t, order.Apply(completeUpdate(first)))
	assert.False(t, order.Apply(completeUpdate(first.Add(time.Minute))))
	assert.Equal(t, first, *order.Payment.PaidAt)
}

func TestApply_PendingStaysPending(t *testing.T) {
	order := newOrder(models.OrderStatusPending)

	applied := order.Apply(models.PaymentUpdate{
		PaymentStatus: models.PaymentStatusFailed,
		OrderStatus:   models.OrderStatusPending,
		ExternalID:    "1089251",
	})

	assert.True(t, applied)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusFailed, order.Payment.Status)
	assert.Nil(t, order.Payment.PaidAt)
}

func TestApply_FailedThenCompleteSettles(t *testing.T) {
	order := newOrder(models.OrderStatusPending)
	at := time.Date(2026, 10, 14, 9, 45, 0, 0, time.UTC)

	assert.True(t, order.Apply(models.PaymentUpdate{
		PaymentStatus: models.PaymentStatusFailed,
		OrderStatus:   models.OrderStatusPending,
		ExternalID:    "1089251",
	}))
	assert.True(t, order.Apply(completeUpdate(at)))

	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, models.PaymentStatusCompleted, order.Payment.Status)
	assert.Equal(t, "1089250", *order.Payment.ExternalID)
	assert.Equal(t, at, *order.Payment.PaidAt)
}

func TestApply_WithoutPayment(t *testing.T) {
	order := newOrder(models.OrderStatusPending)
	order.Payment = nil

	assert.False(t, order.Apply(completeUpdate(time.Now())))
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestOrderValidate(t *testing.T) {
	order := newOrder(models.OrderStatusPending)
	assert.NoError(t, order.Validate())

	order.Total = decimal.Zero
	assert.EqualError(t, order.Validate(), "total must be greater than zero")

	order.Total = decimal.RequireFromString("10.005")
	assert.EqualError(t, order.Validate(), "total must have at most two decimal places")

	order.Total = decimal.RequireFromString("10.00")
	order.Currency = "USD"
	assert.EqualError(t, order.Validate(), "invalid currency: USD")

	order.Currency = models.CurrencyZAR
	order.CustomerEmail = ""
	assert.EqualError(t, order.Validate(), "customer email is required")
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, models.OrderStatusPending.IsTerminal())
	assert.True(t, models.OrderStatusPaid.IsTerminal())
	assert.True(t, models.OrderStatusCancelled.IsTerminal())
}
