package payfast_test

import (
	"testing"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		gateway string
		payment models.PaymentStatus
		order   models.OrderStatus
	}{
		{"COMPLETE", models.PaymentStatusCompleted, models.OrderStatusPaid},
		{"complete", models.PaymentStatusCompleted, models.OrderStatusPaid},
		{"CANCELLED", models.PaymentStatusFailed, models.OrderStatusCancelled},
		{"Cancelled", models.PaymentStatusFailed, models.OrderStatusCancelled},
		{"FAILED", models.PaymentStatusFailed, models.OrderStatusPending},
		{"PENDING", models.PaymentStatusInitiated, models.OrderStatusPending},
		{"", models.PaymentStatusInitiated, models.OrderStatusPending},
		{"SOMETHING_NEW", models.PaymentStatusInitiated, models.OrderStatusPending},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.payment, payfast.MapPaymentStatus(tc.gateway), tc.gateway)
		assert.Equal(t, tc.order, payfast.MapOrderStatus(tc.gateway), tc.gateway)
	}
}
