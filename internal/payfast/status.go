package payfast

import (
	"strings"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
)

const (
	StatusComplete  = "COMPLETE"
	StatusCancelled = "CANCELLED"
	StatusFailed    = "FAILED"
)

// MapPaymentStatus translates a gateway payment_status. Unknown values map
// to initiated.
func MapPaymentStatus(gatewayStatus string) models.PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(gatewayStatus)) {
	case StatusComplete:
		return models.PaymentStatusCompleted
	case StatusCancelled, StatusFailed:
		return models.PaymentStatusFailed
	default:
		return models.PaymentStatusInitiated
	}
}

// MapOrderStatus translates a gateway payment_status. Only COMPLETE and
// CANCELLED move the order; FAILED leaves it pending.
func MapOrderStatus(gatewayStatus string) models.OrderStatus {
	switch strings.ToUpper(strings.TrimSpace(gatewayStatus)) {
	case StatusComplete:
		return models.OrderStatusPaid
	case StatusCancelled:
		return models.OrderStatusCancelled
	default:
		return models.OrderStatusPending
	}
}
