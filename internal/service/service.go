package service

import (
	"context"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/shopspring/decimal"
)

// OrderRepo defines the order/payment persistence the services rely on.
type OrderRepo interface {
	CreateWithPayment(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ApplyNotification(ctx context.Context, orderID string, update models.PaymentUpdate) (bool, error)
}

// NotificationLogRepo stores the ITN audit trail.
type NotificationLogRepo interface {
	Create(ctx context.Context, log *models.NotificationLog) error
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.NotificationLog, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// NotificationVerifier establishes trust in an inbound ITN.
type NotificationVerifier interface {
	Validate(ctx context.Context, fields payfast.Fields, origin string, expected decimal.Decimal) (*payfast.Notification, error)
}

// CheckoutBuilder produces the signed gateway payload of a pending order.
type CheckoutBuilder interface {
	Checkout(ctx context.Context, orderID string) (*payfast.Checkout, error)
}
