package posgrest

import (
	"context"
	"errors"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository persists orders together with their payment record.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithPayment inserts the order and its payment in one transaction.
func (r *OrderRepository) CreateWithPayment(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// GetByID loads an order with its payment preloaded.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Payment").Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ApplyNotification transitions the order under a row lock so concurrent or
// retried deliveries for the same order serialise. It reports false when the
// order was already terminal and nothing was written.
func (r *OrderRepository) ApplyNotification(ctx context.Context, orderID string, update models.PaymentUpdate) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", orderID).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		var payment models.Payment
		err = tx.Where("order_id = ?", orderID).First(&payment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrPaymentNotFound
		}
		if err != nil {
			return err
		}
		order.Payment = &payment

		if !order.Apply(update) {
			return nil
		}

		if err := tx.Model(&payment).Select("status", "external_id", "paid_at", "raw_notification").Updates(&payment).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", order.Status).Error; err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}
