package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/metrics"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models/dto"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/sirupsen/logrus"
)

var ErrInvalidOrder = errors.New("invalid order")

type CheckoutService struct {
	Repo    OrderRepo
	Builder CheckoutBuilder
	Logger  logrus.FieldLogger
}

func NewCheckoutService(repo OrderRepo, builder CheckoutBuilder, logger logrus.FieldLogger) *CheckoutService {
	return &CheckoutService{
		Repo:    repo,
		Builder: builder,
		Logger:  logger,
	}
}

// PlaceOrder stores a pending order and its initiated payment.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req *dto.PlaceOrder) (*models.Order, error) {
	req.Sanitize()
	order := req.ToEntity()
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	if err := s.Repo.CreateWithPayment(ctx, order); err != nil {
		s.Logger.WithError(err).Error("creating order")
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.Total.StringFixed(2),
	}).Info("order placed")
	return order, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

// StartCheckout returns the signed payload the customer's browser posts to
// the gateway.
func (s *CheckoutService) StartCheckout(ctx context.Context, orderID string) (*payfast.Checkout, error) {
	checkout, err := s.Builder.Checkout(ctx, orderID)
	if err != nil {
		metrics.CheckoutPayloadsTotal.WithLabelValues(checkoutResult(err)).Inc()
		s.Logger.WithError(err).WithField("order_id", orderID).Warn("checkout payload not built")
		return nil, err
	}

	metrics.CheckoutPayloadsTotal.WithLabelValues("built").Inc()
	return checkout, nil
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, payfast.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, payfast.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, payfast.ErrPaymentRecordMissing):
		return "payment_missing"
	default:
		return "error"
	}
}
