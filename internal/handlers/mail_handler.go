package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/metrics"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/notifier"
	"github.com/sirupsen/logrus"
)

type ConfirmationMailer interface {
	SendPaymentConfirmation(ctx context.Context, event models.OrderPaidEvent) error
}

// MailHandler consumes order events and sends the customer emails.
type MailHandler struct {
	Mailer ConfirmationMailer
	Logger logrus.FieldLogger
}

func NewMailHandler(m ConfirmationMailer, logger logrus.FieldLogger) *MailHandler {
	return &MailHandler{Mailer: m, Logger: logger}
}

func (h *MailHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.OrderPaidTopic:
		var event models.OrderPaidEvent
		if err := json.Unmarshal(value, &event); err != nil {
			h.Logger.WithError(err).Error("parsing order paid event")
			metrics.ConfirmationEmailsTotal.WithLabelValues("invalid").Inc()
			return nil
		}
		return h.confirm(ctx, event)
	default:
		h.Logger.WithField("topic", topic).Error("topic not allowed")
		return fmt.Errorf("topic not allowed %s", topic)
	}
}

func (h *MailHandler) confirm(ctx context.Context, event models.OrderPaidEvent) error {
	entry := h.Logger.WithField("order_id", event.OrderID)

	err := h.Mailer.SendPaymentConfirmation(ctx, event)
	if errors.Is(err, notifier.ErrNoRecipient) {
		metrics.ConfirmationEmailsTotal.WithLabelValues("skipped").Inc()
		entry.Warn("no recipient for payment confirmation")
		return nil
	}
	if err != nil {
		metrics.ConfirmationEmailsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("error sending payment confirmation %w", err)
	}

	metrics.ConfirmationEmailsTotal.WithLabelValues("sent").Inc()
	entry.Info("payment confirmation sent")
	return nil
}
