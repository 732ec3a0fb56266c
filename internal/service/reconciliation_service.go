package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/metrics"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Outcome is how one ITN delivery ended. The gateway never sees it; it only
// drives logs, metrics and the audit trail.
type Outcome string

const (
	OutcomeMissingReference Outcome = "missing_reference"
	OutcomeUnknownOrder     Outcome = "unknown_order"
	OutcomeRejected         Outcome = "rejected"
	OutcomeApplied          Outcome = "applied"
	OutcomeReplayed         Outcome = "replayed"
	OutcomeFailed           Outcome = "failed"
)

const (
	defaultNotifyTimeout = 3 * time.Second
	auditTimeout         = 2 * time.Second
)

// ReconciliationService applies Payfast ITNs to orders.
//
// Order state only changes after the verifier accepted the notification,
// and only through OrderRepo.ApplyNotification, which no-ops on terminal
// orders. A confirmation event is published once per real transition to
// completed, so gateway retries never send a second email.
type ReconciliationService struct {
	Repo          OrderRepo
	Logs          NotificationLogRepo
	Verifier      NotificationVerifier
	Publisher     Publisher
	Logger        logrus.FieldLogger
	NotifyTimeout time.Duration

	now     func() time.Time
	pending sync.WaitGroup
}

func NewReconciliationService(
	repo OrderRepo,
	logs NotificationLogRepo,
	verifier NotificationVerifier,
	publisher Publisher,
	logger logrus.FieldLogger,
	notifyTimeout time.Duration,
) *ReconciliationService {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &ReconciliationService{
		Repo:          repo,
		Logs:          logs,
		Verifier:      verifier,
		Publisher:     publisher,
		Logger:        logger,
		NotifyTimeout: notifyTimeout,
		now:           time.Now,
	}
}

// HandleNotification processes one delivery. It never returns an error:
// every failure is logged and reported as an Outcome.
func (s *ReconciliationService) HandleNotification(ctx context.Context, fields payfast.Fields, origin string) Outcome {
	receivedAt := s.now().UTC()
	orderID := fields.Value(payfast.FieldPaymentID)
	entry := s.Logger.WithFields(logrus.Fields{
		"order_id":       orderID,
		"pf_payment_id":  fields.Value(payfast.FieldPfPaymentID),
		"payment_status": fields.Value(payfast.FieldPaymentStatus),
		"origin":         origin,
	})

	outcome, reason := s.reconcile(ctx, entry, fields, orderID, origin, receivedAt)

	metrics.NotificationsTotal.WithLabelValues(string(outcome)).Inc()
	if outcome == OutcomeRejected {
		metrics.RejectionsTotal.WithLabelValues(reason).Inc()
	}
	s.audit(ctx, entry, fields, origin, outcome, reason, receivedAt)

	return outcome
}

func (s *ReconciliationService) reconcile(
	ctx context.Context,
	entry logrus.FieldLogger,
	fields payfast.Fields,
	orderID, origin string,
	receivedAt time.Time,
) (Outcome, string) {
	if orderID == "" {
		entry.Warn("ITN without m_payment_id ignored")
		return OutcomeMissingReference, ""
	}

	order, err := s.Repo.GetByID(ctx, orderID)
	if errors.Is(err, models.ErrOrderNotFound) {
		entry.Warn("ITN for unknown order ignored")
		return OutcomeUnknownOrder, ""
	}
	if err != nil {
		entry.WithError(err).Error("loading order for ITN")
		return OutcomeFailed, ""
	}

	notification, err := s.Verifier.Validate(ctx, fields, origin, order.Total)
	if err != nil {
		reason, _ := payfast.ReasonOf(err)
		entry.WithError(err).WithField("reason", reason).Warn("ITN rejected")
		return OutcomeRejected, string(reason)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		entry.WithError(err).Error("encoding ITN payload")
		return OutcomeFailed, ""
	}

	update := models.PaymentUpdate{
		PaymentStatus:   payfast.MapPaymentStatus(notification.PaymentStatus),
		OrderStatus:     payfast.MapOrderStatus(notification.PaymentStatus),
		ExternalID:      notification.PfPaymentID,
		RawNotification: datatypes.JSON(raw),
		ReceivedAt:      receivedAt,
	}

	applied, err := s.Repo.ApplyNotification(ctx, order.ID, update)
	if err != nil {
		entry.WithError(err).Error("persisting ITN state")
		return OutcomeFailed, ""
	}
	if !applied {
		entry.WithField("order_status", order.Status).Info("ITN for terminal order ignored")
		return OutcomeReplayed, ""
	}

	entry.WithFields(logrus.Fields{
		"new_payment_status": update.PaymentStatus,
		"new_order_status":   update.OrderStatus,
	}).Info("ITN applied")

	if update.PaymentStatus == models.PaymentStatusCompleted {
		s.dispatchConfirmation(ctx, entry, order, notification, receivedAt)
	}

	return OutcomeApplied, ""
}

// dispatchConfirmation queues the confirmation email in the background so the
// acknowledgement never waits on the broker. The state is already committed,
// so a failure here is only logged.
func (s *ReconciliationService) dispatchConfirmation(
	ctx context.Context,
	entry logrus.FieldLogger,
	order *models.Order,
	n *payfast.Notification,
	paidAt time.Time,
) {
	event := models.OrderPaidEvent{
		OrderID:       order.ID,
		ExternalID:    n.PfPaymentID,
		Amount:        order.Total.StringFixed(2),
		Currency:      order.Currency,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		PaidAt:        paidAt,
	}
	if order.Payment != nil {
		event.PaymentID = order.Payment.ID
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.NotifyTimeout)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer cancel()

		if err := s.Publisher.Publish(ctx, models.OrderPaidTopic, event); err != nil {
			metrics.ConfirmationDispatchFailures.Inc()
			entry.WithError(err).Error("queueing payment confirmation")
		}
	}()
}

// Wait blocks until every confirmation dispatched so far has been published
// or has given up.
func (s *ReconciliationService) Wait() {
	s.pending.Wait()
}

func (s *ReconciliationService) audit(
	ctx context.Context,
	entry logrus.FieldLogger,
	fields payfast.Fields,
	origin string,
	outcome Outcome,
	reason string,
	receivedAt time.Time,
) {
	payload, err := json.Marshal(fields)
	if err != nil {
		payload = []byte("[]")
	}

	record := &models.NotificationLog{
		OrderID:       fields.Value(payfast.FieldPaymentID),
		PfPaymentID:   fields.Value(payfast.FieldPfPaymentID),
		PaymentStatus: fields.Value(payfast.FieldPaymentStatus),
		Origin:        origin,
		Outcome:       string(outcome),
		Reason:        reason,
		Payload:       datatypes.JSON(payload),
		ReceivedAt:    receivedAt,
	}
	// the row is kept even when the delivery used up its request budget
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	if err := s.Logs.Create(ctx, record); err != nil {
		entry.WithError(err).Error("writing ITN audit log")
	}
}

// History lists the audit trail of an order, oldest first.
func (s *ReconciliationService) History(ctx context.Context, orderID string) ([]models.NotificationLog, error) {
	logs, err := s.Logs.GetBy(ctx, "order_id = ?", orderID)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		return []models.NotificationLog{}, nil
	}
	sort.SliceStable(*logs, func(i, j int) bool {
		return (*logs)[i].ReceivedAt.Before((*logs)[j].ReceivedAt)
	})
	return *logs, nil
}
