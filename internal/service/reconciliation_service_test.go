package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/service"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	orderID    = "3f2a9c1e-0000-4000-8000-000000000001"
	passphrase = "jt7NOE43FZPn"
	loopback   = "127.0.0.1"
)

func gatewayConfig() payfast.Config {
	return payfast.Config{
		MerchantID:  "10000100",
		MerchantKey: "46f0cd694581a",
		Passphrase:  passphrase,
		Sandbox:     true,
		BaseURL:     "https://shop.example.com",
	}
}

func newVerifier() *payfast.Verifier {
	cfg := gatewayConfig()
	return payfast.NewVerifier(cfg, payfast.NewOriginChecker(cfg, nil))
}

func pendingOrder() *models.Order {
	return &models.Order{
		ID:            orderID,
		Total:         decimal.RequireFromString("149.50"),
		Currency:      models.CurrencyZAR,
		Status:        models.OrderStatusPending,
		CustomerName:  "Thandi Nkosi",
		CustomerEmail: "thandi@example.com",
		Payment: &models.Payment{
			ID:      "payment-1",
			OrderID: orderID,
			Amount:  decimal.RequireFromString("149.50"),
			Status:  models.PaymentStatusInitiated,
		},
	}
}

func signedITN(status, amount string) payfast.Fields {
	fields := payfast.Fields{
		{Name: "m_payment_id", Value: orderID},
		{Name: "pf_payment_id", Value: "1089250"},
		{Name: "payment_status", Value: status},
		{Name: "item_name", Value: "Order #3F2A9C1E"},
		{Name: "item_description", Value: ""},
		{Name: "amount_gross", Value: amount},
		{Name: "amount_fee", Value: "-3.44"},
		{Name: "amount_net", Value: "146.06"},
		{Name: "custom_str1", Value: orderID},
		{Name: "name_first", Value: "Thandi"},
		{Name: "name_last", Value: "Nkosi"},
		{Name: "email_address", Value: "thandi@example.com"},
		{Name: "merchant_id", Value: "10000100"},
	}
	fields.Add(payfast.FieldSignature, payfast.NewSigner(passphrase).Sign(fields, true))
	return fields
}

type fixture struct {
	repo      *mocks.MockOrderRepo
	logs      *mocks.MockNotificationLogRepo
	publisher *mocks.MockPublisher
	hook      *test.Hook
	svc       *service.ReconciliationService
}

func newFixture(t *testing.T) *fixture {
	logger, hook := test.NewNullLogger()
	f := &fixture{
		repo:      mocks.NewMockOrderRepo(t),
		logs:      mocks.NewMockNotificationLogRepo(t),
		publisher: mocks.NewMockPublisher(t),
		hook:      hook,
	}
	f.svc = service.NewReconciliationService(f.repo, f.logs, newVerifier(), f.publisher, logger, time.Second)
	t.Cleanup(f.svc.Wait)
	return f
}

func (f *fixture) expectAudit(outcome service.Outcome, reason string) {
	f.logs.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(l *models.NotificationLog) bool {
			return l.Outcome == string(outcome) && l.Reason == reason
		})).
		Return(nil).
		Once()
}

func TestHandleNotification_CompleteMarksPaidAndConfirms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.repo.EXPECT().
		ApplyNotification(ctx, orderID, mock.MatchedBy(func(u models.PaymentUpdate) bool {
			return u.PaymentStatus == models.PaymentStatusCompleted &&
				u.OrderStatus == models.OrderStatusPaid &&
				u.ExternalID == "1089250" &&
				len(u.RawNotification) > 0
		})).
		Return(true, nil).
		Once()
	f.publisher.EXPECT().
		Publish(mock.Anything, models.OrderPaidTopic, mock.MatchedBy(func(evt models.OrderPaidEvent) bool {
			return evt.OrderID == orderID &&
				evt.PaymentID == "payment-1" &&
				evt.ExternalID == "1089250" &&
				evt.Amount == "149.50" &&
				evt.CustomerEmail == "thandi@example.com"
		})).
		Return(nil).
		Once()
	f.expectAudit(service.OutcomeApplied, "")

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), loopback)

	assert.Equal(t, service.OutcomeApplied, outcome)
}

func TestHandleNotification_AmountMismatchIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.expectAudit(service.OutcomeRejected, string(payfast.ReasonAmountMismatch))

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "200.00"), loopback)

	assert.Equal(t, service.OutcomeRejected, outcome)
	f.repo.AssertNotCalled(t, "ApplyNotification", mock.Anything, mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)

	entry := f.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, payfast.ReasonAmountMismatch, entry.Data["reason"])
}

func TestHandleNotification_TamperedSignatureIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fields := signedITN("COMPLETE", "149.50")
	fields[1].Value = "9999999"

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.expectAudit(service.OutcomeRejected, string(payfast.ReasonBadSignature))

	outcome := f.svc.HandleNotification(ctx, fields, loopback)

	assert.Equal(t, service.OutcomeRejected, outcome)
	f.repo.AssertNotCalled(t, "ApplyNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotification_UntrustedOriginIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.expectAudit(service.OutcomeRejected, string(payfast.ReasonUntrustedOrigin))

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), "not-an-address")

	assert.Equal(t, service.OutcomeRejected, outcome)
	f.repo.AssertNotCalled(t, "ApplyNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotification_ReplayDoesNotConfirmTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fields := signedITN("COMPLETE", "149.50")

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Twice()
	f.repo.EXPECT().ApplyNotification(ctx, orderID, mock.Anything).Return(true, nil).Once()
	f.repo.EXPECT().ApplyNotification(ctx, orderID, mock.Anything).Return(false, nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, models.OrderPaidTopic, mock.Anything).Return(nil).Once()
	f.expectAudit(service.OutcomeApplied, "")
	f.expectAudit(service.OutcomeReplayed, "")

	assert.Equal(t, service.OutcomeApplied, f.svc.HandleNotification(ctx, fields, loopback))
	assert.Equal(t, service.OutcomeReplayed, f.svc.HandleNotification(ctx, fields, loopback))

	f.svc.Wait()
	f.publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestHandleNotification_FailedKeepsOrderPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.repo.EXPECT().
		ApplyNotification(ctx, orderID, mock.MatchedBy(func(u models.PaymentUpdate) bool {
			return u.PaymentStatus == models.PaymentStatusFailed && u.OrderStatus == models.OrderStatusPending
		})).
		Return(true, nil).
		Once()
	f.expectAudit(service.OutcomeApplied, "")

	outcome := f.svc.HandleNotification(ctx, signedITN("FAILED", "149.50"), loopback)

	assert.Equal(t, service.OutcomeApplied, outcome)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotification_MissingReference(t *testing.T) {
	f := newFixture(t)
	fields := payfast.Fields{{Name: "pf_payment_id", Value: "1089250"}}

	f.expectAudit(service.OutcomeMissingReference, "")

	outcome := f.svc.HandleNotification(context.Background(), fields, loopback)

	assert.Equal(t, service.OutcomeMissingReference, outcome)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandleNotification_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(nil, models.ErrOrderNotFound).Once()
	f.expectAudit(service.OutcomeUnknownOrder, "")

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), loopback)

	assert.Equal(t, service.OutcomeUnknownOrder, outcome)
}

func TestHandleNotification_PublishFailureKeepsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.repo.EXPECT().ApplyNotification(ctx, orderID, mock.Anything).Return(true, nil).Once()
	f.publisher.EXPECT().
		Publish(mock.Anything, models.OrderPaidTopic, mock.Anything).
		Return(errors.New("broker unavailable")).
		Once()
	f.expectAudit(service.OutcomeApplied, "")

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), loopback)

	assert.Equal(t, service.OutcomeApplied, outcome)
}

func TestHandleNotification_PublishIgnoresRequestCancellation(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.repo.EXPECT().
		ApplyNotification(ctx, orderID, mock.Anything).
		RunAndReturn(func(context.Context, string, models.PaymentUpdate) (bool, error) {
			cancel()
			return true, nil
		}).
		Once()
	f.publisher.EXPECT().
		Publish(mock.Anything, models.OrderPaidTopic, mock.Anything).
		Run(func(pubCtx context.Context, topic string, message interface{}) {
			assert.NoError(t, pubCtx.Err())
			_, hasDeadline := pubCtx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(nil).
		Once()
	f.expectAudit(service.OutcomeApplied, "")

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), loopback)

	assert.Equal(t, service.OutcomeApplied, outcome)
}

func TestHandleNotification_PersistenceFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.repo.EXPECT().ApplyNotification(ctx, orderID, mock.Anything).Return(false, errors.New("deadlock")).Once()
	f.expectAudit(service.OutcomeFailed, "")

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), loopback)

	assert.Equal(t, service.OutcomeFailed, outcome)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotification_AuditFailureDoesNotChangeOutcome(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByID(ctx, orderID).Return(nil, models.ErrOrderNotFound).Once()
	f.logs.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), loopback)

	assert.Equal(t, service.OutcomeUnknownOrder, outcome)
	assert.Equal(t, logrus.ErrorLevel, f.hook.LastEntry().Level)
}

func TestHistory_SortedByReceivedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	f.logs.EXPECT().
		GetBy(ctx, "order_id = ?", orderID).
		Return(&[]models.NotificationLog{
			{ID: "b", ReceivedAt: first.Add(time.Minute)},
			{ID: "a", ReceivedAt: first},
		}, nil).
		Once()

	logs, err := f.svc.History(ctx, orderID)

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "a", logs[0].ID)
	assert.Equal(t, "b", logs[1].ID)
}

func TestHandleNotification_AcknowledgesBeforeSlowPublish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	release := make(chan struct{})
	published := make(chan struct{})

	f.repo.EXPECT().GetByID(ctx, orderID).Return(pendingOrder(), nil).Once()
	f.repo.EXPECT().ApplyNotification(ctx, orderID, mock.Anything).Return(true, nil).Once()
	f.publisher.EXPECT().
		Publish(mock.Anything, models.OrderPaidTopic, mock.Anything).
		RunAndReturn(func(pubCtx context.Context, topic string, message interface{}) error {
			defer close(published)
			select {
			case <-release:
				return nil
			case <-pubCtx.Done():
				return pubCtx.Err()
			}
		}).
		Once()
	f.expectAudit(service.OutcomeApplied, "")

	outcome := f.svc.HandleNotification(ctx, signedITN("COMPLETE", "149.50"), loopback)

	assert.Equal(t, service.OutcomeApplied, outcome)
	select {
	case <-published:
		t.Fatal("publish finished before the notification was acknowledged")
	default:
	}

	close(release)
	f.svc.Wait()
	<-published
}

func TestHandleNotification_AuditSurvivesExhaustedBudget(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.logs.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(auditCtx context.Context, log *models.NotificationLog) {
			assert.NoError(t, auditCtx.Err())
			_, hasDeadline := auditCtx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(nil).
		Once()

	outcome := f.svc.HandleNotification(ctx, payfast.Fields{{Name: "pf_payment_id", Value: "1089250"}}, loopback)

	assert.Equal(t, service.OutcomeMissingReference, outcome)
}
