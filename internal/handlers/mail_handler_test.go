package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/handlers"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/handlers/mocks"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/notifier"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMailHandler(t *testing.T) (*handlers.MailHandler, *mocks.MockConfirmationMailer) {
	logger, _ := test.NewNullLogger()
	mailer := mocks.NewMockConfirmationMailer(t)
	return handlers.NewMailHandler(mailer, logger), mailer
}

func TestHandleEvents_SendsConfirmation(t *testing.T) {
	h, mailer := newMailHandler(t)
	ctx := context.Background()

	mailer.EXPECT().
		SendPaymentConfirmation(ctx, mock.MatchedBy(func(evt models.OrderPaidEvent) bool {
			return evt.OrderID == "order-1" && evt.Amount == "149.50"
		})).
		Return(nil).
		Once()

	err := h.HandleEvents(ctx, models.OrderPaidTopic, []byte(`{"order_id":"order-1","amount":"149.50","customer_email":"thandi@example.com"}`))

	assert.NoError(t, err)
}

func TestHandleEvents_MailerErrorIsRetried(t *testing.T) {
	h, mailer := newMailHandler(t)
	ctx := context.Background()

	mailer.EXPECT().SendPaymentConfirmation(ctx, mock.Anything).Return(errors.New("mail api returned an error: 502")).Once()

	err := h.HandleEvents(ctx, models.OrderPaidTopic, []byte(`{"order_id":"order-1"}`))

	assert.ErrorContains(t, err, "error sending payment confirmation")
}

func TestHandleEvents_NoRecipientIsDropped(t *testing.T) {
	h, mailer := newMailHandler(t)
	ctx := context.Background()

	mailer.EXPECT().SendPaymentConfirmation(ctx, mock.Anything).Return(notifier.ErrNoRecipient).Once()

	assert.NoError(t, h.HandleEvents(ctx, models.OrderPaidTopic, []byte(`{"order_id":"order-1"}`)))
}

func TestHandleEvents_InvalidPayloadIsDropped(t *testing.T) {
	h, mailer := newMailHandler(t)

	err := h.HandleEvents(context.Background(), models.OrderPaidTopic, []byte(`{not json`))

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "SendPaymentConfirmation", mock.Anything, mock.Anything)
}

func TestHandleEvents_UnknownTopic(t *testing.T) {
	h, _ := newMailHandler(t)

	err := h.HandleEvents(context.Background(), "orders.unknown", []byte(`{}`))

	assert.EqualError(t, err, "topic not allowed orders.unknown")
}
