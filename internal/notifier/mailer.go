package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/go-resty/resty/v2"
)

var ErrNoRecipient = errors.New("notifier: order has no customer email")

type Config struct {
	APIURL  string
	APIKey  string
	From    string
	Timeout time.Duration
}

// Message is the body accepted by the transactional mail API.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	Tags    []string `json:"tags,omitempty"`
}

// Mailer sends payment confirmations through an HTTP mail API.
type Mailer struct {
	client *resty.Client
	from   string
}

func NewMailer(cfg Config) *Mailer {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Mailer{client: client, from: cfg.From}
}

func (m *Mailer) SendPaymentConfirmation(ctx context.Context, event models.OrderPaidEvent) error {
	if strings.TrimSpace(event.CustomerEmail) == "" {
		return ErrNoRecipient
	}

	msg := Message{
		From:    m.from,
		To:      []string{event.CustomerEmail},
		Subject: fmt.Sprintf("Payment received for %s", orderReference(event.OrderID)),
		Text:    confirmationText(event),
		Tags:    []string{"payment-confirmation"},
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("failed to call mail api: %w", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusAccepted && resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("mail api returned an error: %s", resp.Status())
	}

	return nil
}

func orderReference(orderID string) string {
	if len(orderID) > 8 {
		orderID = orderID[:8]
	}
	return "order #" + strings.ToUpper(orderID)
}

func confirmationText(event models.OrderPaidEvent) string {
	name := strings.TrimSpace(event.CustomerName)
	if name == "" {
		name = "there"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "We received your payment of %s %s for %s.\n", event.Currency, event.Amount, orderReference(event.OrderID))
	if event.ExternalID != "" {
		fmt.Fprintf(&b, "Payment reference: %s\n", event.ExternalID)
	}
	if !event.PaidAt.IsZero() {
		fmt.Fprintf(&b, "Paid at: %s\n", event.PaidAt.UTC().Format(time.RFC1123))
	}
	b.WriteString("\nThank you for your order.\n")
	return b.String()
}
