package payfast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
)

var (
	ErrOrderNotFound        = errors.New("payfast: order not found")
	ErrInvalidState         = errors.New("payfast: order is not pending")
	ErrPaymentRecordMissing = errors.New("payfast: order has no payment record")
)

// OrderFinder loads an order together with its payment record.
type OrderFinder interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// Checkout is what the storefront needs to send the customer to the
// hosted payment page.
type Checkout struct {
	ActionURL string `json:"action_url"`
	Fields    Fields `json:"fields"`
}

// Builder constructs signed checkout payloads.
type Builder struct {
	cfg    Config
	signer *Signer
	orders OrderFinder
}

func NewBuilder(cfg Config, orders OrderFinder) *Builder {
	return &Builder{
		cfg:    cfg,
		signer: NewSigner(cfg.Passphrase),
		orders: orders,
	}
}

// Build returns the ordered payload for orderID, signature last. The order
// must be pending and already own a payment record.
func (b *Builder) Build(ctx context.Context, orderID string) (Fields, error) {
	order, err := b.orders.GetByID(ctx, orderID)
	if errors.Is(err, models.ErrOrderNotFound) || (err == nil && order == nil) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", orderID, err)
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: order %s is %s", ErrInvalidState, order.ID, order.Status)
	}
	if order.Payment == nil {
		return nil, ErrPaymentRecordMissing
	}

	var fields Fields
	fields.Add(FieldMerchantID, b.cfg.MerchantID)
	fields.Add(FieldMerchantKey, b.cfg.MerchantKey)

	fields.Add("return_url", b.cfg.ReturnURL(order.ID))
	fields.Add("cancel_url", b.cfg.CancelURL(order.ID))
	fields.Add("notify_url", b.cfg.NotifyURL())

	first, last := splitName(order.CustomerName)
	fields.AddIfPresent("name_first", first)
	fields.AddIfPresent("name_last", last)
	fields.AddIfPresent("email_address", order.CustomerEmail)
	fields.AddIfPresent("cell_number", order.CustomerPhone)

	fields.Add(FieldPaymentID, order.ID)
	fields.Add("amount", order.Total.StringFixed(2))
	fields.Add("item_name", itemName(order.ID))
	fields.AddIfPresent("item_description", order.Description)
	fields.Add("custom_str1", order.ID)

	fields.Add(FieldSignature, b.signer.Sign(fields, false))

	return fields, nil
}

// Checkout builds the payload and pairs it with the gateway process URL.
func (b *Builder) Checkout(ctx context.Context, orderID string) (*Checkout, error) {
	fields, err := b.Build(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &Checkout{ActionURL: b.cfg.ProcessURL(), Fields: fields}, nil
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func itemName(orderID string) string {
	ref := orderID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return "Order #" + strings.ToUpper(ref)
}
