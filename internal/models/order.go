package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	CurrencyZAR = "ZAR"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// IsTerminal reports whether no further transition is defined out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCancelled
}

type Order struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Total         decimal.Decimal `json:"total" gorm:"type:numeric(12,2);not null"`
	Currency      string          `json:"currency" gorm:"type:varchar(3);not null"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(16);not null;index"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email" gorm:"not null"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Description   string          `json:"description,omitempty"`
	Payment       *Payment        `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Payment struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID         string          `json:"order_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Status          PaymentStatus   `json:"status" gorm:"type:varchar(16);not null"`
	ExternalID      *string         `json:"external_id,omitempty" gorm:"type:varchar(64)"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	RawNotification datatypes.JSON  `json:"-" gorm:"type:jsonb"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PaymentUpdate is the state a verified notification asks for.
type PaymentUpdate struct {
	PaymentStatus   PaymentStatus
	OrderStatus     OrderStatus
	ExternalID      string
	RawNotification datatypes.JSON
	ReceivedAt      time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Payment != nil {
		o.Payment.OrderID = o.ID
	}

	return
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

func (o *Order) Validate() error {
	if !o.Total.IsPositive() {
		return fmt.Errorf("total must be greater than zero")
	}
	if !o.Total.Equal(o.Total.Round(2)) {
		return fmt.Errorf("total must have at most two decimal places")
	}
	if o.Currency != CurrencyZAR {
		return fmt.Errorf("invalid currency: %s", o.Currency)
	}
	if o.CustomerEmail == "" {
		return fmt.Errorf("customer email is required")
	}

	return nil
}

// Apply moves the order and its payment to the state carried by a verified
// notification. Terminal orders are never touched and Apply reports false,
// which makes replayed notifications a no-op. A failed payment leaves the
// order pending, so a later COMPLETE for the same order can still settle it.
func (o *Order) Apply(u PaymentUpdate) bool {
	if o.Status.IsTerminal() || o.Payment == nil {
		return false
	}

	p := o.Payment
	p.Status = u.PaymentStatus
	if u.ExternalID != "" {
		externalID := u.ExternalID
		p.ExternalID = &externalID
	}
	if u.PaymentStatus == PaymentStatusCompleted && p.PaidAt == nil {
		paidAt := u.ReceivedAt
		p.PaidAt = &paidAt
	}
	if len(u.RawNotification) > 0 {
		p.RawNotification = u.RawNotification
	}
	o.Status = u.OrderStatus

	return true
}
