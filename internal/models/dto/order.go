package dto

import (
	"strings"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/shopspring/decimal"
)

type PlaceOrder struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	CustomerEmail string          `json:"customer_email" binding:"required,email"`
	CustomerPhone string          `json:"customer_phone"`
	Description   string          `json:"description"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
}

func (o *PlaceOrder) Sanitize() {
	o.CustomerName = strings.Join(strings.Fields(o.CustomerName), " ")
	o.CustomerEmail = strings.ToLower(strings.TrimSpace(o.CustomerEmail))
	o.CustomerPhone = strings.TrimSpace(o.CustomerPhone)
	o.Description = strings.TrimSpace(o.Description)
	o.Currency = strings.ToUpper(strings.TrimSpace(o.Currency))

	if o.Currency == "" {
		o.Currency = models.CurrencyZAR
	}
}

// ToEntity builds a pending order together with its initiated payment record.
func (o *PlaceOrder) ToEntity() *models.Order {
	return &models.Order{
		Total:         o.Total,
		Currency:      o.Currency,
		Status:        models.OrderStatusPending,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Description:   o.Description,
		Payment: &models.Payment{
			Amount: o.Total,
			Status: models.PaymentStatusInitiated,
		},
	}
}
