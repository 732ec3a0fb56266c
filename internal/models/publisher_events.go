package models

import "time"

const (
	OrderPaidTopic = "orders.paid"
	OrdersDLQTopic = "orders.dlq"
)

// OrderPaidEvent asks the mail worker to confirm a completed payment.
type OrderPaidEvent struct {
	OrderID       string    `json:"order_id"`
	PaymentID     string    `json:"payment_id"`
	ExternalID    string    `json:"external_id"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	PaidAt        time.Time `json:"paid_at"`
}

func (e OrderPaidEvent) MessageKey() string { return e.OrderID }

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
