package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationLog is the audit trail of every ITN delivery, accepted or not.
// It is written outside the order/payment state and never drives a transition.
type NotificationLog struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID       string         `json:"order_id" gorm:"type:varchar(64);index"`
	PfPaymentID   string         `json:"pf_payment_id" gorm:"type:varchar(64)"`
	PaymentStatus string         `json:"payment_status" gorm:"type:varchar(32)"`
	Origin        string         `json:"origin" gorm:"type:varchar(64)"`
	Outcome       string         `json:"outcome" gorm:"type:varchar(32);not null"`
	Reason        string         `json:"reason,omitempty" gorm:"type:varchar(64)"`
	Payload       datatypes.JSON `json:"payload" gorm:"type:jsonb"`
	ReceivedAt    time.Time      `json:"received_at" gorm:"not null"`
}

func (NotificationLog) TableName() string { return "payfast_notification_logs" }

func (l *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	return
}
