package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxNotificationBytes = 64 << 10

type ReconciliationService interface {
	HandleNotification(ctx context.Context, fields payfast.Fields, origin string) service.Outcome
	History(ctx context.Context, orderID string) ([]models.NotificationLog, error)
}

type PayfastHandler struct {
	Service ReconciliationService
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

func NewPayfastHandler(s ReconciliationService, timeout time.Duration, logger logrus.FieldLogger) *PayfastHandler {
	return &PayfastHandler{Service: s, Timeout: timeout, Logger: logger}
}

// POST /payments/payfast/notify
//
// The gateway retries anything but a 200, so every path below acknowledges.
// Processing is bounded by Timeout and survives the gateway hanging up.
func (h *PayfastHandler) Notify(c *gin.Context) {
	origin := c.ClientIP()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxNotificationBytes))
	if err != nil {
		h.Logger.WithError(err).WithField("origin", origin).Warn("reading ITN body")
		acknowledge(c)
		return
	}

	fields, err := payfast.ParseFields(string(body))
	if err != nil {
		h.Logger.WithError(err).WithField("origin", origin).Warn("malformed ITN body")
		acknowledge(c)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), h.Timeout)
	defer cancel()

	outcome := h.Service.HandleNotification(ctx, fields, origin)
	h.Logger.WithFields(logrus.Fields{
		"order_id": fields.Value(payfast.FieldPaymentID),
		"origin":   origin,
		"outcome":  outcome,
	}).Debug("ITN acknowledged")

	acknowledge(c)
}

// GET /admin/orders/:id/notifications
func (h *PayfastHandler) History(c *gin.Context) {
	logs, err := h.Service.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).Error("listing ITN history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load notifications"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func acknowledge(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
