package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models/dto"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutService interface {
	PlaceOrder(ctx context.Context, req *dto.PlaceOrder) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	StartCheckout(ctx context.Context, orderID string) (*payfast.Checkout, error)
}

var checkoutForm = template.Must(template.New("checkout").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to Payfast</title></head>
<body onload="document.forms[0].submit()">
<form action="{{.ActionURL}}" method="post">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

type CheckoutHandler struct {
	Service CheckoutService
	Logger  logrus.FieldLogger
}

func NewCheckoutHandler(s CheckoutService, logger logrus.FieldLogger) *CheckoutHandler {
	return &CheckoutHandler{Service: s, Logger: logger}
}

// POST /orders
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.Service.PlaceOrder(c.Request.Context(), &req)
	if errors.Is(err, service.ErrInvalidOrder) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to place order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /orders/:id
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	order, err := h.Service.GetOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("loading order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// POST /orders/:id/checkout
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	checkout, ok := h.checkout(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, checkout)
}

// GET /orders/:id/checkout/form
func (h *CheckoutHandler) CheckoutForm(c *gin.Context) {
	checkout, ok := h.checkout(c)
	if !ok {
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := checkoutForm.Execute(c.Writer, checkout); err != nil {
		h.Logger.WithError(err).Error("rendering checkout form")
	}
}

func (h *CheckoutHandler) checkout(c *gin.Context) (*payfast.Checkout, bool) {
	checkout, err := h.Service.StartCheckout(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		return checkout, true
	case errors.Is(err, payfast.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, payfast.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "order is not awaiting payment"})
	case errors.Is(err, payfast.ErrPaymentRecordMissing):
		c.JSON(http.StatusConflict, gin.H{"error": "order has no payment record"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to start payment"})
	}
	return nil, false
}
