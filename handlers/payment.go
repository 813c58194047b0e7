package handlers

import (
	"io"
	"net/http"

	"doctospeech/services/payment"
	"doctospeech/services/subscription"
	"doctospeech/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBody caps how much of a webhook body is read.
const maxWebhookBody = 65536

type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(s payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

type paymentIntentRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	var req paymentIntentRequest
	if !bindJSON(c, &req) {
		return
	}
	pi, err := h.Service.CreatePaymentIntent(c.Request.Context(), actor, req.BookingID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Payment intent created", pi)
}

// WebhookHandler receives gateway callbacks. Bodies are read raw since both
// providers authenticate the exact bytes or header sent.
type WebhookHandler struct {
	Payments      payment.PaymentService
	Subscriptions subscription.SubscriptionService
}

func NewWebhookHandler(p payment.PaymentService, s subscription.SubscriptionService) *WebhookHandler {
	return &WebhookHandler{Payments: p, Subscriptions: s}
}

func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read body")
		return
	}
	res, err := h.Payments.HandleStripeEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		fail(c, err)
		return
	}
	getLogger(c).Info("Stripe webhook processed", zap.String("eventType", res.EventType), zap.Bool("handled", res.Handled))
	ok(c, "Webhook received", res)
}

func (h *WebhookHandler) RevenueCat(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read body")
		return
	}
	res, err := h.Subscriptions.HandleRevenueCat(c.Request.Context(), c.GetHeader("Authorization"), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Webhook received", res)
}
