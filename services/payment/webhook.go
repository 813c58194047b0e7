package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const eventPaymentIntentSucceeded = "payment_intent.succeeded"

// HandleStripeEvent verifies a webhook delivery and confirms the booking
// payment on payment_intent.succeeded. Other event types are acknowledged.
func (s *DefaultPaymentService) HandleStripeEvent(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, utils.Validationf("invalid stripe signature: %v", err)
	}

	logger := utils.GetLogger().With(zap.String("eventId", event.ID), zap.String("eventType", string(event.Type)))
	result := &WebhookResult{EventType: string(event.Type)}
	if string(event.Type) != eventPaymentIntentSucceeded {
		logger.Debug("Stripe event ignored")
		return result, nil
	}
	if event.Data == nil {
		return nil, utils.Validationf("stripe event has no data")
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, utils.Validationf("invalid payment intent payload: %v", err)
	}
	bookingID := pi.Metadata["bookingId"]
	if bookingID == "" {
		// Not one of ours; acknowledge so Stripe stops retrying.
		logger.Warn("Payment intent without bookingId metadata", zap.String("paymentIntentId", pi.ID))
		return result, nil
	}

	tx, duplicate, err := s.Confirmer.ConfirmPayment(ctx, models.PaymentConfirmation{
		BookingID:       bookingID,
		PaymentIntentID: pi.ID,
		Amount:          float64(pi.Amount) / 100,
		PayerID:         pi.Metadata["bookedBy"],
		ReceiverID:      pi.Metadata["therapist"],
	})
	if errors.Is(err, utils.ErrNotFound) {
		// The booking was cancelled or its account deleted. Redelivery cannot
		// help, so acknowledge and leave the charge for reconciliation.
		logger.Warn("Payment intent for a missing booking",
			zap.String("bookingId", bookingID),
			zap.String("paymentIntentId", pi.ID),
		)
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("confirm payment %s: %w", pi.ID, err)
	}
	logger.Info("Payment confirmed",
		zap.String("bookingId", bookingID),
		zap.String("paymentIntentId", pi.ID),
		zap.Bool("duplicate", duplicate),
	)
	result.Handled = true
	result.Duplicate = duplicate
	result.Transaction = tx
	return result, nil
}
