package booking

import (
	"context"
	"errors"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmPayment records a payment for a booking exactly once per payment
// intent. Replays return the stored transaction with duplicate set and still
// mark the booking paid, so a confirmation interrupted after the insert
// completes on the next delivery.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, c models.PaymentConfirmation) (*models.Transaction, bool, error) {
	tx, duplicate, err := s.confirm(ctx, c)
	label := "created"
	if duplicate {
		label = "duplicate"
	}
	s.Metrics.ObserveConfirmation(outcomeLabel(err, label))
	return tx, duplicate, err
}

func (s *DefaultBookingService) confirm(ctx context.Context, c models.PaymentConfirmation) (*models.Transaction, bool, error) {
	if c.BookingID == "" || c.PaymentIntentID == "" {
		return nil, false, utils.Validationf("bookingId and paymentIntentId are required")
	}

	b, err := s.Bookings.GetByID(ctx, c.BookingID)
	if err != nil {
		return nil, false, err
	}
	if !b.Status.HoldsSlot() {
		utils.GetLogger().Warn("Payment received for a closed booking; refund may be due",
			zap.String("bookingId", b.ID),
			zap.String("status", string(b.Status)),
			zap.String("paymentIntentId", c.PaymentIntentID),
		)
	}

	tx := &models.Transaction{
		ID:              uuid.New().String(),
		Payer:           c.PayerID,
		Receiver:        c.ReceiverID,
		BookingID:       b.ID,
		Amount:          c.Amount,
		PaymentIntentID: c.PaymentIntentID,
		Status:          models.TransactionSucceeded,
	}
	if tx.Payer == "" {
		tx.Payer = b.BookedBy
	}
	if tx.Receiver == "" {
		tx.Receiver = b.TherapistID
	}

	duplicate := false
	if err := s.Transactions.Create(ctx, tx); err != nil {
		if !errors.Is(err, utils.ErrConflict) {
			return nil, false, err
		}
		duplicate = true
		if tx, err = s.Transactions.GetByPaymentIntent(ctx, c.PaymentIntentID); err != nil {
			return nil, true, err
		}
	}

	if err := s.Bookings.SetPaid(ctx, b.ID); err != nil {
		return nil, duplicate, err
	}
	return tx, duplicate, nil
}
