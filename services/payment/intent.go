package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// CreatePaymentIntent charges the therapist's session fee for one of the
// caller's pending, unpaid bookings.
func (s *DefaultPaymentService) CreatePaymentIntent(ctx context.Context, actor models.Actor, bookingID string) (*models.PaymentIntent, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, utils.Validationf("bookingId is required")
	}
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookedBy != actor.ID {
		return nil, fmt.Errorf("booking %s: %w", bookingID, utils.ErrNotFound)
	}
	if b.IsPaid {
		return nil, utils.Validationf("payment already processed")
	}
	if b.Status != models.StatusPending {
		return nil, utils.Validationf("booking is %s and cannot be paid", b.Status)
	}

	therapist, err := s.Users.GetByID(ctx, b.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist.SessionCharges <= 0 {
		return nil, utils.Validationf("therapist has no session charges configured")
	}
	payer, err := s.Users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := s.ensureCustomer(ctx, payer)
	if err != nil {
		return nil, err
	}

	amount := int64(math.Round(therapist.SessionCharges * 100))
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(s.Currency),
		Customer: stripe.String(customerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", b.ID)
	params.AddMetadata("bookedBy", b.BookedBy)
	params.AddMetadata("therapist", b.TherapistID)
	params.AddMetadata("payedAmount", strconv.FormatFloat(therapist.SessionCharges, 'f', 2, 64))

	pi, err := s.Gateway.NewPaymentIntent(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	utils.GetLogger().Info("Payment intent created",
		zap.String("bookingId", b.ID),
		zap.String("paymentIntentId", pi.ID),
		zap.Int64("amount", amount),
	)
	return &models.PaymentIntent{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
		Amount:          amount,
		Currency:        s.Currency,
		SessionCharges:  therapist.SessionCharges,
	}, nil
}

// ensureCustomer creates the Stripe customer on first payment.
func (s *DefaultPaymentService) ensureCustomer(ctx context.Context, u *models.User) (string, error) {
	if u.StripeCustomerID != "" {
		return u.StripeCustomerID, nil
	}
	params := &stripe.CustomerParams{
		Email: stripe.String(u.Email),
		Name:  stripe.String(strings.TrimSpace(u.FirstName + " " + u.LastName)),
	}
	params.Context = ctx
	params.AddMetadata("userId", u.ID)

	c, err := s.Gateway.NewCustomer(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}
	u.StripeCustomerID = c.ID
	if err := s.Users.Update(ctx, u); err != nil {
		return "", err
	}
	return c.ID, nil
}
