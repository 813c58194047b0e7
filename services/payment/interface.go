package payment

import (
	"context"

	"doctospeech/models"

	"github.com/stripe/stripe-go/v76"
)

// PaymentService creates Stripe payment intents for bookings and turns
// Stripe webhook events into payment confirmations.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, actor models.Actor, bookingID string) (*models.PaymentIntent, error)
	HandleStripeEvent(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

// Confirmer records a confirmed payment. The booking service implements it.
type Confirmer interface {
	ConfirmPayment(ctx context.Context, c models.PaymentConfirmation) (*models.Transaction, bool, error)
}

// BookingReader is the slice of the booking store a payment needs.
type BookingReader interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// UserStore reads payer and payee accounts and saves the Stripe customer id.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

// Gateway is the Stripe API surface used here.
type Gateway interface {
	NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	NewPaymentIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// WebhookResult describes what a webhook delivery did.
type WebhookResult struct {
	EventType   string              `json:"eventType"`
	Handled     bool                `json:"handled"`
	Duplicate   bool                `json:"duplicate"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

type DefaultPaymentService struct {
	Bookings      BookingReader
	Users         UserStore
	Confirmer     Confirmer
	Gateway       Gateway
	Currency      string
	WebhookSecret string
}

func NewPaymentService(bookings BookingReader, users UserStore, confirmer Confirmer, gateway Gateway, currency, webhookSecret string) *DefaultPaymentService {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &DefaultPaymentService{
		Bookings:      bookings,
		Users:         users,
		Confirmer:     confirmer,
		Gateway:       gateway,
		Currency:      currency,
		WebhookSecret: webhookSecret,
	}
}
