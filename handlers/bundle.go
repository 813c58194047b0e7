package handlers

// HandlerBundle groups the endpoint handlers passed to the router.
type HandlerBundle struct {
	Auth      *AuthHandler
	Therapist *TherapistHandler
	Booking   *BookingHandler
	Payment   *PaymentHandler
	Webhooks  *WebhookHandler
	Content   *ContentHandler
}
