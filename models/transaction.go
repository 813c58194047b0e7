package models

import "time"

type TransactionStatus string

const (
	TransactionSucceeded TransactionStatus = "Succeeded"
	TransactionFailed    TransactionStatus = "Failed"
	TransactionPending   TransactionStatus = "Pending"
)

// Transaction records a confirmed payment for a booking.
type Transaction struct {
	ID              string            `bson:"id" json:"id"`
	Payer           string            `bson:"payer" json:"payer"`
	Receiver        string            `bson:"receiver" json:"receiver"`
	BookingID       string            `bson:"bookingId" json:"bookingId"`
	Amount          float64           `bson:"amount" json:"amount"`
	PaymentIntentID string            `bson:"paymentIntentId" json:"paymentIntentId"`
	Status          TransactionStatus `bson:"status" json:"status"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// PaymentConfirmation is the validated outcome of a payment gateway event.
type PaymentConfirmation struct {
	BookingID       string
	PaymentIntentID string
	Amount          float64
	PayerID         string
	ReceiverID      string
}

// Earnings is the therapist-side payment summary.
type Earnings struct {
	TotalAmount  float64       `json:"totalAmount"`
	Count        int64         `json:"count"`
	Transactions []Transaction `json:"transactions"`
}

// PaymentIntent is returned to the client to complete payment in the app.
type PaymentIntent struct {
	ClientSecret    string  `json:"clientSecret"`
	PaymentIntentID string  `json:"paymentIntentId"`
	Amount          int64   `json:"amount"`
	Currency        string  `json:"currency"`
	SessionCharges  float64 `json:"sessionCharges"`
}
