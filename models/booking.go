package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusAccepted  BookingStatus = "Accepted"
	StatusRejected  BookingStatus = "Rejected"
	StatusCompleted BookingStatus = "Completed"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldsSlot reports whether a booking in this state blocks its time range.
func (s BookingStatus) HoldsSlot() bool {
	return s == StatusPending || s == StatusAccepted
}

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Booking is a client's reservation of one time range on one date.
type Booking struct {
	ID           string        `bson:"id" json:"id"`
	TherapistID  string        `bson:"therapistId" json:"therapistId"`
	BookedBy     string        `bson:"bookedBy" json:"bookedBy"`
	SlotID       string        `bson:"slotId" json:"slotId"`
	TimeID       string        `bson:"timeId" json:"timeId"`
	Date         string        `bson:"date" json:"date"`
	ServiceType  string        `bson:"serviceType" json:"serviceType"`
	ForKid       string        `bson:"forKid,omitempty" json:"forKid,omitempty"`
	Status       BookingStatus `bson:"status" json:"status"`
	IsPaid       bool          `bson:"isPaid" json:"isPaid"`
	CancelReason string        `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CancelBy     string        `bson:"cancelBy,omitempty" json:"cancelBy,omitempty"`
	HoldsSlot    bool          `bson:"holdsSlot" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// IsParty reports whether userID is the client or the therapist of the booking.
func (b *Booking) IsParty(userID string) bool {
	return b.BookedBy == userID || b.TherapistID == userID
}

// BookingRequest is the client input for admission.
type BookingRequest struct {
	TherapistID string `json:"therapistId"`
	TimeID      string `json:"timeId"`
	Date        string `json:"date"`
	ServiceType string `json:"serviceType"`
	ForKid      string `json:"forKid,omitempty"`
}

// BookingFilter narrows a booking listing. Empty fields match everything.
type BookingFilter struct {
	Status BookingStatus
	From   string
	To     string
}

// Transition is a single status change request against the store.
type Transition struct {
	From         BookingStatus
	To           BookingStatus
	CancelReason string
	CancelBy     string
}

// BookingView is a booking joined with the data a party needs to render it.
type BookingView struct {
	Booking
	Counterpart *PublicProfile `json:"counterpart"`
	Time        *TimeRange     `json:"time"`
	Kid         *Kid           `json:"kid,omitempty"`
}

// TherapistHome summarises a therapist's dashboard.
type TherapistHome struct {
	PendingRequests []BookingView `json:"pendingRequests"`
	TodaySessions   []BookingView `json:"todaySessions"`
	PendingCount    int           `json:"pendingCount"`
	AcceptedCount   int           `json:"acceptedCount"`
	CompletedCount  int           `json:"completedCount"`
	TotalEarnings   float64       `json:"totalEarnings"`
}

// ClientHome summarises a client's dashboard.
type ClientHome struct {
	Upcoming   []BookingView   `json:"upcoming"`
	Therapists []PublicProfile `json:"therapists"`
}
