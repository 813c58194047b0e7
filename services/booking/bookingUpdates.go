package booking

import (
	"context"
	"fmt"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"
)

// RespondToBooking lets the booking's therapist accept or reject it. A
// rejection reason is stored together with the responder.
func (s *DefaultBookingService) RespondToBooking(ctx context.Context, actor models.Actor, bookingID string, action models.BookingStatus, reason string) (*models.Booking, error) {
	if !actor.Can(models.CanRespondToBooking) {
		return nil, fmt.Errorf("only therapists can respond to bookings: %w", utils.ErrForbidden)
	}
	if action != models.StatusAccepted && action != models.StatusRejected {
		return nil, utils.Validationf("action must be %s or %s", models.StatusAccepted, models.StatusRejected)
	}

	t := models.Transition{To: action}
	if reason = strings.TrimSpace(reason); action == models.StatusRejected && reason != "" {
		t.CancelReason = reason
		t.CancelBy = actor.ID
	}
	return s.transition(ctx, bookingID, t, func(b *models.Booking) bool {
		return b.TherapistID == actor.ID
	})
}

// TherapistCancelBooking rejects a booking and requires a reason.
func (s *DefaultBookingService) TherapistCancelBooking(ctx context.Context, actor models.Actor, bookingID, reason string) (*models.Booking, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, utils.Validationf("a cancellation reason is required")
	}
	return s.RespondToBooking(ctx, actor, bookingID, models.StatusRejected, reason)
}

// MarkCompleted closes an accepted booking. Either party may call it.
func (s *DefaultBookingService) MarkCompleted(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.Transition{To: models.StatusCompleted}, func(b *models.Booking) bool {
		return b.IsParty(actor.ID)
	})
}

func (s *DefaultBookingService) transition(ctx context.Context, bookingID string, t models.Transition, allowed func(*models.Booking) bool) (*models.Booking, error) {
	updated, err := s.applyTransition(ctx, bookingID, t, allowed)
	s.Metrics.ObserveTransition(string(t.To), outcomeLabel(err, "ok"))
	return updated, err
}

func (s *DefaultBookingService) applyTransition(ctx context.Context, bookingID string, t models.Transition, allowed func(*models.Booking) bool) (*models.Booking, error) {
	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !allowed(current) {
		return nil, errNotParty(bookingID)
	}
	if !current.Status.CanTransitionTo(t.To) {
		return nil, errIllegalTransition(current.Status, t.To)
	}
	t.From = current.Status
	return s.Bookings.Transition(ctx, bookingID, t)
}

// CancelBooking deletes the client's own booking while it still holds its
// slot, which frees the slot for new requests.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.Actor, bookingID string) error {
	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if current.BookedBy != actor.ID {
		return errNotParty(bookingID)
	}
	if !current.Status.HoldsSlot() {
		return fmt.Errorf("booking %s is %s: %w", bookingID, current.Status, utils.ErrInvalidTransition)
	}
	err = s.Bookings.DeleteActive(ctx, bookingID, actor.ID)
	s.Metrics.ObserveTransition("Cancelled", outcomeLabel(err, "ok"))
	return err
}
