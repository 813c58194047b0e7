package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
)

// CreateBooking admits a booking request. Checks run in order and the first
// failure is returned. The final insert is the only write; the store rejects
// it when the time range is already held for that date.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.BookingRequest) (*models.Booking, error) {
	booking, err := s.admit(ctx, actor, req)
	s.Metrics.ObserveAdmission(outcomeLabel(err, "created"))
	return booking, err
}

func (s *DefaultBookingService) admit(ctx context.Context, actor models.Actor, req models.BookingRequest) (*models.Booking, error) {
	if !actor.Can(models.CanRequestBooking) {
		return nil, fmt.Errorf("only clients can request bookings: %w", utils.ErrForbidden)
	}
	// A token can outlive its account; a deleted client must not hold slots.
	if _, err := s.Users.GetByID(ctx, actor.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, fmt.Errorf("account %s no longer exists: %w", actor.ID, utils.ErrUnauthorized)
		}
		return nil, err
	}

	req.TherapistID = strings.TrimSpace(req.TherapistID)
	req.TimeID = strings.TrimSpace(req.TimeID)
	req.Date = strings.TrimSpace(req.Date)
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	req.ForKid = strings.TrimSpace(req.ForKid)
	if req.TherapistID == "" || req.TimeID == "" || req.Date == "" || req.ServiceType == "" {
		return nil, utils.Validationf("therapistId, timeId, date and serviceType are required")
	}
	d, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, utils.Validationf("%v", err)
	}
	date := d.Format(models.DateLayout)
	if date < s.today() {
		return nil, utils.Validationf("date %s is in the past", date)
	}

	if _, err := s.therapist(ctx, req.TherapistID); err != nil {
		return nil, err
	}

	entry, err := s.Availability.FindByTimeID(ctx, req.TherapistID, req.TimeID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, fmt.Errorf("time %s is not offered by therapist %s: %w", req.TimeID, req.TherapistID, utils.ErrInvalidSlot)
		}
		return nil, err
	}
	if day := models.WeekdayOf(d); entry.Day != day {
		return nil, fmt.Errorf("time %s is offered on %s, not on %s: %w", req.TimeID, entry.Day, day, utils.ErrInvalidSlot)
	}

	if req.ForKid != "" {
		kid, err := s.Kids.GetByID(ctx, req.ForKid)
		if err != nil {
			return nil, err
		}
		if kid.User != actor.ID {
			return nil, fmt.Errorf("kid %s: %w", req.ForKid, utils.ErrNotFound)
		}
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		TherapistID: req.TherapistID,
		BookedBy:    actor.ID,
		SlotID:      entry.ID,
		TimeID:      req.TimeID,
		Date:        date,
		ServiceType: req.ServiceType,
		ForKid:      req.ForKid,
		Status:      models.StatusPending,
		IsPaid:      false,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
