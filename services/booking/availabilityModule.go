package booking

import (
	"context"
	"errors"
	"fmt"

	"doctospeech/models"
	"doctospeech/utils"
)

// ResolveAvailability returns the therapist's time ranges for the weekday of
// date that no Pending or Accepted booking holds on that date. It never writes.
func (s *DefaultBookingService) ResolveAvailability(ctx context.Context, therapistID, date string) (*models.FreeSlots, error) {
	d, err := models.ParseDate(date)
	if err != nil {
		return nil, utils.Validationf("%v", err)
	}
	if _, err := s.therapist(ctx, therapistID); err != nil {
		return nil, err
	}

	result := &models.FreeSlots{
		Date:      d.Format(models.DateLayout),
		Day:       models.WeekdayOf(d),
		FreeTimes: []models.TimeRange{},
	}

	entry, err := s.Availability.GetByDay(ctx, therapistID, result.Day)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return result, nil
		}
		return nil, err
	}
	result.SlotID = entry.ID

	held, err := s.Bookings.ListActiveTimeIDs(ctx, therapistID, result.Date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(held))
	for _, id := range held {
		taken[id] = struct{}{}
	}

	for _, tr := range entry.Times {
		if _, ok := taken[tr.ID]; !ok {
			result.FreeTimes = append(result.FreeTimes, tr)
		}
	}
	return result, nil
}

// therapist loads a user and requires the therapist role.
func (s *DefaultBookingService) therapist(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsTherapist() {
		return nil, fmt.Errorf("therapist %s: %w", id, utils.ErrNotFound)
	}
	return user, nil
}
