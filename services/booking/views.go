package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"doctospeech/models"
	"doctospeech/utils"
)

// Views are rebuilt from the stored bookings on every read.

func (s *DefaultBookingService) ListMyBookings(ctx context.Context, actor models.Actor, filter models.BookingFilter) ([]models.BookingView, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, utils.Validationf("unknown status %q", filter.Status)
	}
	for _, d := range []string{filter.From, filter.To} {
		if d == "" {
			continue
		}
		if _, err := models.ParseDate(d); err != nil {
			return nil, utils.Validationf("%v", err)
		}
	}

	var (
		bookings []models.Booking
		err      error
	)
	if actor.IsTherapist() {
		bookings, err = s.Bookings.ListByTherapist(ctx, actor.ID, filter)
	} else {
		bookings, err = s.Bookings.ListByClient(ctx, actor.ID, filter)
	}
	if err != nil {
		return nil, err
	}
	return s.joinViews(ctx, actor, bookings)
}

func (s *DefaultBookingService) GetBookingDetail(ctx context.Context, actor models.Actor, bookingID string) (*models.BookingView, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParty(actor.ID) {
		return nil, errNotParty(bookingID)
	}
	views, err := s.joinViews(ctx, actor, []models.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *DefaultBookingService) ListTransactions(ctx context.Context, actor models.Actor) ([]models.Transaction, error) {
	if actor.IsTherapist() {
		return s.Transactions.ListByReceiver(ctx, actor.ID)
	}
	return s.Transactions.ListByPayer(ctx, actor.ID)
}

func (s *DefaultBookingService) TherapistEarnings(ctx context.Context, actor models.Actor) (*models.Earnings, error) {
	if !actor.IsTherapist() {
		return nil, fmt.Errorf("earnings are only available to therapists: %w", utils.ErrForbidden)
	}
	total, count, err := s.Transactions.SumByReceiver(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	txs, err := s.Transactions.ListByReceiver(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &models.Earnings{TotalAmount: total, Count: count, Transactions: txs}, nil
}

func (s *DefaultBookingService) TherapistHome(ctx context.Context, actor models.Actor) (*models.TherapistHome, error) {
	if !actor.IsTherapist() {
		return nil, fmt.Errorf("therapist dashboard: %w", utils.ErrForbidden)
	}
	today := s.today()

	pending, err := s.Bookings.ListByTherapist(ctx, actor.ID, models.BookingFilter{Status: models.StatusPending})
	if err != nil {
		return nil, err
	}
	todays, err := s.Bookings.ListByTherapist(ctx, actor.ID, models.BookingFilter{Status: models.StatusAccepted, From: today, To: today})
	if err != nil {
		return nil, err
	}
	counts, err := s.Bookings.CountByStatus(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	total, _, err := s.Transactions.SumByReceiver(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	home := &models.TherapistHome{
		PendingCount:   int(counts[models.StatusPending]),
		AcceptedCount:  int(counts[models.StatusAccepted]),
		CompletedCount: int(counts[models.StatusCompleted]),
		TotalEarnings:  total,
	}
	if home.PendingRequests, err = s.joinViews(ctx, actor, pending); err != nil {
		return nil, err
	}
	if home.TodaySessions, err = s.joinViews(ctx, actor, todays); err != nil {
		return nil, err
	}
	return home, nil
}

// ClientHome lists the client's upcoming sessions, soonest first, and a
// handful of therapists to browse.
func (s *DefaultBookingService) ClientHome(ctx context.Context, actor models.Actor) (*models.ClientHome, error) {
	all, err := s.Bookings.ListByClient(ctx, actor.ID, models.BookingFilter{From: s.today()})
	if err != nil {
		return nil, err
	}
	upcoming := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.Status.HoldsSlot() {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })

	home := &models.ClientHome{}
	if home.Upcoming, err = s.joinViews(ctx, actor, upcoming); err != nil {
		return nil, err
	}

	therapists, err := s.Users.FindTherapists(ctx, models.TherapistQuery{}, 10)
	if err != nil {
		return nil, err
	}
	home.Therapists = make([]models.PublicProfile, 0, len(therapists))
	for i := range therapists {
		home.Therapists = append(home.Therapists, therapists[i].Public())
	}
	return home, nil
}

// joinViews attaches the counterpart profile, the referenced time range and
// the kid to each booking. A time range removed from the schedule renders as nil.
func (s *DefaultBookingService) joinViews(ctx context.Context, actor models.Actor, bookings []models.Booking) ([]models.BookingView, error) {
	views := make([]models.BookingView, 0, len(bookings))
	if len(bookings) == 0 {
		return views, nil
	}

	counterpartOf := func(b *models.Booking) string {
		if b.TherapistID == actor.ID {
			return b.BookedBy
		}
		return b.TherapistID
	}

	ids := make([]string, 0, len(bookings))
	seen := make(map[string]struct{})
	for i := range bookings {
		id := counterpartOf(&bookings[i])
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	profiles := make(map[string]models.PublicProfile, len(users))
	for i := range users {
		profiles[users[i].ID] = users[i].Public()
	}

	schedules := make(map[string]map[string]models.TimeRange)
	kids := make(map[string]*models.Kid)

	for i := range bookings {
		b := bookings[i]
		view := models.BookingView{Booking: b}

		if p, ok := profiles[counterpartOf(&b)]; ok {
			view.Counterpart = &p
		}

		times, ok := schedules[b.TherapistID]
		if !ok {
			entries, err := s.Availability.ListByTherapist(ctx, b.TherapistID)
			if err != nil {
				return nil, err
			}
			times = make(map[string]models.TimeRange)
			for _, e := range entries {
				for _, tr := range e.Times {
					times[tr.ID] = tr
				}
			}
			schedules[b.TherapistID] = times
		}
		if tr, ok := times[b.TimeID]; ok {
			view.Time = &tr
		}

		if b.ForKid != "" {
			kid, ok := kids[b.ForKid]
			if !ok {
				kid, err = s.Kids.GetByID(ctx, b.ForKid)
				if err != nil && !errors.Is(err, utils.ErrNotFound) {
					return nil, err
				}
				kids[b.ForKid] = kid
			}
			view.Kid = kid
		}

		views = append(views, view)
	}
	return views, nil
}
