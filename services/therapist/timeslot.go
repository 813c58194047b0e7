// File: services/therapist/timeslot.go
package therapist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/google/uuid"
)

type clockRange struct {
	start, end int
}

func (r clockRange) key() string {
	return formatClock(r.start) + "-" + formatClock(r.end)
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ReplaceWeeklySchedule stores the submitted week as the therapist's whole
// schedule. Days left out are removed. A range whose start and end already
// existed on that day keeps its id, so bookings pointing at it stay valid.
func (s *DefaultTherapistService) ReplaceWeeklySchedule(ctx context.Context, actor models.Actor, days []models.DayScheduleInput) ([]models.AvailabilityEntry, error) {
	if !actor.Can(models.CanConfigureAvailability) {
		return nil, fmt.Errorf("only therapists can configure availability: %w", utils.ErrForbidden)
	}

	// 1. Validate the whole submission before writing anything
	submitted := make(map[models.Weekday][]clockRange, len(days))
	for _, in := range days {
		day, ok := models.ParseWeekday(strings.TrimSpace(in.Day))
		if !ok {
			return nil, utils.Validationf("unknown day %q", in.Day)
		}
		if _, dup := submitted[day]; dup {
			return nil, utils.Validationf("day %s submitted more than once", day)
		}
		ranges, err := parseRanges(day, in.Times)
		if err != nil {
			return nil, err
		}
		submitted[day] = ranges
	}

	existing, err := s.Availability.ListByTherapist(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	byDay := make(map[models.Weekday]models.AvailabilityEntry, len(existing))
	for _, e := range existing {
		byDay[e.Day] = e
	}

	// 2. Upsert every non-empty day, reusing ids of unchanged ranges
	keep := make([]models.Weekday, 0, len(submitted))
	for _, day := range models.WeekOrder {
		ranges := submitted[day]
		if len(ranges) == 0 {
			continue
		}

		prev, hadDay := byDay[day]
		entry := &models.AvailabilityEntry{
			ID:          prev.ID,
			TherapistID: actor.ID,
			Day:         day,
			CreatedAt:   prev.CreatedAt,
		}
		if !hadDay {
			entry.ID = uuid.New().String()
		}

		known := make(map[string]string, len(prev.Times))
		for _, tr := range prev.Times {
			known[tr.StartTime+"-"+tr.EndTime] = tr.ID
		}
		for _, r := range ranges {
			id, ok := known[r.key()]
			if !ok {
				id = uuid.New().String()
			}
			entry.Times = append(entry.Times, models.TimeRange{ID: id, StartTime: formatClock(r.start), EndTime: formatClock(r.end)})
		}

		if err := s.Availability.Upsert(ctx, entry); err != nil {
			return nil, err
		}
		keep = append(keep, day)
	}

	// 3. Drop days that are no longer offered
	if err := s.Availability.DeleteDaysExcept(ctx, actor.ID, keep); err != nil {
		return nil, err
	}
	if err := s.Users.SetSelectSlots(ctx, actor.ID, len(keep) > 0); err != nil {
		return nil, err
	}
	return s.GetWeeklySchedule(ctx, actor.ID)
}

// parseRanges validates HH:MM ranges and returns them sorted by start.
func parseRanges(day models.Weekday, times []models.TimeRangeInput) ([]clockRange, error) {
	ranges := make([]clockRange, 0, len(times))
	for _, t := range times {
		start, err := models.ParseClock(strings.TrimSpace(t.StartTime))
		if err != nil {
			return nil, utils.Validationf("%s: %v", day, err)
		}
		end, err := models.ParseClock(strings.TrimSpace(t.EndTime))
		if err != nil {
			return nil, utils.Validationf("%s: %v", day, err)
		}
		if start >= end {
			return nil, utils.Validationf("%s: start %s must be before end %s", day, t.StartTime, t.EndTime)
		}
		ranges = append(ranges, clockRange{start: start, end: end})
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })
	for i := 1; i < len(ranges); i++ {
		if ranges[i].start < ranges[i-1].end {
			return nil, utils.Validationf("%s: %s overlaps %s", day, ranges[i].key(), ranges[i-1].key())
		}
	}
	return ranges, nil
}

// GetWeeklySchedule returns the therapist's entries ordered Mon..Sun.
func (s *DefaultTherapistService) GetWeeklySchedule(ctx context.Context, therapistID string) ([]models.AvailabilityEntry, error) {
	entries, err := s.Availability.ListByTherapist(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	order := make(map[models.Weekday]int, len(models.WeekOrder))
	for i, d := range models.WeekOrder {
		order[d] = i
	}
	sort.Slice(entries, func(i, j int) bool { return order[entries[i].Day] < order[entries[j].Day] })
	return entries, nil
}
