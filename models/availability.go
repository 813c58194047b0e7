package models

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Weekday is the short English day name used as the availability key.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// indexed by time.Weekday, so it never depends on the process locale
var weekdayNames = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekOrder is the display order of a weekly schedule.
var WeekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf returns the weekday name of a calendar date.
func WeekdayOf(t time.Time) Weekday {
	return weekdayNames[t.Weekday()]
}

// ParseWeekday validates a day name.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range weekdayNames {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be in YYYY-MM-DD format", s)
	}
	return t, nil
}

// ParseClock parses an HH:MM wall clock time and returns minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("time %q must be in HH:MM format", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// TimeRange is one bookable start/end pair within an availability entry.
type TimeRange struct {
	ID        string `bson:"id" json:"id"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// AvailabilityEntry holds a therapist's accepting hours for one weekday.
type AvailabilityEntry struct {
	ID          string      `bson:"id" json:"id"`
	TherapistID string      `bson:"therapistId" json:"therapistId"`
	Day         Weekday     `bson:"day" json:"day"`
	Times       []TimeRange `bson:"times" json:"times"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// FindTime looks up a time range by id.
func (e *AvailabilityEntry) FindTime(timeID string) (TimeRange, bool) {
	for _, tr := range e.Times {
		if tr.ID == timeID {
			return tr, true
		}
	}
	return TimeRange{}, false
}

// TimeRangeInput is a submitted range before ids are assigned.
type TimeRangeInput struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// DayScheduleInput is one day of a submitted weekly schedule.
type DayScheduleInput struct {
	Day   string           `json:"day" binding:"required"`
	Times []TimeRangeInput `json:"times"`
}

// FreeSlots is the result of resolving a therapist's availability on a date.
type FreeSlots struct {
	Date      string      `json:"date"`
	Day       Weekday     `json:"day"`
	SlotID    string      `json:"slotId,omitempty"`
	FreeTimes []TimeRange `json:"freeTimes"`
}
