package booking

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDate      = errors.New("date cannot be empty")
	ErrEmptyStartTime = errors.New("start time cannot be empty")
	ErrEmptyEndTime   = errors.New("end time cannot be empty")
)

// TimeSlot is a date plus a [start, end) time-of-day range. Dates compare by
// equality and times compare as ordered strings, so callers are expected to
// send zero-padded values such as "2024-01-01" and "09:00".
type TimeSlot struct {
	date  string
	start string
	end   string
}

// NewTimeSlot only checks presence. Start is not required to precede end.
func NewTimeSlot(date, start, end string) (TimeSlot, error) {
	if date == "" {
		return TimeSlot{}, ErrEmptyDate
	}
	if start == "" {
		return TimeSlot{}, ErrEmptyStartTime
	}
	if end == "" {
		return TimeSlot{}, ErrEmptyEndTime
	}
	return TimeSlot{date: date, start: start, end: end}, nil
}

func (ts TimeSlot) Date() string  { return ts.date }
func (ts TimeSlot) Start() string { return ts.start }
func (ts TimeSlot) End() string   { return ts.end }

func (ts TimeSlot) SameDate(other TimeSlot) bool {
	return ts.date == other.date
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s [%s,%s)", ts.date, ts.start, ts.end)
}
