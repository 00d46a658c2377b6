// Package schedule generates the fixed time grid the booking calendar is
// built on: half-hour slot labels for a day and the dates of a displayed
// week.  All times are naive local wall-clock; the package never deals
// with time zones.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical date form used across the system, both in
// the store and on the wire.
const DateLayout = "2006-01-02"

// slotLayout is the half-hour label form.  Labels are zero-padded 24-hour
// strings, so lexicographic order equals chronological order.
const slotLayout = "15:04"

const (
	openingSlot = "08:00"
	closingSlot = "22:00"
	slotStep    = 30 * time.Minute
)

// MaxWeekOffset bounds how far ahead the calendar may be paged.  Offsets
// outside [0, MaxWeekOffset] are a caller-level validation concern; the
// handler substitutes 0 and emits a warning.
const MaxWeekOffset = 16

// ErrUnknownSlot reports a time label that is not part of the slot grid.
var ErrUnknownSlot = errors.New("unknown time slot")

// ErrInvalidRange reports a slot range whose start is not strictly
// earlier than its end.
var ErrInvalidRange = errors.New("start must be earlier than end")

// TimeSlots returns the ordered half-hour labels from 08:00 through
// 22:00 inclusive (29 labels).  The slice is rebuilt on every call;
// callers may mutate it freely.
func TimeSlots() []string {
	open, _ := time.Parse(slotLayout, openingSlot)
	last, _ := time.Parse(slotLayout, closingSlot)
	var slots []string
	for t := open; !t.After(last); t = t.Add(slotStep) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots
}

// IsSlot reports whether label is a member of the slot grid.
func IsSlot(label string) bool {
	t, err := time.Parse(slotLayout, label)
	if err != nil || t.Format(slotLayout) != label {
		return false
	}
	if label < openingSlot || label > closingSlot {
		return false
	}
	return t.Minute() == 0 || t.Minute() == 30
}

// ExpandRange expands [start, end] into the ordered list of slot labels
// it covers, inclusive of both endpoints, so a one-hour meeting spans
// three labels.  Both endpoints must be members of the slot grid and
// start must be strictly earlier than end.
func ExpandRange(start, end string) ([]string, error) {
	if !IsSlot(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, start)
	}
	if !IsSlot(end) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, end)
	}
	if start >= end {
		return nil, ErrInvalidRange
	}
	from, _ := time.Parse(slotLayout, start)
	to, _ := time.Parse(slotLayout, end)
	var slots []string
	for t := from; !t.After(to); t = t.Add(slotStep) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots, nil
}

// WeekDates returns the 7 consecutive dates starting at today plus
// weekOffset weeks, each truncated to local midnight.
func WeekDates(weekOffset int) []time.Time {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, 7*weekOffset)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}
