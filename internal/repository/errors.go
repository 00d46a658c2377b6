// Package repository defines error values shared across the data access
// layer. These sentinels and types let handlers distinguish failure
// scenarios without inspecting SQL errors themselves: a slot conflict
// maps to HTTP 409, a missing booking to 404.
package repository

import (
	"errors"
	"fmt"
)

// ErrBookingNotFound is returned when a booking row lookup by id matches
// nothing. Handlers should translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSlotTaken is the sentinel wrapped by SlotTakenError. Use
// errors.Is(err, ErrSlotTaken) when the conflicting slot itself is not
// needed.
var ErrSlotTaken = errors.New("slot already booked")

// SlotTakenError reports that a requested slot is already held by an
// existing booking. The whole group insert is rolled back when it
// occurs, so no partial rows remain. Handlers should translate this
// into an HTTP 409 response naming the slot.
type SlotTakenError struct {
	RoomID   int64
	Date     string
	TimeSlot string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("room %d: slot %s on %s already booked", e.RoomID, e.TimeSlot, e.Date)
}

// Unwrap makes errors.Is(err, ErrSlotTaken) hold for SlotTakenError.
func (e *SlotTakenError) Unwrap() error { return ErrSlotTaken }
