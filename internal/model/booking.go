package model

// Booking is a single reserved half-hour slot.  One booking request
// produces one row per covered slot; the rows share a GroupID and are
// created and deleted together.  At most one row may exist for a given
// (room_id, date, time_slot) triple – this exclusivity is enforced by a
// unique key in the store.
//
// Fields:
//  ID           – primary key identifier.
//  RoomID       – room in which the slot is reserved.
//  Date         – calendar date in "2006-01-02" form (naive local time).
//  TimeSlot     – half-hour label in "HH:MM" form, 08:00 through 22:00.
//  UserName     – name the booking was made under.
//  PasswordHash – bcrypt hash of the shared cancellation secret.
//  GroupID      – UUID shared by every row of one booking request.
type Booking struct {
	ID           int64  `json:"id"`        // bookings.id
	RoomID       int64  `json:"room_id"`   // bookings.room_id
	Date         string `json:"date"`      // bookings.date
	TimeSlot     string `json:"time_slot"` // bookings.time_slot
	UserName     string `json:"user_name"` // bookings.user_name
	PasswordHash string `json:"-"`         // bookings.password_hash, never serialized
	GroupID      string `json:"group_id"`  // bookings.group_id
}

// BookingSummary is the derived, user-facing view of one booking group:
// the slot rows collapsed to a single row spanning min(time_slot) to
// max(time_slot).  It is produced by the reporting query and never
// stored.  StartTime/EndTime compare correctly as strings because all
// slot labels share the zero-padded 24-hour "HH:MM" form.
type BookingSummary struct {
	RoomID    int64  `json:"room_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UserName  string `json:"user_name"`
	GroupID   string `json:"group_id"`
}
