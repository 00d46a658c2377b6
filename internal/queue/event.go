// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking group commits. It
// carries enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	GroupID   string   `json:"group_id"`
	RoomID    int64    `json:"room_id"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Slots     []string `json:"slots"`
	UserName  string   `json:"user_name"`
	CreatedAt string   `json:"created_at"`
}

// BookingCancelledEvent is published after a booking group is deleted.
// BookingID is the slot row the caller authenticated against; the whole
// group identified by GroupID was removed.
type BookingCancelledEvent struct {
	GroupID      string `json:"group_id"`
	BookingID    int64  `json:"booking_id"`
	RoomID       int64  `json:"room_id"`
	Date         string `json:"date"`
	UserName     string `json:"user_name"`
	SlotsRemoved int64  `json:"slots_removed"`
	CancelledAt  string `json:"cancelled_at"`
}
