package service

import (
	"context"
	"time"

	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/schedule"
)

// CalendarGrid maps room id -> date -> slot label to the occupying slot
// row, or nil when the cell is free. Every cell of the displayed window
// is present, so templates and clients can iterate it densely.
type CalendarGrid map[int64]map[string]map[string]*model.Booking

// CalendarView is the full payload for one week of the booking
// calendar.
type CalendarView struct {
	WeekOffset int          `json:"week_offset"`
	Rooms      []model.Room `json:"rooms"`
	Dates      []string     `json:"dates"`
	TimeSlots  []string     `json:"time_slots"`
	Grid       CalendarGrid `json:"grid"`
}

type cellKey struct {
	roomID int64
	date   string
	slot   string
}

// BuildGrid cross-joins rooms, dates and slot labels into a dense grid
// and overlays the given slot rows by exact (room, date, slot) match.
// Rows are indexed up front so each cell is an O(1) lookup. The
// function is pure: identical inputs produce identical grids.
func BuildGrid(rooms []model.Room, dates []time.Time, slots []string, bookings []model.Booking) CalendarGrid {
	index := make(map[cellKey]*model.Booking, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		index[cellKey{roomID: b.RoomID, date: b.Date, slot: b.TimeSlot}] = b
	}
	grid := make(CalendarGrid, len(rooms))
	for _, room := range rooms {
		grid[room.ID] = make(map[string]map[string]*model.Booking, len(dates))
		for _, date := range dates {
			ds := date.Format(schedule.DateLayout)
			cells := make(map[string]*model.Booking, len(slots))
			for _, slot := range slots {
				cells[slot] = index[cellKey{roomID: room.ID, date: ds, slot: slot}]
			}
			grid[room.ID][ds] = cells
		}
	}
	return grid
}

// Calendar assembles the view for the week at weekOffset: rooms, the 7
// dates, the 29 slot labels and the occupancy grid. Only the displayed
// date window is loaded from the store. The grid is recomputed in full
// on every call; nothing is cached between requests. The caller is
// responsible for keeping weekOffset within [0, schedule.MaxWeekOffset].
func (s *BookingService) Calendar(ctx context.Context, weekOffset int) (*CalendarView, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	dates := schedule.WeekDates(weekOffset)
	slots := schedule.TimeSlots()
	from := dates[0].Format(schedule.DateLayout)
	to := dates[len(dates)-1].Format(schedule.DateLayout)
	bookings, err := s.bookings.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	view := &CalendarView{
		WeekOffset: weekOffset,
		Rooms:      rooms,
		TimeSlots:  slots,
		Grid:       BuildGrid(rooms, dates, slots, bookings),
	}
	view.Dates = make([]string, len(dates))
	for i, d := range dates {
		view.Dates[i] = d.Format(schedule.DateLayout)
	}
	return view, nil
}
