package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/schedule"
	"github.com/iliyamo/meeting-room-booking/internal/utils"
)

// BookingStore is the durable table of slot rows the engine runs
// against. CreateGroup must be all-or-nothing: either every row of the
// group is inserted or none is, and a slot held by another group must
// surface as a repository.SlotTakenError.
type BookingStore interface {
	CreateGroup(ctx context.Context, rows []model.Booking) error
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	DeleteGroup(ctx context.Context, groupID string) (int64, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	ListBetween(ctx context.Context, from, to string) ([]model.Booking, error)
	Summaries(ctx context.Context, since string) ([]model.BookingSummary, error)
}

// RoomStore provides the static room reference data.
type RoomStore interface {
	List(ctx context.Context) ([]model.Room, error)
}

// recentWindow is how far back the default reporting query reaches.
const recentWindow = 30 * 24 * time.Hour

// BookingService holds the engine's configuration and store handles.
// All state lives here rather than in package globals, so tests can
// construct an engine around a fake store.
type BookingService struct {
	bookings   BookingStore
	rooms      RoomStore
	bcryptCost int
}

// NewBookingService constructs a BookingService. Both stores must be
// non-nil.
func NewBookingService(bookings BookingStore, rooms RoomStore, bcryptCost int) *BookingService {
	if bookings == nil || rooms == nil {
		panic("nil store passed to NewBookingService")
	}
	return &BookingService{bookings: bookings, rooms: rooms, bcryptCost: bcryptCost}
}

// Book reserves the contiguous slot range [start, end] in a room on a
// date under a fresh group id. The range is expanded inclusively at
// half-hour granularity, every row carries the bcrypt hash of password,
// and the whole group commits atomically: one taken slot rolls back the
// lot and surfaces as a repository.SlotTakenError. Input problems are
// reported as *ValidationError before the store is touched.
func (s *BookingService) Book(ctx context.Context, roomID int64, date, start, end, userName, password string) ([]model.Booking, error) {
	if roomID <= 0 {
		return nil, validationErr("invalid room id")
	}
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return nil, validationErr(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}
	if strings.TrimSpace(userName) == "" {
		return nil, validationErr("user name is required")
	}
	if password == "" {
		return nil, validationErr("password is required")
	}
	slots, err := schedule.ExpandRange(start, end)
	if err != nil {
		return nil, validationErr(err.Error())
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	groupID := uuid.NewString()
	rows := make([]model.Booking, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, model.Booking{
			RoomID:       roomID,
			Date:         date,
			TimeSlot:     slot,
			UserName:     userName,
			PasswordHash: hash,
			GroupID:      groupID,
		})
	}
	if err := s.bookings.CreateGroup(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Cancel removes a whole booking group after verifying the secret
// against any one of its rows. Which slot id was used to authenticate
// does not matter: a match deletes every row sharing that row's group
// id. On success it returns the authenticated row and how many rows
// were removed. Returns repository.ErrBookingNotFound when the id
// matches no row and ErrWrongPassword on a hash mismatch; in both cases
// nothing is deleted.
func (s *BookingService) Cancel(ctx context.Context, bookingID int64, password string) (*model.Booking, int64, error) {
	row, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, 0, err
	}
	if !utils.VerifyPassword(row.PasswordHash, password) {
		return nil, 0, ErrWrongPassword
	}
	removed, err := s.bookings.DeleteGroup(ctx, row.GroupID)
	if err != nil {
		return nil, 0, err
	}
	return row, removed, nil
}

// Rooms returns the static room list.
func (s *BookingService) Rooms(ctx context.Context) ([]model.Room, error) {
	return s.rooms.List(ctx)
}

// Bookings returns every stored slot row.
func (s *BookingService) Bookings(ctx context.Context) ([]model.Booking, error) {
	return s.bookings.ListAll(ctx)
}

// Recent returns one summary per booking group with date >= since,
// ordered by date and start time. An empty since defaults to 30 days
// back.
func (s *BookingService) Recent(ctx context.Context, since string) ([]model.BookingSummary, error) {
	if since == "" {
		since = time.Now().Add(-recentWindow).Format(schedule.DateLayout)
	} else if _, err := time.Parse(schedule.DateLayout, since); err != nil {
		return nil, validationErr(fmt.Sprintf("invalid since date %q, want YYYY-MM-DD", since))
	}
	return s.bookings.Summaries(ctx, since)
}
