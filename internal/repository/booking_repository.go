package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/meeting-room-booking/internal/model"
)

// erDupEntry is MySQL's duplicate-key error code. The unique key over
// (room_id, date, time_slot) turns a lost booking race into this
// rejection instead of an application-level check racing with inserts.
const erDupEntry = 1062

// BookingRepo provides data access to the bookings table. One booking
// request owns several rows (one per half-hour slot) sharing a group_id;
// the repo creates and deletes them as a unit.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// CreateGroup inserts every row of one booking group inside a single
// transaction. Rows are inserted in slot order; the first slot already
// held by another booking aborts the transaction, rolls back earlier
// rows and returns a SlotTakenError naming it. On success the generated
// ids are written back into rows.
func (r *BookingRepo) CreateGroup(ctx context.Context, rows []model.Booking) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	const q = `INSERT INTO bookings (room_id, date, time_slot, user_name, password_hash, group_id)
	           VALUES (?, ?, ?, ?, ?, ?)`
	for i := range rows {
		b := &rows[i]
		res, err := tx.ExecContext(ctx, q, b.RoomID, b.Date, b.TimeSlot, b.UserName, b.PasswordHash, b.GroupID)
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == erDupEntry {
				return &SlotTakenError{RoomID: b.RoomID, Date: b.Date, TimeSlot: b.TimeSlot}
			}
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		b.ID = id
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID returns the single slot row with the given id, or
// ErrBookingNotFound when it does not exist.
func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	const q = `SELECT id, room_id, DATE_FORMAT(date, '%Y-%m-%d'), time_slot, user_name, password_hash, group_id
	           FROM bookings WHERE id = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.RoomID, &b.Date, &b.TimeSlot, &b.UserName, &b.PasswordHash, &b.GroupID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// DeleteGroup removes every row sharing the given group_id and returns
// how many rows were deleted. Deleting an unknown group is not an
// error; it removes zero rows.
func (r *BookingRepo) DeleteGroup(ctx context.Context, groupID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE group_id = ?`, groupID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListAll returns every slot row ordered by date and slot.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	const q = `SELECT id, room_id, DATE_FORMAT(date, '%Y-%m-%d'), time_slot, user_name, password_hash, group_id
	           FROM bookings ORDER BY date, time_slot, room_id`
	return r.queryBookings(ctx, q)
}

// ListBetween returns the slot rows whose date lies in [from, to]
// inclusive. The calendar view builder uses this to load only the
// displayed week.
func (r *BookingRepo) ListBetween(ctx context.Context, from, to string) ([]model.Booking, error) {
	const q = `SELECT id, room_id, DATE_FORMAT(date, '%Y-%m-%d'), time_slot, user_name, password_hash, group_id
	           FROM bookings WHERE date >= ? AND date <= ? ORDER BY date, time_slot, room_id`
	return r.queryBookings(ctx, q, from, to)
}

func (r *BookingRepo) queryBookings(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.RoomID, &b.Date, &b.TimeSlot, &b.UserName, &b.PasswordHash, &b.GroupID); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Summaries collapses the slot rows with date >= since into one row per
// booking group, spanning min(time_slot) to max(time_slot). Relies on
// slot labels sorting lexicographically in chronological order, which
// holds for the zero-padded "HH:MM" form. Ordered by (date, start).
func (r *BookingRepo) Summaries(ctx context.Context, since string) ([]model.BookingSummary, error) {
	const q = `SELECT room_id, DATE_FORMAT(date, '%Y-%m-%d') AS d,
	                  MIN(time_slot) AS start_time, MAX(time_slot) AS end_time,
	                  user_name, group_id
	           FROM bookings
	           WHERE date >= ?
	           GROUP BY group_id, room_id, d, user_name
	           ORDER BY d, start_time`
	rows, err := r.db.QueryContext(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var summaries []model.BookingSummary
	for rows.Next() {
		var s model.BookingSummary
		if err := rows.Scan(&s.RoomID, &s.Date, &s.StartTime, &s.EndTime, &s.UserName, &s.GroupID); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
