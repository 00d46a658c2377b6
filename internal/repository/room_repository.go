package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/meeting-room-booking/internal/model"
)

// defaultRooms is seeded once when the rooms table is empty. The set is
// immutable afterwards within this system's scope.
var defaultRooms = []string{"Room 1", "Room 2", "Room 3"}

// RoomRepo provides read access to the rooms table plus the one-time
// seeding performed at startup.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// List returns all rooms ordered by id.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var rooms []model.Room
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

// SeedDefaults inserts the default rooms when the table is empty. It is
// safe to call on every startup.
func (r *RoomRepo) SeedDefaults(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultRooms {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO rooms (name) VALUES (?)`, name); err != nil {
			return err
		}
	}
	return nil
}
