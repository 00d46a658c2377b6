package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// InitSchema creates the rooms and bookings tables when missing. The
// unique key over (room_id, date, time_slot) is what makes slot
// exclusivity store-enforced: a booking losing a race gets a
// duplicate-key rejection instead of silently double-booking.
func InitSchema(ctx context.Context, db *sql.DB) error {
	const rooms = `
		CREATE TABLE IF NOT EXISTS rooms (
			id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name VARCHAR(100) NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	const bookings = `
		CREATE TABLE IF NOT EXISTS bookings (
			id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			room_id       BIGINT UNSIGNED NOT NULL,
			date          DATE NOT NULL,
			time_slot     CHAR(5) NOT NULL,
			user_name     VARCHAR(100) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			group_id      CHAR(36) NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_room_date_slot (room_id, date, time_slot),
			KEY idx_group (group_id),
			KEY idx_date (date),
			CONSTRAINT fk_bookings_room FOREIGN KEY (room_id) REFERENCES rooms (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	if _, err := db.ExecContext(ctx, rooms); err != nil {
		return fmt.Errorf("create rooms table: %w", err)
	}
	if _, err := db.ExecContext(ctx, bookings); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}
