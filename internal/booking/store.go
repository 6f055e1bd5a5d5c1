package booking

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// Схема хранилища повторяет модель исходного сервиса бронирования:
// тип комнаты (с флагом одобрения), комнаты, столы и сами брони.
const migration = `
CREATE TABLE IF NOT EXISTS type (
    type_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    type_name TEXT NOT NULL UNIQUE,
    approval  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS room (
    room_id  INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL UNIQUE,
    capacity INTEGER NOT NULL DEFAULT 4,
    type_id  INTEGER REFERENCES type(type_id)
);

CREATE TABLE IF NOT EXISTS desk (
    desk_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    position_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS booking (
    booking_id TEXT PRIMARY KEY,
    user_id    TEXT,
    desk_id    INTEGER REFERENCES desk(desk_id),
    room_id    INTEGER REFERENCES room(room_id),
    start_time TEXT NOT NULL,
    end_time   TEXT NOT NULL,
    pending    INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_booking_room ON booking(room_id, start_time);
CREATE INDEX IF NOT EXISTS idx_booking_desk ON booking(desk_id, start_time);
`

// OpenStore открывает sqlite по указанному пути и прогоняет миграцию.
func OpenStore(ctx context.Context, dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// Один писатель: sqlite не любит конкурентные записи.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, migration); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}
