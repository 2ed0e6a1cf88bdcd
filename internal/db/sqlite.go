package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens (or creates) a SQLite catalog database at path and applies
// the schema. Pass ":memory:" for a throwaway database.
func OpenSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A second connection to ":memory:" would see an empty database.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite connection failed: %w", err)
	}

	if _, err := conn.Exec(sqliteSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return conn, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	surname TEXT NOT NULL DEFAULT '',
	email TEXT UNIQUE NOT NULL,
	role TEXT NOT NULL DEFAULT 'CLIENT',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS restaurants (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id TEXT NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	style TEXT NOT NULL DEFAULT '',
	cuisine TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	cost INTEGER NOT NULL DEFAULT 0,
	overall_rating REAL NOT NULL DEFAULT 0,
	total_reviews INTEGER NOT NULL DEFAULT 0,
	information TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	opening_hours TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_restaurants_client ON restaurants (client_id);
CREATE INDEX IF NOT EXISTS idx_restaurants_status ON restaurants (status);

CREATE TABLE IF NOT EXISTS restaurant_photos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
	object_key TEXT NOT NULL,
	is_main BOOLEAN NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reviews (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
	author_id TEXT NOT NULL REFERENCES users(id),
	rating INTEGER NOT NULL,
	comment TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_reviews_restaurant ON reviews (restaurant_id);
`
