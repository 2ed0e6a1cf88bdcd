package client

import (
	"context"
	"database/sql"
	"errors"

	"likeat/internal/core"
)

type SQLiteDirectory struct {
	db *sql.DB
}

func NewSQLiteDirectory(db *sql.DB) *SQLiteDirectory {
	return &SQLiteDirectory{db: db}
}

func (r *SQLiteDirectory) FindByID(ctx context.Context, id string) (*Client, error) {
	c := &Client{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, surname, email, role
		FROM users
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Role)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, core.Unavailable("find client", err)
	}
	return c, nil
}
