package client

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"likeat/internal/core"
)

type PostgresDirectory struct {
	db *pgxpool.Pool
}

func NewPostgresDirectory(db *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (r *PostgresDirectory) FindByID(ctx context.Context, id string) (*Client, error) {
	c := &Client{}
	err := r.db.QueryRow(ctx, `
		SELECT id::text, name, surname, email, role
		FROM users
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, core.Unavailable("find client", err)
	}
	return c, nil
}
