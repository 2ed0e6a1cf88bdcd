package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"likeat/internal/db"
)

func TestDisplayName(t *testing.T) {
	cases := []struct {
		client *Client
		want   string
	}{
		{&Client{Name: "Maria", Surname: "Papadopoulou"}, "Maria Papadopoulou"},
		{&Client{Name: "Maria"}, "Maria"},
		{&Client{Surname: "Papadopoulou"}, "Papadopoulou"},
		{nil, ""},
	}

	for _, tc := range cases {
		if got := tc.client.DisplayName(); got != tc.want {
			t.Errorf("DisplayName() = %q, want %q", got, tc.want)
		}
	}
}

func TestInMemoryDirectory(t *testing.T) {
	dir := NewInMemoryDirectory()
	added := dir.Add(Client{Name: "Nikos", Role: RoleClient})

	if _, err := uuid.Parse(added.ID); err != nil {
		t.Fatalf("expected generated uuid, got %q", added.ID)
	}

	found, err := dir.FindByID(context.Background(), added.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Nikos" {
		t.Errorf("expected Nikos, got %s", found.Name)
	}

	if _, err := dir.FindByID(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteDirectory(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	id := uuid.NewString()
	if _, err := conn.Exec(
		`INSERT INTO users (id, name, surname, email, role) VALUES (?, ?, ?, ?, ?)`,
		id, "Eleni", "Georgiou", "eleni@likeat.test", RoleClient,
	); err != nil {
		t.Fatalf("seed: %v", err)
	}

	dir := NewSQLiteDirectory(conn)

	c, err := dir.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DisplayName() != "Eleni Georgiou" {
		t.Errorf("expected Eleni Georgiou, got %q", c.DisplayName())
	}

	if _, err := dir.FindByID(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
