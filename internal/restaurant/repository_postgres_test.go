package restaurant

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"likeat/internal/core"
	"likeat/internal/db"
)

// connectPostgres runs only against a real database.
func connectPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	pool, err := db.ConnectPostgres(context.Background(), dsn, log)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func insertPostgresClient(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	ctx := context.Background()

	id := uuid.NewString()
	if _, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		id, name, id+"@likeat.test",
	); err != nil {
		t.Fatalf("insert client: %v", err)
	}

	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM restaurants WHERE client_id = $1`, id)
		pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	})
	return id
}

func insertPostgresRestaurant(t *testing.T, pool *pgxpool.Pool, r Restaurant) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `
		INSERT INTO restaurants (client_id, name, location, cost, overall_rating, total_reviews, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ClientID, r.Name, r.Location, r.Cost, r.OverallRating, r.TotalReviews, string(r.Status),
	); err != nil {
		t.Fatalf("insert restaurant: %v", err)
	}
}

func TestPostgresRepository_FindByClient(t *testing.T) {
	pool := connectPostgres(t)
	owner := insertPostgresClient(t, pool, "Maria")
	other := insertPostgresClient(t, pool, "Nikos")

	insertPostgresRestaurant(t, pool, Restaurant{
		ClientID: owner, Name: "Cafe Sol", Location: "Athens", Cost: 25,
		OverallRating: 4.2, TotalReviews: 10, Status: StatusApproved,
	})
	insertPostgresRestaurant(t, pool, Restaurant{ClientID: owner, Name: "Taverna Luna", Status: StatusPending})
	insertPostgresRestaurant(t, pool, Restaurant{ClientID: other, Name: "Pasta House", Status: StatusApproved})

	repo := NewPostgresRepository(pool)

	restaurants, err := repo.FindByClient(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(restaurants))
	}
	for _, r := range restaurants {
		if r.ClientID != owner {
			t.Errorf("restaurant %q belongs to %s", r.Name, r.ClientID)
		}
		if r.CreatedAt.IsZero() {
			t.Errorf("restaurant %q has no creation time", r.Name)
		}
		if r.Name == "Cafe Sol" && (r.Cost != 25 || r.OverallRating != 4.2 || r.TotalReviews != 10) {
			t.Errorf("scalars not read back: %+v", r)
		}
	}
}

func TestPostgresRepository_FindByClient_Unknown(t *testing.T) {
	repo := NewPostgresRepository(connectPostgres(t))

	restaurants, err := repo.FindByClient(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restaurants == nil || len(restaurants) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", restaurants)
	}
}

func TestPostgresRepository_FindByStatus(t *testing.T) {
	pool := connectPostgres(t)
	owner := insertPostgresClient(t, pool, "Maria")

	insertPostgresRestaurant(t, pool, Restaurant{ClientID: owner, Name: "A", Status: StatusApproved})
	insertPostgresRestaurant(t, pool, Restaurant{ClientID: owner, Name: "B", Status: StatusPending})
	insertPostgresRestaurant(t, pool, Restaurant{ClientID: owner, Name: "C", Status: StatusRejected})

	repo := NewPostgresRepository(pool)

	for _, status := range statuses {
		restaurants, err := repo.FindByStatus(context.Background(), status)
		if err != nil {
			t.Fatalf("FindByStatus(%s): %v", status, err)
		}

		var mine int
		for _, r := range restaurants {
			if r.Status != status {
				t.Errorf("FindByStatus(%s) returned %q with status %s", status, r.Name, r.Status)
			}
			if r.ClientID == owner {
				mine++
			}
		}
		if mine != 1 {
			t.Errorf("FindByStatus(%s): expected 1 seeded restaurant, got %d", status, mine)
		}
	}

	if _, err := repo.FindByStatus(context.Background(), Status("closed")); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unknown status, got %v", err)
	}
}

func TestPostgresRepository_StoreUnavailable(t *testing.T) {
	pool := connectPostgres(t)
	repo := NewPostgresRepository(pool)
	pool.Close()

	if _, err := repo.FindByStatus(context.Background(), StatusApproved); !errors.Is(err, core.ErrStoreUnavailable) {
		t.Errorf("FindByStatus: expected ErrStoreUnavailable on closed pool, got %v", err)
	}
	if _, err := repo.FindByClient(context.Background(), uuid.NewString()); !errors.Is(err, core.ErrStoreUnavailable) {
		t.Errorf("FindByClient: expected ErrStoreUnavailable on closed pool, got %v", err)
	}
}
