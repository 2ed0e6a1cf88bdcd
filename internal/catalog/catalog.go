// Package catalog wires the restaurant read model to its configured stores.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"likeat/internal/client"
	"likeat/internal/config"
	"likeat/internal/db"
	"likeat/internal/photo"
	"likeat/internal/restaurant"
	"likeat/internal/review"
	"likeat/internal/storage"
)

// Catalog holds the assembled restaurant service and the connection it runs on.
type Catalog struct {
	Restaurants *restaurant.Service

	close func()
}

type stores struct {
	restaurants restaurant.Repository
	clients     client.Directory
	photos      photo.Repository
	reviews     review.Repository
}

// Open connects to the database selected by cfg.DBDriver and builds the
// restaurant service on top of it.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Catalog, error) {
	var (
		s       stores
		closeFn func()
	)

	// ───────────────────────── DB ─────────────────────────
	switch cfg.DBDriver {
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("using sqlite catalog")
		s = sqliteStores(conn)
		closeFn = func() { conn.Close() }
	default:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		s = postgresStores(pool)
		closeFn = pool.Close
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var urls photo.URLResolver
	if cfg.R2.Enabled() {
		r2, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			closeFn()
			return nil, fmt.Errorf("r2 init: %w", err)
		}
		urls = r2
	} else {
		log.Warn("R2 not configured, photo urls fall back to object keys")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	photos := photo.NewService(s.photos, urls)
	assembler := restaurant.NewAssembler(review.ToView, restaurant.DisplayLabel)

	return &Catalog{
		Restaurants: restaurant.NewService(s.restaurants, s.clients, photos, s.reviews, assembler, log),
		close:       closeFn,
	}, nil
}

func (c *Catalog) Close() {
	if c.close != nil {
		c.close()
	}
}

func postgresStores(pool *pgxpool.Pool) stores {
	return stores{
		restaurants: restaurant.NewPostgresRepository(pool),
		clients:     client.NewPostgresDirectory(pool),
		photos:      photo.NewPostgresRepository(pool),
		reviews:     review.NewPostgresRepository(pool),
	}
}

func sqliteStores(conn *sql.DB) stores {
	return stores{
		restaurants: restaurant.NewSQLiteRepository(conn),
		clients:     client.NewSQLiteDirectory(conn),
		photos:      photo.NewSQLiteRepository(conn),
		reviews:     review.NewSQLiteRepository(conn),
	}
}
