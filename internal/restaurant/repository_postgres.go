package restaurant

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"likeat/internal/core"
)

const selectRestaurantsPostgres = `
	SELECT
		id,
		name,
		location,
		style,
		cuisine,
		address,
		cost,
		overall_rating,
		total_reviews,
		information,
		phone,
		opening_hours,
		client_id::text,
		status,
		created_at
	FROM restaurants
`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Restaurants owned by a client
// --------------------------------------------------
func (r *PostgresRepository) FindByClient(ctx context.Context, clientID string) ([]*Restaurant, error) {
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, selectRestaurantsPostgres+`
		WHERE client_id = $1
		ORDER BY created_at DESC, id DESC
	`, clientID)
	if err != nil {
		return nil, core.Unavailable("find restaurants by client", err)
	}

	return scanPostgresRestaurants(rows)
}

// --------------------------------------------------
// Restaurants in a moderation status
// --------------------------------------------------
func (r *PostgresRepository) FindByStatus(ctx context.Context, status Status) ([]*Restaurant, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, selectRestaurantsPostgres+`
		WHERE status = $1
		ORDER BY created_at DESC, id DESC
	`, string(status))
	if err != nil {
		return nil, core.Unavailable("find restaurants by status", err)
	}

	return scanPostgresRestaurants(rows)
}

func scanPostgresRestaurants(rows pgx.Rows) ([]*Restaurant, error) {
	defer rows.Close()

	restaurants := []*Restaurant{}
	for rows.Next() {
		var res Restaurant
		var status string
		// Tables created before created_at was NOT NULL may still hold NULLs.
		var createdAt *time.Time
		if err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Location,
			&res.Style,
			&res.Cuisine,
			&res.Address,
			&res.Cost,
			&res.OverallRating,
			&res.TotalReviews,
			&res.Information,
			&res.Phone,
			&res.OpeningHours,
			&res.ClientID,
			&status,
			&createdAt,
		); err != nil {
			return nil, core.Unavailable("scan restaurant", err)
		}
		res.Status = Status(status)
		if createdAt != nil {
			res.CreatedAt = *createdAt
		}
		restaurants = append(restaurants, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, core.Unavailable("read restaurants", err)
	}

	return restaurants, nil
}
