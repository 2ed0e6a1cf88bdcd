package restaurant

import (
	"context"
	"database/sql"
	"time"

	"likeat/internal/core"
)

const selectRestaurantsSQLite = `
	SELECT
		id, name, location, style, cuisine, address, cost, overall_rating,
		total_reviews, information, phone, opening_hours, client_id, status,
		created_at
	FROM restaurants
`

// SQLiteRepository serves the catalog from a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FindByClient(ctx context.Context, clientID string) ([]*Restaurant, error) {
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectRestaurantsSQLite+`
		WHERE client_id = ?
		ORDER BY created_at DESC, id DESC
	`, clientID)
	if err != nil {
		return nil, core.Unavailable("find restaurants by client", err)
	}

	return scanSQLiteRestaurants(rows)
}

func (r *SQLiteRepository) FindByStatus(ctx context.Context, status Status) ([]*Restaurant, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectRestaurantsSQLite+`
		WHERE status = ?
		ORDER BY created_at DESC, id DESC
	`, string(status))
	if err != nil {
		return nil, core.Unavailable("find restaurants by status", err)
	}

	return scanSQLiteRestaurants(rows)
}

func scanSQLiteRestaurants(rows *sql.Rows) ([]*Restaurant, error) {
	defer rows.Close()

	restaurants := []*Restaurant{}
	for rows.Next() {
		var res Restaurant
		var status string
		// Tables created before created_at was NOT NULL may still hold NULLs.
		var createdAt *time.Time
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Location, &res.Style, &res.Cuisine,
			&res.Address, &res.Cost, &res.OverallRating, &res.TotalReviews,
			&res.Information, &res.Phone, &res.OpeningHours, &res.ClientID,
			&status, &createdAt,
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
