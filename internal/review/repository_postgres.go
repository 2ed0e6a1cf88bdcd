package review

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"likeat/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			rv.id,
			rv.restaurant_id,
			rv.author_id::text,
			TRIM(u.name || ' ' || u.surname),
			rv.rating,
			rv.comment,
			rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.author_id
		WHERE rv.restaurant_id = $1
		ORDER BY rv.created_at DESC, rv.id DESC
	`, restaurantID)
	if err != nil {
		return nil, core.Unavailable("list reviews", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var rv Review
		var createdAt *time.Time
		if err := rows.Scan(
			&rv.ID,
			&rv.RestaurantID,
			&rv.AuthorID,
			&rv.AuthorName,
			&rv.Rating,
			&rv.Comment,
			&createdAt,
		); err != nil {
			return nil, core.Unavailable("scan review", err)
		}
		if createdAt != nil {
			rv.CreatedAt = *createdAt
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, core.Unavailable("list reviews", err)
	}

	return reviews, nil
}
