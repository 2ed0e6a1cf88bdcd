package photo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"likeat/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]Photo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, object_key, is_main, position
		FROM restaurant_photos
		WHERE restaurant_id = $1
		ORDER BY position, id
	`, restaurantID)
	if err != nil {
		return nil, core.Unavailable("list photos", err)
	}
	defer rows.Close()

	photos := []Photo{}
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.RestaurantID, &p.ObjectKey, &p.Main, &p.Position); err != nil {
			return nil, core.Unavailable("scan photo", err)
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, core.Unavailable("list photos", err)
	}
	return photos, nil
}
