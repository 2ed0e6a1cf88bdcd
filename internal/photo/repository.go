package photo

import "context"

type Repository interface {
	// ListByRestaurant returns the photos in display order.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]Photo, error)
}
