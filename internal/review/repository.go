package review

import "context"

type Repository interface {
	// ListByRestaurant returns reviews newest first, with the author's
	// display name joined in.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]Review, error)
}
