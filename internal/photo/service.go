package photo

import (
	"context"
	"fmt"

	"likeat/internal/core"
)

// URLResolver turns a stored object key into a URL a browser can load.
type URLResolver interface {
	URLFor(ctx context.Context, key string) (string, error)
}

type Service struct {
	repo Repository
	urls URLResolver
}

// NewService wires the photo store to a URL resolver. With a nil resolver
// photos keep their object key as URL.
func NewService(repo Repository, urls URLResolver) *Service {
	return &Service{repo: repo, urls: urls}
}

// --------------------------------------------------
// Photos of a restaurant with resolved URLs
// --------------------------------------------------
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID int64) ([]Photo, error) {
	photos, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	for i := range photos {
		if s.urls == nil {
			photos[i].URL = photos[i].ObjectKey
			continue
		}

		url, err := s.urls.URLFor(ctx, photos[i].ObjectKey)
		if err != nil {
			return nil, core.Unavailable(fmt.Sprintf("resolve photo %d", photos[i].ID), err)
		}
		photos[i].URL = url
	}

	return photos, nil
}
