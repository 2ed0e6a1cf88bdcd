package restaurant

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"likeat/internal/client"
	"likeat/internal/photo"
	"likeat/internal/review"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PhotoSource interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]photo.Photo, error)
}

type ReviewSource interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]review.Review, error)
}

// SearchParams filters a status listing. Query matches name or location,
// case-insensitively.
type SearchParams struct {
	Status string
	Query  string
	Page   int
	Limit  int
}

type Service struct {
	repo      Repository
	clients   client.Directory
	photos    PhotoSource
	reviews   ReviewSource
	assembler *Assembler
	log       logrus.FieldLogger
}

func NewService(
	repo Repository,
	clients client.Directory,
	photos PhotoSource,
	reviews ReviewSource,
	assembler *Assembler,
	log logrus.FieldLogger,
) *Service {
	if assembler == nil {
		assembler = NewAssembler(nil, nil)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		repo:      repo,
		clients:   clients,
		photos:    photos,
		reviews:   reviews,
		assembler: assembler,
		log:       log,
	}
}

// --------------------------------------------------
// Views of the restaurants a client owns
// --------------------------------------------------
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]RestaurantView, error) {
	restaurants, err := s.repo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return s.assembleAll(ctx, restaurants)
}

// --------------------------------------------------
// Views of the restaurants in a status
// --------------------------------------------------
func (s *Service) ListByStatus(ctx context.Context, rawStatus string) ([]RestaurantView, error) {
	restaurants, err := s.findByStatus(ctx, rawStatus)
	if err != nil {
		return nil, err
	}

	return s.assembleAll(ctx, restaurants)
}

// --------------------------------------------------
// Filtered, paginated status listing (admin console)
// --------------------------------------------------
func (s *Service) Search(ctx context.Context, params SearchParams) (Page, error) {
	restaurants, err := s.findByStatus(ctx, params.Status)
	if err != nil {
		return Page{}, err
	}

	matched := filterByQuery(restaurants, params.Query)

	page, limit := normalizePage(params.Page, params.Limit)
	total := len(matched)

	start, end := pageBounds(page, limit, total)

	items, err := s.assembleAll(ctx, matched[start:end])
	if err != nil {
		return Page{}, err
	}

	return Page{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (s *Service) findByStatus(ctx context.Context, rawStatus string) ([]*Restaurant, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByStatus(ctx, status)
}

// assembleAll resolves each restaurant's relations and builds its view.
// Owners are looked up once per call.
func (s *Service) assembleAll(ctx context.Context, restaurants []*Restaurant) ([]RestaurantView, error) {
	owners := make(map[string]*client.Client)
	views := make([]RestaurantView, 0, len(restaurants))

	for _, r := range restaurants {
		owner, seen := owners[r.ClientID]
		if !seen {
			var err error
			owner, err = s.lookupClient(ctx, r.ClientID)
			if err != nil {
				return nil, err
			}
			owners[r.ClientID] = owner
		}

		var photos []photo.Photo
		if s.photos != nil {
			var err error
			if photos, err = s.photos.ListByRestaurant(ctx, r.ID); err != nil {
				return nil, err
			}
		}

		var reviews []review.Review
		if s.reviews != nil {
			var err error
			if reviews, err = s.reviews.ListByRestaurant(ctx, r.ID); err != nil {
				return nil, err
			}
		}

		view, err := s.assembler.Assemble(r, owner, photos, reviews)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// lookupClient returns nil, without error, for an owner the directory does
// not know; the view then carries an empty client name.
func (s *Service) lookupClient(ctx context.Context, clientID string) (*client.Client, error) {
	if s.clients == nil {
		return nil, nil
	}

	owner, err := s.clients.FindByID(ctx, clientID)
	if errors.Is(err, client.ErrNotFound) {
		s.log.WithField("client_id", clientID).Warn("restaurant owner missing from client directory")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return owner, nil
}

func filterByQuery(restaurants []*Restaurant, query string) []*Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return restaurants
	}

	matched := make([]*Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Location), q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// pageBounds returns the slice bounds of page within total items. Pages past
// the end are empty. Callers pass page >= 1 and limit >= 1.
func pageBounds(page, limit, total int) (int, int) {
	if page-1 >= (total+limit-1)/limit {
		return total, total
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
