package restaurant

import (
	"likeat/internal/client"
	"likeat/internal/core"
	"likeat/internal/photo"
	"likeat/internal/review"
)

// ReviewMapper renders one review for the view.
type ReviewMapper func(review.Review) review.View

// StatusLabeler renders a status for display.
type StatusLabeler func(Status) string

// IdentityLabel shows the status value as is.
func IdentityLabel(s Status) string {
	return string(s)
}

var displayLabels = map[Status]string{
	StatusPending:  "Pending",
	StatusApproved: "Approved",
	StatusRejected: "Rejected",
}

// DisplayLabel shows the capitalised status name used by the admin console.
func DisplayLabel(s Status) string {
	if label, ok := displayLabels[s]; ok {
		return label
	}
	return string(s)
}

// Assembler maps a restaurant and its resolved relations into a
// RestaurantView. It holds no state between calls.
type Assembler struct {
	reviews ReviewMapper
	label   StatusLabeler
}

// NewAssembler falls back to review.ToView and IdentityLabel for nil
// collaborators.
func NewAssembler(reviews ReviewMapper, label StatusLabeler) *Assembler {
	if reviews == nil {
		reviews = review.ToView
	}
	if label == nil {
		label = IdentityLabel
	}
	return &Assembler{reviews: reviews, label: label}
}

// Assemble builds the view of r. The caller resolves c as r's owner; it is
// not checked again here. The first photo flagged main becomes the main
// photo, every other photo is additional in input order.
func (a *Assembler) Assemble(
	r *Restaurant,
	c *client.Client,
	photos []photo.Photo,
	reviews []review.Review,
) (RestaurantView, error) {
	if r == nil {
		return RestaurantView{}, core.InvalidArgument("restaurant is required")
	}

	var main *photo.Photo
	additional := make([]photo.Photo, 0, len(photos))
	for _, p := range photos {
		if p.Main && main == nil {
			picked := p
			main = &picked
			continue
		}
		additional = append(additional, p)
	}

	reviewViews := make([]review.View, 0, len(reviews))
	for _, rv := range reviews {
		reviewViews = append(reviewViews, a.reviews(rv))
	}

	return RestaurantView{
		ID:               r.ID,
		MainPhoto:        main,
		AdditionalPhotos: additional,
		Name:             r.Name,
		Location:         r.Location,
		Style:            r.Style,
		Cuisine:          r.Cuisine,
		Address:          r.Address,
		Cost:             r.Cost,
		OverallRating:    r.OverallRating,
		TotalReviews:     r.TotalReviews,
		Information:      r.Information,
		Phone:            r.Phone,
		OpeningHours:     r.OpeningHours,
		Reviews:          reviewViews,
		ClientName:       c.DisplayName(),
		Status:           a.label(r.Status),
	}, nil
}
