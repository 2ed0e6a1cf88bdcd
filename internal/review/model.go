package review

import "time"

type Review struct {
	ID           int64
	RestaurantID int64
	AuthorID     string
	AuthorName   string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

// View is the client-facing form of a review.
type View struct {
	ID         int64     `json:"id"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToView maps a stored review to its client-facing form.
func ToView(r Review) View {
	return View{
		ID:         r.ID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
