package restaurant

import (
	"strings"
	"time"

	"likeat/internal/core"
	"likeat/internal/photo"
	"likeat/internal/review"
)

// Status is the moderation state of a restaurant.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var statuses = []Status{StatusPending, StatusApproved, StatusRejected}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus accepts a status name in any letter case.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", core.InvalidArgument("unknown restaurant status %q", raw)
	}
	return s, nil
}

// Restaurant is the persisted entity. Photos and reviews live in their own
// stores and are joined in by Service.
type Restaurant struct {
	ID            int64
	Name          string
	Location      string
	Style         string
	Cuisine       string
	Address       string
	Cost          int
	OverallRating float64
	TotalReviews  int
	Information   string
	Phone         string
	OpeningHours  string
	ClientID      string
	Status        Status
	CreatedAt     time.Time
}

// RestaurantView is the read-only projection sent to API clients. It is
// built by Assembler and never stored.
type RestaurantView struct {
	ID               int64         `json:"id"`
	MainPhoto        *photo.Photo  `json:"mainPhoto"`
	AdditionalPhotos []photo.Photo `json:"additionalPhotos"`
	Name             string        `json:"name"`
	Location         string        `json:"location"`
	Style            string        `json:"style"`
	Cuisine          string        `json:"cuisine"`
	Address          string        `json:"address"`
	Cost             int           `json:"cost"`
	OverallRating    float64       `json:"overallRating"`
	TotalReviews     int           `json:"totalReviews"`
	Information      string        `json:"information"`
	Phone            string        `json:"phone"`
	OpeningHours     string        `json:"openingHours"`
	Reviews          []review.View `json:"reviews"`
	ClientName       string        `json:"clientName"`
	Status           string        `json:"status"`
}

// Page is one page of a catalog search.
type Page struct {
	Items      []RestaurantView `json:"items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}
