package photo

// Photo is a restaurant picture as stored by the photo service. URL is
// filled in by Service from ObjectKey.
type Photo struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"-"`
	ObjectKey    string `json:"-"`
	URL          string `json:"url"`
	Main         bool   `json:"main"`
	Position     int    `json:"-"`
}
