package domain

import "time"

type Hotel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	District   string `json:"district"`
	Province   string `json:"province"`
	Postalcode string `json:"postalcode"`
	Tel        string `json:"tel,omitempty"`
	Region     string `json:"region"`
	// AvgRating and NumReviews are cached aggregates over this hotel's
	// reviews; recomputed after every review mutation.
	AvgRating  float64   `json:"avgRating"`
	NumReviews int       `json:"numReviews"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HotelSummary is the slice of a hotel joined into booking listings.
type HotelSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Province string `json:"province"`
	Tel      string `json:"tel,omitempty"`
}
