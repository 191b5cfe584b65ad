package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	HotelID   string    `json:"hotel"`
	BookingID string    `json:"booking"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewView joins the author onto a review at query time (replaces the
// source schema's virtual populate).
type ReviewView struct {
	Review
	Author UserSummary `json:"author"`
}

// RatingFilter narrows a review listing: exact match or minimum rating.
type RatingFilter struct {
	Exact *int
	Min   *int
}

func (f RatingFilter) Empty() bool { return f.Exact == nil && f.Min == nil }
