package domain

import "time"

type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	HotelID   string    `json:"hotel"`
	BookDate  time.Time `json:"bookDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingView joins the hotel summary onto a booking at query time.
type BookingView struct {
	Booking
	Hotel HotelSummary `json:"hotelInfo"`
}
