package domain

import (
	"context"
	"time"
)

type UserStore interface {
	CreateUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

type HotelStore interface {
	CreateHotel(ctx context.Context, h Hotel) error
	GetHotel(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context, q ListQuery) ([]Hotel, int64, error)
	UpdateHotel(ctx context.Context, h Hotel) error
	DeleteHotel(ctx context.Context, id string) error

	// SetHotelStats writes the derived rating aggregates.
	SetHotelStats(ctx context.Context, id string, avgRating float64, numReviews int) error
}

type BookingStore interface {
	CreateBooking(ctx context.Context, b Booking) error
	GetBooking(ctx context.Context, id string) (BookingView, error)
	ListBookings(ctx context.Context) ([]BookingView, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]BookingView, error)
	CountBookingsByUser(ctx context.Context, userID string) (int, error)
	UpdateBookingDate(ctx context.Context, id string, date time.Time) error
	DeleteBooking(ctx context.Context, id string) error
}

type ReviewStore interface {
	CreateReview(ctx context.Context, r Review) error
	GetReview(ctx context.Context, id string) (ReviewView, error)
	GetReviewByBooking(ctx context.Context, bookingID string) (Review, error)
	ListReviewsForHotel(ctx context.Context, hotelID string, f RatingFilter, page, limit int) ([]ReviewView, int64, error)
	UpdateReview(ctx context.Context, r Review) error
	DeleteReview(ctx context.Context, id string) error

	// HotelRatingStats returns the review count and mean rating for a hotel.
	HotelRatingStats(ctx context.Context, hotelID string) (avg float64, n int, err error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
