package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domain"
)

// maxActiveBookings is the per-user quota for non-admins, checked at
// creation time only.
const maxActiveBookings = 3

type BookingService struct {
	bookings domain.BookingStore
	hotels   domain.HotelStore
}

func NewBookingService(b domain.BookingStore, h domain.HotelStore) *BookingService {
	return &BookingService{bookings: b, hotels: h}
}

// Create books hotelID for the actor. The quota check and the insert are
// not atomic; concurrent requests from one user can exceed the quota.
// Accepted limitation, matching the source behavior.
func (s *BookingService) Create(ctx context.Context, actor Actor, hotelID string, bookDate time.Time) (domain.Booking, error) {
	if _, err := s.hotels.GetHotel(ctx, hotelID); err != nil {
		return domain.Booking{}, err
	}
	if bookDate.IsZero() {
		return domain.Booking{}, domain.Invalid("please add a booking date")
	}

	n, err := s.bookings.CountBookingsByUser(ctx, actor.ID)
	if err != nil {
		return domain.Booking{}, err
	}
	if n >= maxActiveBookings && !actor.IsAdmin() {
		return domain.Booking{}, fmt.Errorf("user %s already holds %d bookings: %w", actor.ID, n, domain.ErrQuotaExceeded)
	}

	b := domain.Booking{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		HotelID:   hotelID,
		BookDate:  bookDate,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bookings.CreateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// List returns all bookings for admins and the actor's own otherwise.
func (s *BookingService) List(ctx context.Context, actor Actor) ([]domain.BookingView, error) {
	if actor.IsAdmin() {
		return s.bookings.ListBookings(ctx)
	}
	return s.bookings.ListBookingsByUser(ctx, actor.ID)
}

func (s *BookingService) Get(ctx context.Context, actor Actor, id string) (domain.BookingView, error) {
	bv, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return domain.BookingView{}, err
	}
	if err := Authorize(actor, bv.UserID); err != nil {
		return domain.BookingView{}, err
	}
	return bv, nil
}

func (s *BookingService) Update(ctx context.Context, actor Actor, id string, bookDate time.Time) (domain.BookingView, error) {
	bv, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return domain.BookingView{}, err
	}
	if err := Authorize(actor, bv.UserID); err != nil {
		return domain.BookingView{}, err
	}
	if bookDate.IsZero() {
		return domain.BookingView{}, domain.Invalid("please add a booking date")
	}
	if err := s.bookings.UpdateBookingDate(ctx, id, bookDate); err != nil {
		return domain.BookingView{}, err
	}
	bv.BookDate = bookDate
	return bv, nil
}

func (s *BookingService) Delete(ctx context.Context, actor Actor, id string) error {
	bv, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(actor, bv.UserID); err != nil {
		return err
	}
	return s.bookings.DeleteBooking(ctx, id)
}
