package app_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"stayhub/internal/domain"
)

// memStore is an in-memory implementation of every store port, shared by
// the service tests.
type memStore struct {
	mu       sync.Mutex
	users    map[string]domain.User
	hotels   map[string]domain.Hotel
	bookings map[string]domain.Booking
	reviews  []domain.Review

	// statsErr makes SetHotelStats fail; statsGate, when non-nil, blocks
	// HotelRatingStats until the channel is closed.
	statsErr  error
	statsGate chan struct{}
}

func newMem() *memStore {
	return &memStore{
		users:    map[string]domain.User{},
		hotels:   map[string]domain.Hotel{},
		bookings: map[string]domain.Booking{},
	}
}

// ---- users ----

func (m *memStore) CreateUser(_ context.Context, u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return domain.ErrConflict
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memStore) GetUser(_ context.Context, id string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

// ---- hotels ----

func (m *memStore) CreateHotel(_ context.Context, h domain.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.hotels {
		if ex.Name == h.Name {
			return domain.ErrConflict
		}
	}
	m.hotels[h.ID] = h
	return nil
}

func (m *memStore) GetHotel(_ context.Context, id string) (domain.Hotel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (m *memStore) ListHotels(_ context.Context, q domain.ListQuery) ([]domain.Hotel, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []domain.Hotel
	for _, h := range m.hotels {
		all = append(all, h)
	}
	total := int64(len(all))
	start := q.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *memStore) UpdateHotel(_ context.Context, h domain.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hotels[h.ID]; !ok {
		return domain.ErrNotFound
	}
	// preserve aggregates, UpdateHotel never touches them
	h.AvgRating = m.hotels[h.ID].AvgRating
	h.NumReviews = m.hotels[h.ID].NumReviews
	m.hotels[h.ID] = h
	return nil
}

func (m *memStore) DeleteHotel(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hotels[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.hotels, id)
	return nil
}

func (m *memStore) SetHotelStats(_ context.Context, id string, avg float64, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statsErr != nil {
		return m.statsErr
	}
	h, ok := m.hotels[id]
	if !ok {
		return domain.ErrNotFound
	}
	h.AvgRating = avg
	h.NumReviews = n
	m.hotels[id] = h
	return nil
}

func (m *memStore) hotelStats(id string) (float64, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := m.hotels[id]
	return h.AvgRating, h.NumReviews
}

// ---- bookings ----

func (m *memStore) CreateBooking(_ context.Context, b domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = b
	return nil
}

func (m *memStore) GetBooking(_ context.Context, id string) (domain.BookingView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return domain.BookingView{}, domain.ErrNotFound
	}
	return m.bookingView(b), nil
}

func (m *memStore) bookingView(b domain.Booking) domain.BookingView {
	h := m.hotels[b.HotelID]
	return domain.BookingView{
		Booking: b,
		Hotel:   domain.HotelSummary{ID: h.ID, Name: h.Name, Province: h.Province, Tel: h.Tel},
	}
}

func (m *memStore) ListBookings(_ context.Context) ([]domain.BookingView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.BookingView
	for _, b := range m.bookings {
		out = append(out, m.bookingView(b))
	}
	return out, nil
}

func (m *memStore) ListBookingsByUser(_ context.Context, userID string) ([]domain.BookingView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.BookingView
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, m.bookingView(b))
		}
	}
	return out, nil
}

func (m *memStore) CountBookingsByUser(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) UpdateBookingDate(_ context.Context, id string, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.BookDate = date
	m.bookings[id] = b
	return nil
}

func (m *memStore) DeleteBooking(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

// ---- reviews ----

func (m *memStore) CreateReview(_ context.Context, r domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.reviews {
		if ex.BookingID == r.BookingID {
			return domain.ErrConflict
		}
	}
	m.reviews = append(m.reviews, r)
	return nil
}

func (m *memStore) GetReview(_ context.Context, id string) (domain.ReviewView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reviews {
		if r.ID == id {
			return m.reviewView(r), nil
		}
	}
	return domain.ReviewView{}, domain.ErrNotFound
}

func (m *memStore) reviewView(r domain.Review) domain.ReviewView {
	u := m.users[r.UserID]
	return domain.ReviewView{
		Review: r,
		Author: domain.UserSummary{ID: u.ID, Name: u.Name, Tel: u.Tel, Email: u.Email},
	}
}

func (m *memStore) GetReviewByBooking(_ context.Context, bookingID string) (domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reviews {
		if r.BookingID == bookingID {
			return r, nil
		}
	}
	return domain.Review{}, domain.ErrNotFound
}

func (m *memStore) ListReviewsForHotel(_ context.Context, hotelID string, f domain.RatingFilter, page, limit int) ([]domain.ReviewView, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// newest first: reverse insertion order
	var match []domain.Review
	for i := len(m.reviews) - 1; i >= 0; i-- {
		r := m.reviews[i]
		if r.HotelID != hotelID {
			continue
		}
		if f.Exact != nil && r.Rating != *f.Exact {
			continue
		}
		if f.Min != nil && r.Rating < *f.Min {
			continue
		}
		match = append(match, r)
	}
	total := int64(len(match))
	start := (page - 1) * limit
	if start > len(match) {
		start = len(match)
	}
	end := start + limit
	if end > len(match) {
		end = len(match)
	}
	var out []domain.ReviewView
	for _, r := range match[start:end] {
		out = append(out, m.reviewView(r))
	}
	return out, total, nil
}

func (m *memStore) UpdateReview(_ context.Context, rv domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.reviews {
		if r.ID == rv.ID {
			m.reviews[i] = rv
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memStore) DeleteReview(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.reviews {
		if r.ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memStore) HotelRatingStats(_ context.Context, hotelID string) (float64, int, error) {
	if m.statsGate != nil {
		<-m.statsGate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sum, n := 0, 0
	for _, r := range m.reviews {
		if r.HotelID == hotelID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}

// ---- cache ----

type fakeCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{m: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(_ context.Context, key string, v any, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.m[key] = b
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
	return nil
}
