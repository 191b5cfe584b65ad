package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domain"
)

type HotelService struct {
	hotels   domain.HotelStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewHotelService(h domain.HotelStore, c domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{hotels: h, cache: c, cacheTTL: ttl}
}

func hotelCacheKey(id string) string { return "hotel:" + id }

type HotelInput struct {
	Name       string
	Address    string
	District   string
	Province   string
	Postalcode string
	Tel        string
	Region     string
}

func (s *HotelService) Create(ctx context.Context, in HotelInput) (domain.Hotel, error) {
	h := domain.Hotel{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Address:    in.Address,
		District:   in.District,
		Province:   in.Province,
		Postalcode: in.Postalcode,
		Tel:        in.Tel,
		Region:     in.Region,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.hotels.CreateHotel(ctx, h); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

// Get is cache-aside: the cached entry is dropped whenever the hotel or
// its rating aggregates change.
func (s *HotelService) Get(ctx context.Context, id string) (domain.Hotel, error) {
	key := hotelCacheKey(id)
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.hotels.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *HotelService) List(ctx context.Context, q domain.ListQuery) ([]domain.Hotel, int64, domain.Pagination, error) {
	if q.Page < 1 {
		q.Page = domain.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = domain.DefaultLimit
	}
	items, total, err := s.hotels.ListHotels(ctx, q)
	if err != nil {
		return nil, 0, domain.Pagination{}, err
	}
	return items, total, domain.PaginationFor(q.Page, q.Limit, total), nil
}

func (s *HotelService) Update(ctx context.Context, id string, in HotelInput) (domain.Hotel, error) {
	h, err := s.hotels.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	h.Name = in.Name
	h.Address = in.Address
	h.District = in.District
	h.Province = in.Province
	h.Postalcode = in.Postalcode
	h.Tel = in.Tel
	h.Region = in.Region
	if err := s.hotels.UpdateHotel(ctx, h); err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Del(ctx, hotelCacheKey(id))
	return h, nil
}

// Delete removes the hotel together with its bookings and reviews.
func (s *HotelService) Delete(ctx context.Context, id string) error {
	if _, err := s.hotels.GetHotel(ctx, id); err != nil {
		return err
	}
	if err := s.hotels.DeleteHotel(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, hotelCacheKey(id))
	return nil
}
