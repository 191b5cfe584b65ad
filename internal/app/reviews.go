package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
)

type ReviewService struct {
	reviews  domain.ReviewStore
	bookings domain.BookingStore
	hotels   domain.HotelStore
	cache    domain.Cache

	// tracks background aggregate refreshes spawned after create
	wg sync.WaitGroup
}

func NewReviewService(r domain.ReviewStore, b domain.BookingStore, h domain.HotelStore, c domain.Cache) *ReviewService {
	return &ReviewService{reviews: r, bookings: b, hotels: h, cache: c}
}

// Wait blocks until all in-flight background aggregate refreshes finish.
// Called on shutdown so a recompute spawned by Create is not dropped.
func (s *ReviewService) Wait() { s.wg.Wait() }

type ReviewInput struct {
	Rating  int
	Comment string
	Title   string
}

type ReviewPatch struct {
	Rating  *int
	Comment *string
	Title   *string
}

// Create reviews a booking. The response does not wait for the hotel
// aggregate refresh; that runs in the background.
func (s *ReviewService) Create(ctx context.Context, actor Actor, hotelID, bookingID string, in ReviewInput) (domain.Review, error) {
	bv, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return domain.Review{}, err
	}
	// only the booking owner may review it, admins included
	if bv.UserID != actor.ID {
		return domain.Review{}, fmt.Errorf("booking %s is not yours to review: %w", bookingID, domain.ErrForbidden)
	}
	if bv.HotelID != hotelID {
		return domain.Review{}, domain.Invalid("booking does not belong to this hotel")
	}

	// Pre-check for an existing review. A concurrent duplicate can still
	// slip through; the store's unique index reports it as ErrConflict,
	// the same user-facing outcome.
	if _, err := s.reviews.GetReviewByBooking(ctx, bookingID); err == nil {
		return domain.Review{}, fmt.Errorf("booking %s already reviewed: %w", bookingID, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Review{}, err
	}

	if err := validRating(in.Rating); err != nil {
		return domain.Review{}, err
	}
	if strings.TrimSpace(in.Comment) == "" {
		return domain.Review{}, domain.Invalid("please add a comment")
	}

	rv := domain.Review{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		HotelID:   hotelID,
		BookingID: bookingID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Title:     in.Title,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.CreateReview(ctx, rv); err != nil {
		return domain.Review{}, err
	}

	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.RecomputeHotelStats(bg, hotelID)
	}()
	return rv, nil
}

// Update patches rating/comment/title. When the patch carries a rating the
// aggregate refresh completes before returning.
func (s *ReviewService) Update(ctx context.Context, actor Actor, id string, p ReviewPatch) (domain.Review, error) {
	view, err := s.reviews.GetReview(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	if err := Authorize(actor, view.UserID); err != nil {
		return domain.Review{}, err
	}

	rv := view.Review
	if p.Rating != nil {
		if err := validRating(*p.Rating); err != nil {
			return domain.Review{}, err
		}
		rv.Rating = *p.Rating
	}
	if p.Comment != nil {
		if strings.TrimSpace(*p.Comment) == "" {
			return domain.Review{}, domain.Invalid("please add a comment")
		}
		rv.Comment = *p.Comment
	}
	if p.Title != nil {
		rv.Title = *p.Title
	}

	if err := s.reviews.UpdateReview(ctx, rv); err != nil {
		return domain.Review{}, err
	}
	if p.Rating != nil {
		s.RecomputeHotelStats(ctx, rv.HotelID)
	}
	return rv, nil
}

// Delete removes a review and refreshes the hotel aggregates before
// returning.
func (s *ReviewService) Delete(ctx context.Context, actor Actor, id string) error {
	view, err := s.reviews.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(actor, view.UserID); err != nil {
		return err
	}
	if err := s.reviews.DeleteReview(ctx, id); err != nil {
		return err
	}
	s.RecomputeHotelStats(ctx, view.HotelID)
	return nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (domain.ReviewView, error) {
	return s.reviews.GetReview(ctx, id)
}

func (s *ReviewService) ListForHotel(ctx context.Context, hotelID string, f domain.RatingFilter, page, limit int) ([]domain.ReviewView, int64, domain.Pagination, error) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	items, total, err := s.reviews.ListReviewsForHotel(ctx, hotelID, f, page, limit)
	if err != nil {
		return nil, 0, domain.Pagination{}, err
	}
	return items, total, domain.PaginationFor(page, limit, total), nil
}

// RecomputeHotelStats rewrites the hotel's cached rating aggregates from
// its reviews: (0, 0) when no reviews exist, otherwise the count and the
// mean rounded half-away-from-zero to one decimal. Best-effort: failures
// are logged and swallowed, never surfaced to the triggering request. The
// aggregate stays stale until the next successful trigger.
func (s *ReviewService) RecomputeHotelStats(ctx context.Context, hotelID string) {
	avg, n, err := s.reviews.HotelRatingStats(ctx, hotelID)
	if err != nil {
		observability.ObserveRecompute("error")
		log.Error().Err(err).Str("hotel", hotelID).Msg("hotel stats query failed")
		return
	}
	if n == 0 {
		avg = 0
	} else {
		avg = math.Round(avg*10) / 10
	}
	if err := s.hotels.SetHotelStats(ctx, hotelID, avg, n); err != nil {
		observability.ObserveRecompute("error")
		log.Error().Err(err).Str("hotel", hotelID).Msg("hotel stats write failed")
		return
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelCacheKey(hotelID))
	}
	observability.ObserveRecompute("ok")
}

func validRating(r int) error {
	if r < 1 || r > 5 {
		return domain.Invalid("rating must be an integer between 1 and 5")
	}
	return nil
}
