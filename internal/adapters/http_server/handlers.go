package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

type Handlers struct {
	Auth     *app.AuthService
	Hotels   *app.HotelService
	Bookings *app.BookingService
	Reviews  *app.ReviewService
	Tokens   domain.TokenIssuer
	TokenTTL time.Duration
}

var validate = validator.New()

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	protect := Protect(h.Tokens)
	adminOnly := RequireRole(domain.RoleAdmin)
	member := RequireRole(domain.RoleUser, domain.RoleAdmin)

	s.mux.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// 100 requests per 10 minutes per IP
			r.Use(RateLimit(rate.Every(6*time.Second), 100))
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Get("/logout", h.logout)
			r.With(protect).Get("/me", h.me)
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", h.listHotels)
			r.With(protect, adminOnly).Post("/", h.createHotel)
			r.Get("/{hotelID}", h.getHotel)
			r.With(protect, adminOnly).Put("/{hotelID}", h.updateHotel)
			r.With(protect, adminOnly).Delete("/{hotelID}", h.deleteHotel)

			r.Get("/{hotelID}/reviews", h.listHotelReviews)
			r.With(protect, member).Post("/{hotelID}/bookings", h.createBooking)
			r.With(protect, member).Post("/{hotelID}/bookings/{bookingID}/reviews", h.createReview)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Use(protect)
			r.Get("/", h.listBookings)
			r.Get("/{bookingID}", h.getBooking)
			r.Put("/{bookingID}", h.updateBooking)
			r.Delete("/{bookingID}", h.deleteBooking)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/{reviewID}", h.getReview)
			r.With(protect).Put("/{reviewID}", h.updateReview)
			r.With(protect).Delete("/{reviewID}", h.deleteReview)
		})
	})
}

// decode reads the JSON body into dst and runs its validate tags.
// Either failure surfaces as a 400 through writeError.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Invalid("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return domain.Invalid(err.Error())
	}
	return nil
}

// actor panics when called outside Protect; routes are wired so that
// cannot happen.
func actor(r *http.Request) app.Actor {
	a, ok := ActorFrom(r.Context())
	if !ok {
		panic("handler reached without Protect middleware")
	}
	return a
}
