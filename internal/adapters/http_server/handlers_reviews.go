package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayhub/internal/app"
)

// Ratings and comments are checked by the review service, which owns
// the rules; the handler only shapes the payload.
type reviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Title   string `json:"title"`
}

type reviewPatch struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
	Title   *string `json:"title"`
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var req reviewReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.Reviews.Create(r.Context(), actor(r),
		chi.URLParam(r, "hotelID"), chi.URLParam(r, "bookingID"),
		app.ReviewInput{Rating: req.Rating, Comment: req.Comment, Title: req.Title})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, rv)
}

func (h *Handlers) listHotelReviews(w http.ResponseWriter, r *http.Request) {
	rf, err := parseRatingFilter(r.URL.Query().Get("rating"))
	if err != nil {
		writeError(w, err)
		return
	}
	page, limit := parsePageLimit(r.URL.Query())
	items, total, pg, err := h.Reviews.ListForHotel(r.Context(), chi.URLParam(r, "hotelID"), rf, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeList(w, items, len(items), total, pg)
}

func (h *Handlers) getReview(w http.ResponseWriter, r *http.Request) {
	rv, err := h.Reviews.Get(r.Context(), chi.URLParam(r, "reviewID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, rv)
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewPatch
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.Reviews.Update(r.Context(), actor(r), chi.URLParam(r, "reviewID"),
		app.ReviewPatch{Rating: req.Rating, Comment: req.Comment, Title: req.Title})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, rv)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.Reviews.Delete(r.Context(), actor(r), chi.URLParam(r, "reviewID")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, struct{}{})
}
