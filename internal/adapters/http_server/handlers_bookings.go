package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type bookingReq struct {
	BookDate time.Time `json:"bookDate" validate:"required"`
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bookings.List(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	count := len(items)
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: items})
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	bv, err := h.Bookings.Get(r.Context(), actor(r), chi.URLParam(r, "bookingID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, bv)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	b, err := h.Bookings.Create(r.Context(), actor(r), chi.URLParam(r, "hotelID"), req.BookDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, b)
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	bv, err := h.Bookings.Update(r.Context(), actor(r), chi.URLParam(r, "bookingID"), req.BookDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, bv)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookings.Delete(r.Context(), actor(r), chi.URLParam(r, "bookingID")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, struct{}{})
}
