package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

type hotelReq struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	District   string `json:"district" validate:"required"`
	Province   string `json:"province" validate:"required"`
	Postalcode string `json:"postalcode" validate:"required,max=5"`
	Tel        string `json:"tel"`
	Region     string `json:"region" validate:"required"`
}

func (q hotelReq) input() app.HotelInput {
	return app.HotelInput{
		Name:       q.Name,
		Address:    q.Address,
		District:   q.District,
		Province:   q.Province,
		Postalcode: q.Postalcode,
		Tel:        q.Tel,
		Region:     q.Region,
	}
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := ParseListQuery(r.URL.Query())
	items, total, pg, err := h.Hotels.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	var data any = items
	if len(q.Select) > 0 {
		data = projectHotels(items, q.Select)
	}
	writeList(w, data, len(items), total, pg)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.Get(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, hotel)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	hotel, err := h.Hotels.Create(r.Context(), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	hotel, err := h.Hotels.Update(r.Context(), chi.URLParam(r, "hotelID"), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, hotel)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "hotelID")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, struct{}{})
}

// projectHotels narrows each hotel to the requested fields. The id is
// always present; unknown field names are ignored.
func projectHotels(items []domain.Hotel, fields []string) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, h := range items {
		m := map[string]any{"id": h.ID}
		for _, f := range fields {
			switch f {
			case "name":
				m["name"] = h.Name
			case "address":
				m["address"] = h.Address
			case "district":
				m["district"] = h.District
			case "province":
				m["province"] = h.Province
			case "postalcode":
				m["postalcode"] = h.Postalcode
			case "tel":
				m["tel"] = h.Tel
			case "region":
				m["region"] = h.Region
			case "avgRating":
				m["avgRating"] = h.AvgRating
			case "numReviews":
				m["numReviews"] = h.NumReviews
			case "createdAt":
				m["createdAt"] = h.CreatedAt
			}
		}
		out = append(out, m)
	}
	return out
}
