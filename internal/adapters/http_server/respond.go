package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"stayhub/internal/domain"
)

// envelope is the wire shape of every response. Collection endpoints
// fill Count/Total/Pagination; single-resource endpoints only Data.
type envelope struct {
	Success    bool               `json:"success"`
	Count      *int               `json:"count,omitempty"`
	Total      *int64             `json:"total,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	Data       any                `json:"data,omitempty"`
	Msg        string             `json:"msg,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeList(w http.ResponseWriter, data any, count int, total int64, pg domain.Pagination) {
	env := envelope{Success: true, Count: &count, Total: &total, Data: data}
	if pg.Next != nil || pg.Prev != nil {
		env.Pagination = &pg
	}
	writeJSON(w, http.StatusOK, env)
}

func writeErrMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Msg: msg})
}

// writeError maps a service error onto the HTTP contract: bad input,
// conflicts and quota breaches are the client's fault (400), auth
// failures split into 401/403, and anything unrecognized is a 500 that
// never leaks internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrQuotaExceeded):
		writeErrMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeErrMsg(w, http.StatusUnauthorized, "not authorized to access this route")
	case errors.Is(err, domain.ErrForbidden):
		writeErrMsg(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeErrMsg(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("unhandled request error")
		writeErrMsg(w, http.StatusInternalServerError, "internal server error")
	}
}
