package httpserver

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

type registerReq struct {
	Name     string      `json:"name" validate:"required"`
	Tel      string      `json:"tel"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     domain.Role `json:"role"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// sendToken issues a credential for u and delivers it both ways the
// clients consume it: response body and an http-only cookie.
func (h *Handlers) sendToken(w http.ResponseWriter, status int, u domain.User) {
	tok, err := h.Tokens.Issue(u)
	if err != nil {
		log.Error().Err(err).Str("user", u.ID).Msg("token issue failed")
		writeErrMsg(w, http.StatusInternalServerError, "internal server error")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(h.TokenTTL),
		HttpOnly: true,
	})
	writeData(w, status, tokenResponse{Token: tok, User: u})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	u, err := h.Auth.Register(r.Context(), app.RegisterInput{
		Name:     req.Name,
		Tel:      req.Tel,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	h.sendToken(w, http.StatusCreated, u)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tok, u, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(h.TokenTTL),
		HttpOnly: true,
	})
	writeData(w, http.StatusOK, tokenResponse{Token: tok, User: u})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "none",
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
	})
	writeData(w, http.StatusOK, struct{}{})
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.Auth.Me(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, u)
}
