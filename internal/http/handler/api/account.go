package api

import (
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/service"
	"github.com/pkg/errors"
)

type RegisterRequest struct {
	Name struct {
		First  string `json:"first" validate:"required"`
		Middle string `json:"middle"`
		Last   string `json:"last" validate:"required"`
	} `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=7"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=7"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	_, err := h.accounts.Register(r.Context(), service.Registration{
		Name: model.Name{
			First:  req.Name.First,
			Middle: req.Name.Middle,
			Last:   req.Name.Last,
		},
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, successResponse)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	_, token, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := h.sessions.StoreToken(w, r, token); err != nil {
		HandleError(w, r, errors.Wrap(err, "could not store session token"))
		return
	}

	writeJSON(w, r, http.StatusOK, successResponse)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearToken(w, r); err != nil {
		HandleError(w, r, errors.Wrap(err, "could not clear session"))
		return
	}

	writeJSON(w, r, http.StatusOK, successResponse)
}
