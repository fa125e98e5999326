package api

import (
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	httpCtx "github.com/bornholm/backlog/internal/http/context"
	"github.com/pkg/errors"
)

type CreateTeamRequest struct {
	Slug string `json:"slug" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type TeamRequest struct {
	Slug string `json:"slug" validate:"required"`
}

type ChangeOwnerRequest struct {
	Slug         string `json:"slug" validate:"required"`
	TargetUserID string `json:"targetUserId" validate:"required"`
}

type AddMemberRequest struct {
	Slug   string `json:"slug" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

func (h *Handler) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	team, err := h.teams.CreateTeam(ctx, httpCtx.User(ctx), req.Slug, req.Name)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, team.Clean())
}

func (h *Handler) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	req := TeamRequest{
		Slug: r.URL.Query().Get("slug"),
	}

	if err := h.validateRequest(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	team, err := h.teams.GetTeam(ctx, httpCtx.User(ctx), req.Slug)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, team.Clean())
}

func (h *Handler) handleListTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	teams, err := h.teams.ListTeams(ctx, httpCtx.User(ctx))
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, model.CleanAll[model.TeamView](teams))
}

func (h *Handler) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	if err := h.teams.DeleteTeam(ctx, httpCtx.User(ctx), req.Slug); err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, successResponse)
}

func (h *Handler) handleChangeOwner(w http.ResponseWriter, r *http.Request) {
	var req ChangeOwnerRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	team, err := h.teams.ChangeOwner(ctx, httpCtx.User(ctx), req.Slug, req.TargetUserID)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, team.Clean())
}

func (h *Handler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	team, err := h.teams.AddMember(ctx, httpCtx.User(ctx), req.Slug, req.UserID)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, team.Clean())
}
