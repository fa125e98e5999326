package api

import (
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/service"
	httpCtx "github.com/bornholm/backlog/internal/http/context"
	"github.com/pkg/errors"
)

type AddStoryRequest struct {
	Slug               string   `json:"slug" validate:"required"`
	Name               string   `json:"name" validate:"required"`
	Estimate           *float64 `json:"estimate" validate:"omitempty,gte=0"`
	Notes              *string  `json:"notes"`
	AcceptanceCriteria *string  `json:"acceptanceCriteria"`
}

type StoryRequest struct {
	Slug    string `json:"slug" validate:"required"`
	StoryID string `json:"storyId" validate:"required"`
}

type UpdateStoryRequest struct {
	Slug               string   `json:"slug" validate:"required"`
	StoryID            string   `json:"storyId" validate:"required"`
	Name               *string  `json:"name" validate:"omitempty,min=1"`
	Estimate           *float64 `json:"estimate" validate:"omitempty,gte=0"`
	Notes              *string  `json:"notes"`
	AcceptanceCriteria *string  `json:"acceptanceCriteria"`
	Status             *string  `json:"status" validate:"omitempty,oneof=GROOMING DEFINED PROGRESS COMPLETED ACCEPTED RELEASED"`
}

func (h *Handler) handleAddStory(w http.ResponseWriter, r *http.Request) {
	var req AddStoryRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	story, err := h.teams.AddStory(ctx, httpCtx.User(ctx), req.Slug, service.StoryDraft{
		Name:               req.Name,
		Estimate:           req.Estimate,
		Notes:              req.Notes,
		AcceptanceCriteria: req.AcceptanceCriteria,
	})
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, story.Clean())
}

func (h *Handler) handleDeleteStory(w http.ResponseWriter, r *http.Request) {
	var req StoryRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	if err := h.teams.DeleteStory(ctx, httpCtx.User(ctx), req.Slug, req.StoryID); err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, successResponse)
}

func (h *Handler) handleUpdateStory(w http.ResponseWriter, r *http.Request) {
	var req UpdateStoryRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	changes := service.StoryChanges{
		Name:               req.Name,
		Estimate:           req.Estimate,
		Notes:              req.Notes,
		AcceptanceCriteria: req.AcceptanceCriteria,
	}

	if req.Status != nil {
		status := model.StoryStatus(*req.Status)
		changes.Status = &status
	}

	ctx := r.Context()

	story, err := h.teams.UpdateStory(ctx, httpCtx.User(ctx), req.Slug, req.StoryID, changes)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, story.Clean())
}
