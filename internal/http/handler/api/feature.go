package api

import (
	"net/http"

	"github.com/bornholm/backlog/internal/core/model"
	httpCtx "github.com/bornholm/backlog/internal/http/context"
	"github.com/pkg/errors"
)

type CreateFeatureRequest struct {
	Slug string `json:"slug" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type FeatureRequest struct {
	Slug      string `json:"slug" validate:"required"`
	FeatureID string `json:"featureId" validate:"required"`
}

type AttachStoryRequest struct {
	Slug      string `json:"slug" validate:"required"`
	FeatureID string `json:"featureId" validate:"required"`
	StoryID   string `json:"storyId" validate:"required"`
}

func (h *Handler) handleCreateFeature(w http.ResponseWriter, r *http.Request) {
	var req CreateFeatureRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	feature, err := h.features.CreateFeature(ctx, httpCtx.User(ctx), req.Slug, req.Name)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, feature.Clean())
}

func (h *Handler) handleGetFeature(w http.ResponseWriter, r *http.Request) {
	req, err := h.getFeatureQuery(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	feature, err := h.features.GetFeature(ctx, httpCtx.User(ctx), req.Slug, req.FeatureID)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, feature.Clean())
}

func (h *Handler) handleListFeatures(w http.ResponseWriter, r *http.Request) {
	req := TeamRequest{
		Slug: r.URL.Query().Get("slug"),
	}

	if err := h.validateRequest(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	features, err := h.features.ListFeatures(ctx, httpCtx.User(ctx), req.Slug)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, model.CleanAll[model.FeatureView](features))
}

func (h *Handler) handleDeleteFeature(w http.ResponseWriter, r *http.Request) {
	req, err := h.getFeatureQuery(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	if err := h.features.DeleteFeature(ctx, httpCtx.User(ctx), req.Slug, req.FeatureID); err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, successResponse)
}

func (h *Handler) handleAttachStory(w http.ResponseWriter, r *http.Request) {
	var req AttachStoryRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	ctx := r.Context()

	feature, err := h.features.AttachStory(ctx, httpCtx.User(ctx), req.Slug, req.FeatureID, req.StoryID)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, feature.Clean())
}

func (h *Handler) getFeatureQuery(r *http.Request) (*FeatureRequest, error) {
	query := r.URL.Query()

	req := &FeatureRequest{
		Slug:      query.Get("slug"),
		FeatureID: query.Get("featureId"),
	}

	if err := h.validateRequest(r, req); err != nil {
		return nil, errors.WithStack(err)
	}

	return req, nil
}
