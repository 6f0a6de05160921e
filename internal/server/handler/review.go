// Package handler provides HTTP handlers for the CodeSage service.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/code-sage/internal/core"
)

const (
	msgCodeRequired   = "code is required"
	msgBodyTooLarge   = "request body too large"
	msgInternalFailed = "Something went wrong while returning the response"
)

// ReviewHandler serves POST /ai/get-review.
type ReviewHandler struct {
	reviewer core.Reviewer
	maxBytes int64
	logger   *slog.Logger
}

// NewReviewHandler creates a review handler. Bodies larger than maxBytes are rejected.
func NewReviewHandler(reviewer core.Reviewer, maxBytes int64, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer: reviewer,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle validates the request, runs the review and writes exactly one of
// 200, 400, 413 or 500.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	// Bodies of any other type are ignored, so they carry no code.
	if !isJSON(r.Header.Get("Content-Type")) {
		h.logger.Debug("review request is not JSON", "request_id", reqID, "content_type", r.Header.Get("Content-Type"))
		writeJSON(w, http.StatusBadRequest, core.ErrorResponse{Error: msgCodeRequired})
		return
	}

	var req core.ReviewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("review request body too large", "request_id", reqID, "limit", tooLarge.Limit)
			writeJSON(w, http.StatusRequestEntityTooLarge, core.ErrorResponse{Error: msgBodyTooLarge})
			return
		}
		h.logger.Debug("could not decode review request", "request_id", reqID, "error", err)
		writeJSON(w, http.StatusBadRequest, core.ErrorResponse{Error: msgCodeRequired})
		return
	}

	if req.Code == nil || *req.Code == "" {
		writeJSON(w, http.StatusBadRequest, core.ErrorResponse{Error: msgCodeRequired})
		return
	}

	result, err := h.reviewer.Review(r.Context(), *req.Code)
	if err != nil {
		if errors.Is(err, core.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, core.ErrorResponse{Error: msgCodeRequired})
			return
		}
		h.logger.Error("review failed", "request_id", reqID, "error", err)
		writeJSON(w, http.StatusInternalServerError, core.MessageResponse{Message: msgInternalFailed})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
