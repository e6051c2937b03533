package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kart-compare/internal/model"
	"kart-compare/internal/service"

	"github.com/rs/zerolog"
)

const sharePathPrefix = "/api/compare/share/"

// ComparisonHandler handles comparison and share link HTTP requests.
type ComparisonHandler struct {
	service service.ComparisonService
	logger  zerolog.Logger
}

// NewComparisonHandler creates a new comparison handler.
func NewComparisonHandler(service service.ComparisonService, logger zerolog.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		service: service,
		logger:  logger.With().Str("handler", "comparison").Logger(),
	}
}

// Compare handles GET /api/compare?ids=1,3 requests.
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	ids := parseIDList(r.URL.Query().Get("ids"))

	items, err := h.service.Compare(r.Context(), ids)
	if err != nil {
		if errors.Is(err, model.ErrTooManyItems) {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeTooManyItems, model.ErrTooManyItems.Message, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to build comparison", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// CreateShare handles POST /api/compare/share requests.
func (h *ComparisonHandler) CreateShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ShareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.Items == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "items is required", h.logger)
		return
	}

	resp, err := h.service.CreateShare(r.Context(), req.Items)
	if err != nil {
		if errors.Is(err, model.ErrTooManyItems) {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeTooManyItems, model.ErrTooManyItems.Message, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to create share link", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ResolveShare handles GET /api/compare/share/{token} requests.
// Undecodable tokens and tokens with no known products produce the same error view.
func (h *ComparisonHandler) ResolveShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	token := strings.TrimPrefix(r.URL.Path, sharePathPrefix)
	if token == r.URL.Path {
		token = ""
	}

	items, err := h.service.ResolveShare(r.Context(), token)
	if err != nil {
		if errors.Is(err, model.ErrInvalidShareLink) || errors.Is(err, model.ErrNoItemsFound) {
			writeJSON(w, http.StatusNotFound, model.NewErrorView())
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to open shared comparison", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.NewSuccessView(items))
}

// parseIDList splits a comma separated ID list, dropping blanks.
func parseIDList(raw string) []string {
	ids := []string{}
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
