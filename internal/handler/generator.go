package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vaultpass/pwgen-go/internal/generator"
	"github.com/vaultpass/pwgen-go/internal/middleware"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with the default settings.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	resp, err := h.service.Generate(r.Context(), userID, req)
	if err != nil {
		h.writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleHistory handles GET /api/v1/generate/history requests.
func (h *GeneratorHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse("limit must be a positive integer"))
			return
		}
		limit = n
	}

	events, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
			return
		}
		slog.Error("listing generation history failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *GeneratorHandler) writeGenerateError(w http.ResponseWriter, err error) {
	code := service.ErrorCode(err)
	switch code {
	case generator.CodeCharacterExhaustion:
		writeJSON(w, http.StatusUnprocessableEntity, codedErrorResponse(err.Error(), code))
	case generator.CodeInternal:
		slog.Error("password generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	default:
		writeJSON(w, http.StatusBadRequest, codedErrorResponse(err.Error(), code))
	}
}
