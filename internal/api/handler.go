package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/englishk12/backend/internal/auth"
	"github.com/englishk12/backend/internal/author"
	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/testsession"
	"github.com/englishk12/backend/internal/service"
	"github.com/englishk12/backend/internal/store"
)

// Services groups everything the handlers call into.
type Services struct {
	Gate      *auth.Gate
	Issuer    *auth.Issuer
	Questions *service.QuestionBank
	Testing   *service.Testing
	Review    *service.Review
	Settings  *service.Settings
	Authoring *service.Authoring
	Transfer  *service.Transfer
}

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	svc    Services
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"question not found"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON reads the request body into v. Returns false after writing a
// 400 if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleError maps domain errors to HTTP responses. Returns true if an
// error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}

	var svcErr *author.ServiceError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, question.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, testsession.ErrEmptySession):
		respondError(w, http.StatusUnprocessableEntity, "no questions available for this grade; ask your teacher to add some")
	case errors.Is(err, testsession.ErrAlreadyRevealed),
		errors.Is(err, testsession.ErrNoSelection),
		errors.Is(err, testsession.ErrNotRevealed),
		errors.Is(err, testsession.ErrFinished),
		errors.Is(err, testsession.ErrUnknownOption):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &svcErr):
		h.logger.Warn("external service error", "error", err, "entity", entity)
		respondError(w, http.StatusBadGateway, "Có lỗi xảy ra khi tạo câu hỏi bằng AI. Vui lòng thử lại.")
	default:
		h.logger.Error("internal error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
