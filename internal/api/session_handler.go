package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/englishk12/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	// Defaults to the student's class when omitted.
	Grade *int `json:"grade,omitempty" example:"5"`
}

type SelectOptionRequest struct {
	Option string `json:"option" example:"goes"`
}

func (r *SelectOptionRequest) Validate() error {
	if r.Option == "" {
		return errors.New("option is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession draws a new test for the logged-in student.
// @Summary      Start a test
// @Description  Draws up to questionsPerTest random questions of the grade. Replaces any earlier live test.
// @Tags         Sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  false  "Grade"
// @Success      201   {object}  service.SessionView
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse  "no questions for this grade"
// @Router       /api/sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	student := currentUser(r)

	var req StartSessionRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	grade := req.Grade
	if grade == nil {
		grade = student.Class
	}
	if grade == nil {
		respondError(w, http.StatusBadRequest, "grade is required")
		return
	}

	v, err := h.svc.Testing.Start(r.Context(), student.ID, *grade)
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// getSession returns the current state of a test.
// @Summary      Get a test
// @Tags         Sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  ErrorResponse
// @Router       /api/sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Testing.Get(currentUser(r).ID, chi.URLParam(r, "sessionID"))
	h.respondSession(w, v, err)
}

// selectOption picks an answer for the current question.
// @Summary      Select an option
// @Tags         Sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SelectOptionRequest  true  "Chosen option"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse
// @Router       /api/sessions/{sessionID}/select [post]
func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	var req SelectOptionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	v, err := h.svc.Testing.Select(currentUser(r).ID, chi.URLParam(r, "sessionID"), req.Option)
	h.respondSession(w, v, err)
}

// confirmAnswer locks in the selection and reveals the answer.
// @Summary      Confirm the answer
// @Tags         Sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse
// @Router       /api/sessions/{sessionID}/confirm [post]
func (h *Handler) confirmAnswer(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Testing.Confirm(currentUser(r).ID, chi.URLParam(r, "sessionID"))
	h.respondSession(w, v, err)
}

// nextQuestion moves on, or finishes the test after the last question.
// @Summary      Next question
// @Description  On the last question this saves the result and returns the summary.
// @Tags         Sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.SessionView
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse
// @Router       /api/sessions/{sessionID}/next [post]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Testing.Next(r.Context(), currentUser(r).ID, chi.URLParam(r, "sessionID"))
	h.respondSession(w, v, err)
}

func (h *Handler) respondSession(w http.ResponseWriter, v service.SessionView, err error) {
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, v)
}
