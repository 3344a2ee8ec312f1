package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/englishk12/backend/internal/author"
	"github.com/englishk12/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

// QuestionRequest is the body of create and update.
type QuestionRequest struct {
	Grade         int           `json:"grade" example:"5"`
	Type          question.Type `json:"type" example:"grammar"`
	Question      string        `json:"question" example:"She _____ to school every day."`
	Options       []string      `json:"options" example:"go,goes,going,went"`
	CorrectAnswer string        `json:"correctAnswer" example:"goes"`
	Explanation   string        `json:"explanation" example:"Chủ ngữ số ít dùng động từ thêm -es."`
}

func (r *QuestionRequest) Validate() error {
	return r.draft().Validate()
}

func (r *QuestionRequest) draft() question.Draft {
	return question.Draft{
		Grade:         r.Grade,
		Type:          r.Type,
		Text:          r.Question,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
	}
}

type GenerateRequest struct {
	Topic string        `json:"topic" example:"Present Perfect"`
	Grade int           `json:"grade" example:"8"`
	Type  question.Type `json:"type" example:"grammar"`
}

func (r *GenerateRequest) Validate() error {
	return r.request().Validate()
}

func (r *GenerateRequest) request() author.Request {
	return author.Request{Topic: r.Topic, Grade: r.Grade, Type: r.Type}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions lists the bank, optionally filtered.
// @Summary      List questions
// @Description  Filters combine with AND. q matches question text case-insensitively.
// @Tags         Questions
// @Security     BearerAuth
// @Produce      json
// @Param        q      query     string  false  "Text contains"
// @Param        grade  query     int     false  "Grade"
// @Param        type   query     string  false  "grammar, vocabulary or cloze"
// @Success      200    {array}   question.Question
// @Failure      400    {object}  ErrorResponse
// @Router       /api/questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := question.Filter{TextContains: q.Get("q")}

	if g := q.Get("grade"); g != "" {
		grade, err := strconv.Atoi(g)
		if err != nil {
			respondError(w, http.StatusBadRequest, "grade must be a number")
			return
		}
		f.Grade = &grade
	}
	if t := q.Get("type"); t != "" {
		typ := question.Type(t)
		if !typ.Valid() {
			respondError(w, http.StatusBadRequest, "type must be grammar, vocabulary or cloze")
			return
		}
		f.Type = &typ
	}

	questions, err := h.svc.Questions.List(r.Context(), f)
	if h.handleError(w, err, "questions") {
		return
	}
	respondJSON(w, http.StatusOK, questions)
}

// createQuestion adds a question to the bank.
// @Summary      Create a question
// @Tags         Questions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      QuestionRequest  true  "Question to create"
// @Success      201   {object}  question.Question
// @Failure      400   {object}  ErrorResponse
// @Router       /api/questions [post]
func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.svc.Questions.Create(r.Context(), req.draft())
	if h.handleError(w, err, "question") {
		return
	}
	respondJSON(w, http.StatusCreated, q)
}

// getQuestion returns one question.
// @Summary      Get a question
// @Tags         Questions
// @Security     BearerAuth
// @Produce      json
// @Param        questionID  path      string  true  "Question ID"
// @Success      200         {object}  question.Question
// @Failure      404         {object}  ErrorResponse
// @Router       /api/questions/{questionID} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Questions.Get(r.Context(), chi.URLParam(r, "questionID"))
	if h.handleError(w, err, "question") {
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// updateQuestion replaces a question's content.
// @Summary      Update a question
// @Tags         Questions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        questionID  path      string           true  "Question ID"
// @Param        body        body      QuestionRequest  true  "New content"
// @Success      200         {object}  question.Question
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /api/questions/{questionID} [put]
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.svc.Questions.Update(r.Context(), chi.URLParam(r, "questionID"), req.draft())
	if h.handleError(w, err, "question") {
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// deleteQuestion removes a question. Deleting a missing question succeeds.
// @Summary      Delete a question
// @Tags         Questions
// @Security     BearerAuth
// @Param        questionID  path  string  true  "Question ID"
// @Success      204
// @Router       /api/questions/{questionID} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.svc.Questions.Delete(r.Context(), chi.URLParam(r, "questionID")), "question") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// generateQuestion drafts a question with the LLM. The draft is not saved.
// @Summary      Draft a question with AI
// @Description  Returns a draft with four options for the teacher to review and save.
// @Tags         Questions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateRequest  true  "Topic, grade and type"
// @Success      200   {object}  question.Draft
// @Failure      400   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Router       /api/questions/generate [post]
func (h *Handler) generateQuestion(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.svc.Authoring.Draft(r.Context(), req.request())
	if h.handleError(w, err, "draft") {
		return
	}
	respondJSON(w, http.StatusOK, d)
}
