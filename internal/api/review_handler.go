package api

import (
	"net/http"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/user"
)

// ── Request / Response types ────────────────────────────────────────────────

type MistakeResponse struct {
	Question  question.Question `json:"question"`
	MissCount int               `json:"missCount" example:"3"`
}

type StudentReportResponse struct {
	Student      user.User `json:"student"`
	Attempts     int       `json:"attempts" example:"4"`
	AverageScore string    `json:"averageScore" example:"7.5"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// history lists the student's results, newest first.
// @Summary      Test history
// @Tags         Review
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  result.TestResult
// @Router       /api/review/history [get]
func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Review.History(r.Context(), currentUser(r).ID)
	if h.handleError(w, err, "results") {
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// mistakes lists the questions the student missed most often.
// @Summary      Most-missed questions
// @Tags         Review
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  MistakeResponse
// @Router       /api/review/mistakes [get]
func (h *Handler) mistakes(w http.ResponseWriter, r *http.Request) {
	missed, err := h.svc.Review.Mistakes(r.Context(), currentUser(r).ID)
	if h.handleError(w, err, "results") {
		return
	}

	out := make([]MistakeResponse, len(missed))
	for i, m := range missed {
		out[i] = MistakeResponse{Question: m.Question, MissCount: m.MissCount}
	}
	respondJSON(w, http.StatusOK, out)
}

// studentReports summarizes every student for the teacher.
// @Summary      Student reports
// @Description  Attempts and average score (one decimal) per student.
// @Tags         Reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  StudentReportResponse
// @Router       /api/reports/students [get]
func (h *Handler) studentReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.Review.Reports(r.Context())
	if h.handleError(w, err, "reports") {
		return
	}

	out := make([]StudentReportResponse, len(reports))
	for i, rep := range reports {
		out[i] = StudentReportResponse{
			Student:      rep.Student,
			Attempts:     rep.Attempts,
			AverageScore: rep.AverageScore.StringFixed(1),
		}
	}
	respondJSON(w, http.StatusOK, out)
}
