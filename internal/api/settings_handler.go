package api

import (
	"net/http"

	"github.com/englishk12/backend/internal/domain/settings"
)

// ── Request / Response types ────────────────────────────────────────────────

type SettingsResponse struct {
	QuestionsPerTest int  `json:"questionsPerTest" example:"10"`
	Min              int  `json:"min" example:"5"`
	Max              int  `json:"max" example:"50"`
	WithinHint       bool `json:"withinHint" example:"true"`
}

func settingsResponse(st settings.AppSettings) SettingsResponse {
	return SettingsResponse{
		QuestionsPerTest: st.QuestionsPerTest,
		Min:              settings.MinQuestionsPerTest,
		Max:              settings.MaxQuestionsPerTest,
		WithinHint:       st.WithinHint(),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSettings returns the test configuration.
// @Summary      Get settings
// @Tags         Settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  SettingsResponse
// @Router       /api/settings [get]
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Settings.Get(r.Context())
	if h.handleError(w, err, "settings") {
		return
	}
	respondJSON(w, http.StatusOK, settingsResponse(st))
}

// updateSettings stores the test configuration.
// @Summary      Update settings
// @Description  min and max are a recommended range, not enforced.
// @Tags         Settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      settings.AppSettings  true  "Settings"
// @Success      200   {object}  SettingsResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/settings [put]
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.AppSettings
	if !decodeJSON(w, r, &req) {
		return
	}

	st, err := h.svc.Settings.Save(r.Context(), req)
	if h.handleError(w, err, "settings") {
		return
	}
	respondJSON(w, http.StatusOK, settingsResponse(st))
}
