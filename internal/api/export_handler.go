package api

import (
	"encoding/json"
	"net/http"

	"github.com/englishk12/backend/internal/service"
)

// exportAll downloads the question bank and settings.
// @Summary      Export
// @Tags         Transfer
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  service.Bundle
// @Router       /api/export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.svc.Transfer.Export(r.Context())
	if h.handleError(w, err, "export") {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=english-k12-export.json")
	json.NewEncoder(w).Encode(bundle)
}

// importAll merges an exported bundle into the bank.
// @Summary      Import
// @Description  Questions with a known id are replaced, others appended. Nothing is written if any entry is invalid.
// @Tags         Transfer
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      service.Bundle  true  "Exported bundle"
// @Success      201   {object}  service.ImportResult
// @Failure      400   {object}  ErrorResponse
// @Router       /api/import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	var bundle service.Bundle
	if !decodeJSON(w, r, &bundle) {
		return
	}

	res, err := h.svc.Transfer.Import(r.Context(), bundle)
	if h.handleError(w, err, "import") {
		return
	}
	respondJSON(w, http.StatusCreated, res)
}
