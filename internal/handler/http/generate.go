package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevkin/launchcopy/internal/app"
	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/utils"
	"github.com/mlevkin/launchcopy/models"
)

type generateRequest struct {
	Name  string              `json:"name"`
	Input models.ProductInput `json:"input"`
}

type regenerateRequest struct {
	Section models.SectionName `json:"section"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.Generate(r.Context(), req.Name, req.Input)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("error generating copy")
		http.Error(w, app.MsgErrorGeneratingCopy, statusFromError(err))
		return
	}

	utils.WriteJSON(w, project, http.StatusCreated)
}

func (h *Handler) regenerateSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req regenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.regenerateSection").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	project, err := h.services.ProjectService.RegenerateSection(r.Context(), chi.URLParam(r, "id"), req.Section)
	if err != nil {
		log.Err(err).Str("func", "*Handler.regenerateSection").Msg("error regenerating section")
		http.Error(w, app.MsgErrorRegeneratingSection, statusFromError(err))
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}
