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

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProjects").Msg("error listing projects")
		http.Error(w, app.MsgErrorListingProjects, statusFromError(err))
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProject").Msg("error getting project")
		http.Error(w, app.MsgErrorGettingProject, statusFromError(err))
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) saveProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.saveProject").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ProjectService.SaveProject(r.Context(), project)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveProject").Msg("error saving project")
		http.Error(w, app.MsgErrorSavingProject, statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.ProjectService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProject").Msg("error deleting project")
		http.Error(w, app.MsgErrorDeletingProject, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
