package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevkin/launchcopy/internal/app"
	"github.com/mlevkin/launchcopy/internal/logger"
)

func (h *Handler) exportProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	doc, err := h.services.ProjectService.Export(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportProject").Msg("error exporting project")
		http.Error(w, app.MsgErrorExportingProject, statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.Write([]byte(doc.Content))
}
