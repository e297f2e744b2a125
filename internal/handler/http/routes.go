package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.currentUser)

		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.saveProject)
			r.Post("/generate", h.generate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getProject)
				r.Delete("/", h.deleteProject)
				r.Post("/regenerate", h.regenerateSection)
				r.Get("/export", h.exportProject)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
