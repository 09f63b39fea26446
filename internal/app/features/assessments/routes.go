// internal/app/features/assessments/routes.go
package assessments

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/assessments.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/pending", h.HandleListPending)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
