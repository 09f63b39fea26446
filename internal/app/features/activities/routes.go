// internal/app/features/activities/routes.go
package activities

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/activities. The feed is
// read-only over HTTP; entries are written by the activity recorder.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/recent", h.HandleRecent)
	r.Get("/stats", h.HandleStats)

	return r
}
