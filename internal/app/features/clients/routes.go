// internal/app/features/clients/routes.go
package clients

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/clients. The caller
// wraps it in the bearer-token middleware; nothing here is public.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
