// internal/app/features/workoutplans/routes.go
package workoutplans

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/workout-plans. The
// exercises sub-resource addresses entries embedded in a plan.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	r.Post("/{id}/exercises", h.HandleAddExercise)
	r.Put("/{id}/exercises/{exerciseId}", h.HandleUpdateExercise)
	r.Delete("/{id}/exercises/{exerciseId}", h.HandleRemoveExercise)

	return r
}
