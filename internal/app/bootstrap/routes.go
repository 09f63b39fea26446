// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	activitiesfeature "github.com/GymAppCB/FinalApp/internal/app/features/activities"
	assessmentsfeature "github.com/GymAppCB/FinalApp/internal/app/features/assessments"
	clientsfeature "github.com/GymAppCB/FinalApp/internal/app/features/clients"
	healthfeature "github.com/GymAppCB/FinalApp/internal/app/features/health"
	loginfeature "github.com/GymAppCB/FinalApp/internal/app/features/login"
	treinosfeature "github.com/GymAppCB/FinalApp/internal/app/features/treinos"
	workoutplansfeature "github.com/GymAppCB/FinalApp/internal/app/features/workoutplans"
	activitystore "github.com/GymAppCB/FinalApp/internal/app/store/activities"
	"github.com/GymAppCB/FinalApp/internal/app/system/activitylog"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The API surface splits into a public
// part (root banner, health, login) and a bearer-token part (everything
// under /api except /api/auth).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.GymProMongoDatabase

	tokens := auth.Config{
		Secret: appCfg.JWTSecret,
		TTL:    appCfg.TokenTTL,
	}
	requireTrainer := auth.RequireTrainer(tokens, logger)

	rec := activitylog.New(activitystore.New(db), logger)

	r := chi.NewRouter()

	// Plain-text banner at the root.
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("GymPro API is running."))
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.GymProMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		// Authentication (public)
		loginHandler := loginfeature.NewHandler(db, tokens, logger)
		api.Mount("/auth", loginfeature.Routes(loginHandler))

		// Everything else under /api requires a valid bearer token.
		api.Group(func(pr chi.Router) {
			pr.Use(requireTrainer)

			clientsHandler := clientsfeature.NewHandler(db, logger)
			pr.Mount("/clients", clientsfeature.Routes(clientsHandler))

			treinosHandler := treinosfeature.NewHandler(db, logger)
			pr.Mount("/treinos", treinosfeature.Routes(treinosHandler))

			plansHandler := workoutplansfeature.NewHandler(db, rec, logger)
			pr.Mount("/workout-plans", workoutplansfeature.Routes(plansHandler))

			assessmentsHandler := assessmentsfeature.NewHandler(db, rec, logger)
			pr.Mount("/assessments", assessmentsfeature.Routes(assessmentsHandler))

			activitiesHandler := activitiesfeature.NewHandler(db, int64(appCfg.RecentActivityLimit), logger)
			pr.Mount("/activities", activitiesfeature.Routes(activitiesHandler))
		})
	})

	return r, nil
}
