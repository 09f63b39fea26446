package auth

import (
	"net/http"

	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"go.uber.org/zap"
)

// RequireTrainer verifies the Authorization header and attaches the
// identity claims to the request context before the downstream handler
// runs. On any verification failure the downstream handler is never
// invoked and the response is a 401. A missing header and an invalid
// token differ on the wire only in the message string.
func RequireTrainer(cfg Config, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := TokenFromHeader(r.Header.Get("Authorization"))

			claims, err := cfg.VerifyToken(raw)
			if err != nil {
				log.Debug("request rejected",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				respond.Error(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
