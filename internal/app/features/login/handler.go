// internal/app/features/login/handler.go
package login

import (
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the authentication endpoints.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Tokens auth.Config
}

// NewHandler constructs a login Handler. Tokens carries the signing secret
// and TTL used to mint bearer tokens on successful login.
func NewHandler(db *mongo.Database, tokens auth.Config, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		Tokens: tokens,
	}
}
