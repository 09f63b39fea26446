// internal/app/features/activities/handler.go
package activities

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultRecentLimit caps the recent feed when no limit is configured.
const DefaultRecentLimit = 10

// Handler serves the activity feed and the dashboard stats.
type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	RecentLimit int64
}

func NewHandler(db *mongo.Database, recentLimit int64, logger *zap.Logger) *Handler {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Handler{
		DB:          db,
		Log:         logger,
		RecentLimit: recentLimit,
	}
}
