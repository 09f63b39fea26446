// internal/app/features/workoutplans/handler.go
package workoutplans

import (
	"github.com/GymAppCB/FinalApp/internal/app/system/activitylog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for workout plans. Rec may
// be nil in tests; recording is then skipped.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
	Rec *activitylog.Recorder
}

func NewHandler(db *mongo.Database, rec *activitylog.Recorder, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
		Rec: rec,
	}
}
