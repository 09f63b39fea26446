// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	activitystore "github.com/GymAppCB/FinalApp/internal/app/store/activities"
	assessmentstore "github.com/GymAppCB/FinalApp/internal/app/store/assessments"
	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
	treinostore "github.com/GymAppCB/FinalApp/internal/app/store/treinos"
	userstore "github.com/GymAppCB/FinalApp/internal/app/store/users"
	planstore "github.com/GymAppCB/FinalApp/internal/app/store/workoutplans"
	"github.com/GymAppCB/FinalApp/internal/app/system/validators"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema creates collections, attaches JSON-Schema validators, and
// builds the indexes every store relies on. All steps are idempotent.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.GymProMongoDatabase

	if err := validators.EnsureAll(ctx, db); err != nil {
		return err
	}

	if err := userstore.New(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := clientstore.New(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := treinostore.New(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := planstore.New(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := assessmentstore.New(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := activitystore.New(db).EnsureIndexes(ctx); err != nil {
		return err
	}

	logger.Info("schema ensured")
	return nil
}
