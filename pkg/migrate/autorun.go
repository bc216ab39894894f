package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

// MaybeRunDev applies the embedded migrations when auto-migrate is enabled in
// dev, or whenever the service runs on sqlite (local mode has no separate
// migrate step).
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	localSQLite := client.Driver() == config.DBDriverSQLite
	if !localSQLite && (!cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate) {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	meta := map[string]any{"env": cfg.App.Env, "driver": client.Driver()}
	ctx = logg.WithFields(ctx, meta)
	logg.Info(ctx, "running Goose migrations (auto-run)")

	results, err := Apply(ctx, sqlDB, client.Driver())
	if err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(logg.WithField(ctx, "applied", len(results)), "Goose migrations completed")
	return nil
}
