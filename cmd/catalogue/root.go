package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/app"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/migrate"
)

// session is what every subcommand works against.
type session struct {
	cfg      *config.Config
	logg     *logger.Logger
	services app.Services
	close    func() error
}

type opener func(ctx context.Context) (*session, error)

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:          "catalogue",
		Short:        "Operate the furniture catalogue from the command line",
		Long:         "catalogue prints merged project catalogues and seeds reference data against the configured database.",
		SilenceUsage: true,
	}
	root.AddCommand(newMergeCmd(open))
	root.AddCommand(newSeedCategoriesCmd(open))
	return root
}

// openServices boots config, database and services the same way the API does.
// Logs go to stderr so command output stays machine readable.
func openServices(ctx context.Context) (*session, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logg := logger.New(logger.Options{
		ServiceName: "catalogue-cli",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Output:      os.Stderr,
	})

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return nil, err
	}
	if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	services, err := app.Build(client, cfg.Catalogue, nil, logg)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &session{cfg: cfg, logg: logg, services: services, close: client.Close}, nil
}
