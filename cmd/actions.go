package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dadrocktabs/api/internal/formatter"
	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/repositories"
	"github.com/dadrocktabs/api/internal/server"
	"github.com/dadrocktabs/api/internal/services"
	"github.com/dadrocktabs/api/internal/shared"
)

// Serve runs the HTTP API until the listener fails.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	db, err := r.database()
	if err != nil {
		return err
	}
	defer db.Close()

	return server.New(r.config, r.logger, db).Start()
}

// Sync performs one channel sync pass and prints the run report.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	db, err := r.database()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := services.NewSyncEngine(repositories.NewVideoRepository(db), r.config, r.logger)
	result, err := engine.Run(ctx, services.SyncOptions{
		APIKey:    cmd.String("api-key"),
		ChannelID: cmd.String("channel"),
	})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}
	return r.writePlain("%s", formatter.RenderSyncResult(result))
}

// Setup creates a config file next to the binary and initializes the database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err == nil {
		r.logger.Info("created config file", "path", path)
	} else if _, statErr := os.Stat(path); statErr != nil {
		return err
	}

	r.loadConfig(cmd)

	db, err := r.database()
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("database ready", "path", r.config.Database.Path)
	return nil
}

// Migrate applies pending migrations, or rolls back the most recent one.
func (r *Runner) Migrate(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Bool("rollback") {
		if err := shared.RollbackMigration(db); err != nil {
			return err
		}
		r.logger.Info("rolled back most recent migration")
		return nil
	}

	if err := shared.RunMigrations(db); err != nil {
		return err
	}
	r.logger.Info("migrations applied")
	return nil
}

// Export writes the whole catalog as CSV to the output path or stdout.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	db, err := r.database()
	if err != nil {
		return err
	}
	defer db.Close()

	videos := repositories.NewVideoRepository(db)
	all, err := collectAll(videos)
	if err != nil {
		return err
	}

	data, err := formatter.ExportToCSV(all)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		r.logger.Info("exported catalog", "path", path, "videos", len(all))
		return nil
	}

	return r.writePlain("%s", data)
}

// Stats prints the aggregate catalog counts.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	db, err := r.database()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := repositories.NewVideoRepository(db).Stats()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}
	return r.writePlain("%s", formatter.RenderStats(stats))
}

// collectAll pages through the catalog until the listing is exhausted.
func collectAll(repo *repositories.VideoRepository) ([]models.Video, error) {
	var all []models.Video
	for skip := 0; ; skip += repositories.MaxLimit {
		page, _, err := repo.List(repositories.Search{Skip: skip, Limit: repositories.MaxLimit})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < repositories.MaxLimit {
			return all, nil
		}
	}
}
