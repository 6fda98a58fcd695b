package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drayage/internal/adapters/in/planfile"
	postgres_adapter "drayage/internal/adapters/out/postgres"
	"drayage/internal/core/domain/model/dispatch"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

// ErrPlanHasViolations is returned by check-plan when the plan breaks a rule.
var ErrPlanHasViolations = errors.New("plan has violations")

// NewRootCommand builds the drayage CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "drayage",
		Short:         "Dispatch lifecycle and plan validation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand(), newCheckPlanCommand())

	return root
}

func newServeCommand() *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			config, log, err := setup(configPath)
			if err != nil {
				return err
			}

			db, err := openDB(config)
			if err != nil {
				return err
			}
			if config.AutoMigrate {
				if err = postgres_adapter.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, config, db, log)
		},
	}
	c.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	return c
}

func serve(ctx context.Context, config Config, db *gorm.DB, log *slog.Logger) error {
	app, err := NewCompositionRoot(config, db, log)
	if err != nil {
		return err
	}

	e, err := app.CreateEcho()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server started", "port", config.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newMigrateCommand() *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			config, log, err := setup(configPath)
			if err != nil {
				return err
			}

			db, err := openDB(config)
			if err != nil {
				return err
			}
			if err = postgres_adapter.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			log.Info("schema migrated", "database", config.DBName)
			return nil
		},
	}
	c.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	return c
}

func newCheckPlanCommand() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "check-plan",
		Short: "Validate the instruction sequence of a YAML plan file",
		Example: `  drayage check-plan -f plan.yaml

  # plan.yaml
  instructions: [PICKUP_EMPTY, LIVE_LOAD, INGATE]`,
		RunE: func(c *cobra.Command, _ []string) error {
			instructions, err := planfile.ReadFile(file)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			violations := dispatch.ValidatePlan(instructions)
			if len(violations) == 0 {
				_, _ = fmt.Fprintf(out, "plan is valid: %d tasks\n", len(instructions))
				return nil
			}

			for _, v := range violations {
				_, _ = fmt.Fprintln(out, v)
			}
			return fmt.Errorf("%w: %d found", ErrPlanHasViolations, len(violations))
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "plan file to check")
	_ = c.MarkFlagRequired("file")

	return c
}

func setup(configPath string) (Config, *slog.Logger, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return Config{}, nil, err
	}
	if err = config.Validate(); err != nil {
		return Config{}, nil, fmt.Errorf("invalid config: %w", err)
	}

	level, _ := config.SlogLevel()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	return config, log, nil
}

func openDB(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
