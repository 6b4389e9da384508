package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/memberhub/internal/catalog"
	"github.com/jask/memberhub/internal/config"
	"github.com/jask/memberhub/internal/database"
	"github.com/jask/memberhub/internal/fixtures"
	"github.com/jask/memberhub/internal/logging"
	"github.com/jask/memberhub/internal/tui"
)

// app carries what every subcommand shares.
type app struct {
	configPath string

	cfg config.Config
	log *zap.Logger
	db  *sql.DB
}

// newRootCmd builds the command tree. The caller closes the returned app
// after Execute so the database and log are released on error paths too.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:           "memberhub",
		Short:         "Terminal admin console for a membership organisation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $MEMBERHUB_CONFIG or ~/.config/memberhub/config.toml)")

	root.AddCommand(
		newSeedCmd(a),
		newListCmd(a),
		newMigrateCmd(a),
		newResetCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
	)
	return root, a
}

func (a *app) loadConfig() error {
	path := a.configPath
	if path == "" {
		path = os.Getenv("MEMBERHUB_CONFIG")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	return nil
}

// openDB migrates and opens the configured database once per process.
func (a *app) openDB() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	path := a.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path, a.cfg.Database.Migrations); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	a.db = db
	a.log.Debug("database ready", zap.String("path", path))
	return db, nil
}

// sources reads from the fixture file when one is configured, otherwise
// from the database.
func (a *app) sources(ctx context.Context, seed bool) (catalog.Sources, error) {
	if p := a.cfg.Data.Fixtures; p != "" {
		f, err := fixtures.Load(p)
		if err != nil {
			return catalog.Sources{}, err
		}
		a.log.Info("using fixtures", zap.String("path", p))
		return catalog.FromFixtures(f), nil
	}
	db, err := a.openDB()
	if err != nil {
		return catalog.Sources{}, err
	}
	if seed {
		if err := database.SeedDefaults(ctx, db); err != nil {
			return catalog.Sources{}, fmt.Errorf("seed defaults: %w", err)
		}
	}
	return catalog.FromDatabase(db), nil
}

func (a *app) runTUI(ctx context.Context) error {
	src, err := a.sources(ctx, true)
	if err != nil {
		return err
	}
	model, err := tui.New(ctx, catalog.Definitions(src), tui.Options{
		InitialTab: a.cfg.UI.InitialTab,
		DateFormat: a.cfg.UI.DateFormat,
		Logger:     a.log,
	})
	if err != nil {
		return err
	}
	a.log.Info("console started", zap.String("initial_tab", model.ActiveTab()))
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
