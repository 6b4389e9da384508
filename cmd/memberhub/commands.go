package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/memberhub/internal/catalog"
	"github.com/jask/memberhub/internal/config"
	"github.com/jask/memberhub/internal/database"
	"github.com/jask/memberhub/internal/database/repository"
	"github.com/jask/memberhub/internal/fixtures"
	"github.com/jask/memberhub/internal/generator"
	"github.com/jask/memberhub/internal/listing"
	"github.com/jask/memberhub/internal/service"
)

var errUnknownTab = errors.New("unknown tab")

func newSeedCmd(a *app) *cobra.Command {
	var (
		random int
		seed   int64
		from   string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample directory (existing rows are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if from != "" {
				n, err := importFixtures(cmd, db, from)
				if err != nil {
					return err
				}
				a.log.Info("fixtures imported", zap.String("path", from), zap.Int("rows", n))
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows from %s\n", n, from)
				return nil
			}
			if random <= 0 {
				if err := database.Seed(ctx, db, database.DefaultSampleData()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "sample data ready")
				return nil
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			repos := generator.Repos{
				Members:   repository.NewMemberRepo(db),
				Resources: repository.NewResourceRepo(db),
				Events:    repository.NewEventRepo(db),
			}
			if err := generator.Seed(ctx, repos, rand.New(rand.NewSource(seed)), random); err != nil {
				return err
			}
			a.log.Info("random data seeded", zap.Int("rows", random), zap.Int64("seed", seed))
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d random rows per table\n", random)
			return nil
		},
	}
	cmd.Flags().IntVar(&random, "random", 0, "insert N random rows per table instead of the sample set")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVar(&from, "from", "", "upsert the records of a YAML fixture file")
	cmd.MarkFlagsMutuallyExclusive("from", "random")
	return cmd
}

func importFixtures(cmd *cobra.Command, db *sql.DB, path string) (int, error) {
	f, err := fixtures.Load(path)
	if err != nil {
		return 0, err
	}
	ctx := cmd.Context()
	members, resources, events := f.Models()
	memberRepo := repository.NewMemberRepo(db)
	for _, m := range members {
		if err := memberRepo.Upsert(ctx, m); err != nil {
			return 0, fmt.Errorf("import member %s: %w", m.ID, err)
		}
	}
	resourceRepo := repository.NewResourceRepo(db)
	for _, r := range resources {
		if err := resourceRepo.Upsert(ctx, r); err != nil {
			return 0, fmt.Errorf("import resource %s: %w", r.ID, err)
		}
	}
	eventRepo := repository.NewEventRepo(db)
	for _, e := range events {
		if err := eventRepo.Upsert(ctx, e); err != nil {
			return 0, fmt.Errorf("import event %s: %w", e.ID, err)
		}
	}
	return len(members) + len(resources) + len(events), nil
}

func newListCmd(a *app) *cobra.Command {
	var (
		search  string
		filters []string
		sortBy  string
		desc    bool
		width   int
	)
	cmd := &cobra.Command{
		Use:   "list <tab>",
		Short: "Print a filtered list panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.sources(cmd.Context(), false)
			if err != nil {
				return err
			}
			defs := catalog.Definitions(src)
			d, ok := catalog.Lookup(defs, args[0])
			if !ok {
				return fmt.Errorf("%w %q (want %s)", errUnknownTab, args[0], tabIDs(defs))
			}
			p, err := d.NewPanel()
			if err != nil {
				return err
			}
			if err := p.Load(cmd.Context(), d.Provider); err != nil {
				return err
			}
			p.SetSearch(search)
			for _, f := range filters {
				field, value, ok := strings.Cut(f, "=")
				if !ok {
					return fmt.Errorf("filter %q: want field=value", f)
				}
				if !p.SetFilter(strings.TrimSpace(field), strings.TrimSpace(value)) {
					return fmt.Errorf("filter %q: %s is not a filterable field of %s", f, field, d.Tab.ID)
				}
			}
			if sortBy != "" && !p.SortBy(sortBy, !desc) {
				return fmt.Errorf("sort: no field %q in %s", sortBy, d.Tab.ID)
			}
			return printPanel(cmd.OutOrStdout(), p, d.Columns, width)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search term")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "exact filter field=value (repeatable)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by field")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&width, "width", 120, "output width in cells")
	return cmd
}

func printPanel(w io.Writer, p *listing.Panel, cols []listing.Column, width int) error {
	height := len(p.Visible()) + 2
	if p.IsEmpty() {
		height = 5
	}
	_, err := fmt.Fprintln(w, listing.Render(p, cols, width, height))
	return err
}

func tabIDs(defs []catalog.Definition) string {
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		ids = append(ids, d.Tab.ID)
	}
	return strings.Join(ids, ", ")
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			counts, err := (&service.MaintenanceService{DB: db}).Counts(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "database up to date:", a.cfg.Database.Path)
			for _, t := range service.Tables {
				fmt.Fprintf(w, "%-10s %d rows\n", t, counts[t])
			}
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every member, resource and event",
		Long: `Delete every member, resource and event. The schema is kept and the
console does not refill the directory with sample data on its next start;
run "memberhub seed" to restore it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("reset deletes all records; pass --yes to confirm")
			}
			db, err := a.openDB()
			if err != nil {
				return err
			}
			res, err := (&service.MaintenanceService{DB: db}).Reset(cmd.Context())
			if err != nil {
				return err
			}
			a.log.Warn("database reset", zap.String("path", a.cfg.Database.Path), zap.Int64("rows", res.Total()))
			w := cmd.OutOrStdout()
			for _, t := range service.Tables {
				fmt.Fprintf(w, "%-10s %d deleted\n", t, res.Deleted[t])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the database as a YAML fixture file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			members, err := repository.NewMemberRepo(db).List(ctx)
			if err != nil {
				return err
			}
			resources, err := repository.NewResourceRepo(db).List(ctx)
			if err != nil {
				return err
			}
			events, err := repository.NewEventRepo(db).List(ctx)
			if err != nil {
				return err
			}
			f := fixtures.FromModels(members, resources, events)

			if len(args) == 0 || args[0] == "-" {
				return fixtures.Encode(cmd.OutOrStdout(), f)
			}
			out, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			if err := fixtures.Encode(out, f); err != nil {
				_ = out.Close()
				return err
			}
			return out.Close()
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "database.path       = %s\n", c.Database.Path)
			fmt.Fprintf(w, "database.migrations = %s\n", c.Database.Migrations)
			fmt.Fprintf(w, "ui.initial_tab      = %s\n", c.UI.InitialTab)
			fmt.Fprintf(w, "ui.date_format      = %s\n", c.UI.DateFormat)
			fmt.Fprintf(w, "log.level           = %s\n", c.Log.Level)
			fmt.Fprintf(w, "log.path            = %s\n", c.Log.Path)
			fmt.Fprintf(w, "data.fixtures       = %s\n", c.Data.Fixtures)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = os.Getenv("MEMBERHUB_CONFIG")
			}
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Save(a.cfg, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	})
	return cmd
}
