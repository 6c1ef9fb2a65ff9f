package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	pg "colonoscopy-prep/internal/adapters/storage/postgres"
	"colonoscopy-prep/internal/config"
	"colonoscopy-prep/internal/domain/planner"
	"colonoscopy-prep/internal/domain/presenter"
	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/i18n"
	"colonoscopy-prep/internal/server"

	"colonoscopy-prep/cmd/prepara/wizard"
)

func main() {
	var profilePath string

	rootCmd := &cobra.Command{
		Use:          "prepara",
		Short:        "Colonoscopy preparation plan: API server and terminal wizard",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "profile file (default <config dir>/prepara/profile.yaml)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(wizardCmd(&profilePath))
	rootCmd.AddCommand(scheduleCmd(&profilePath))
	rootCmd.AddCommand(icsCmd(&profilePath))
	rootCmd.AddCommand(resetCmd(&profilePath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return server.Run(cmd.Context(), cfg, server.NewLogger(cfg))
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema (DB_DSN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return fmt.Errorf("DB_DSN is required")
			}

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}
}

// app agrupa lo que usan los comandos locales (perfil en YAML).
type app struct {
	cfg      *config.Config
	repo     *wizard.FileRepo
	profiles *profiles.Service
	planner  *planner.Service
	texts    *i18n.Catalog
}

func newApp(profilePath string) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if profilePath == "" {
		if profilePath, err = wizard.DefaultPath(); err != nil {
			return nil, err
		}
	}
	parser, err := cfg.Parser()
	if err != nil {
		return nil, err
	}

	texts := i18n.Default()
	repo := wizard.NewFileRepo(profilePath)
	profilesSvc := profiles.NewService(repo, parser)
	pres := presenter.New(texts, presenter.Options{TimeZone: cfg.CalendarZone()})

	return &app{
		cfg:      cfg,
		repo:     repo,
		profiles: profilesSvc,
		planner:  planner.NewService(profilesSvc, pres, texts, planner.Options{PublicBaseURL: cfg.PublicBaseURL}),
		texts:    texts,
	}, nil
}

// current: perfil guardado o, si no hay, uno vacío en el idioma por defecto.
func (a *app) current(ctx context.Context) (profiles.Profile, error) {
	p, err := a.repo.Current(ctx)
	if errors.Is(err, profiles.ErrNotFound) {
		return profiles.Profile{Language: a.cfg.Language()}, nil
	}
	return p, err
}

func wizardCmd(profilePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Answer the 4 preparation questions and save the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*profilePath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			existing, err := a.current(ctx)
			if err != nil {
				return err
			}
			answers := wizard.DefaultAnswers(existing, time.Now())
			if err := wizard.Run(ctx, &answers, a.texts); err != nil {
				if errors.Is(err, wizard.ErrAborted) {
					return nil
				}
				return err
			}

			var saved profiles.Profile
			if existing.ID != "" {
				saved, err = a.profiles.Replace(ctx, existing.ID, answers.Input())
			} else {
				saved, err = a.profiles.Create(ctx, answers.Input())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.texts.Text(saved.Language.String(), "wizard.saved"), a.repo.Path())
			fmt.Fprint(out, wizard.RenderPlan(a.planner.Build(saved), a.texts))
			return nil
		},
	}
}

// planFlags son los mismos overrides que acepta la API por query.
type planFlags struct {
	lang, date, clock, medication string
	constipated                   string
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.lang, "lang", "", "pt | en")
	cmd.Flags().StringVar(&f.date, "date", "", "exam date YYYY-MM-DD")
	cmd.Flags().StringVar(&f.clock, "time", "", "exam time HH:MM")
	cmd.Flags().StringVar(&f.medication, "medication", "", "plenvu | moviprep | citrafleet")
	cmd.Flags().StringVar(&f.constipated, "constipated", "", "true | false")
}

func (f *planFlags) values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("lang", f.lang)
	set("exame", f.date)
	set("hora", f.clock)
	set("medication", f.medication)
	if _, err := strconv.ParseBool(f.constipated); err == nil {
		q.Set("isConstipated", f.constipated)
	}
	return q
}

func (a *app) plan(ctx context.Context, f *planFlags) (planner.Plan, error) {
	p, err := a.current(ctx)
	if err != nil {
		return planner.Plan{}, err
	}
	return a.planner.Build(profiles.ApplyOverrides(p, f.values())), nil
}

func scheduleCmd(profilePath *string) *cobra.Command {
	var flags planFlags
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the preparation timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*profilePath)
			if err != nil {
				return err
			}
			plan, err := a.plan(cmd.Context(), &flags)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), wizard.RenderPlan(plan, a.texts))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func icsCmd(profilePath *string) *cobra.Command {
	var (
		flags planFlags
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write the plan as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*profilePath)
			if err != nil {
				return err
			}
			plan, err := a.plan(cmd.Context(), &flags)
			if err != nil {
				return err
			}

			filename, body := a.planner.ICS(plan)
			if body == nil {
				return fmt.Errorf("%s", a.texts.Text(plan.Profile.Language.String(), "calendar.noDate"))
			}

			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}

func resetCmd(profilePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved profile and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*profilePath)
			if err != nil {
				return err
			}
			p, err := a.repo.Current(cmd.Context())
			if errors.Is(err, profiles.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			return a.profiles.Reset(cmd.Context(), p.ID)
		},
	}
}
