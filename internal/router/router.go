package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"colonoscopy-prep/internal/adapters/content/embedded"
	"colonoscopy-prep/internal/adapters/content/remote"
	mem "colonoscopy-prep/internal/adapters/storage/memory"
	pg "colonoscopy-prep/internal/adapters/storage/postgres"
	rds "colonoscopy-prep/internal/adapters/storage/redis"
	"colonoscopy-prep/internal/config"
	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/checklist"
	"colonoscopy-prep/internal/domain/content"
	"colonoscopy-prep/internal/domain/planner"
	"colonoscopy-prep/internal/domain/presenter"
	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
	"colonoscopy-prep/internal/i18n"
	"colonoscopy-prep/internal/middleware"
	"colonoscopy-prep/internal/platform/logger"
	ports "colonoscopy-prep/internal/ports/content"
)

type Options struct {
	// Opcional: si es nil se carga de env (.env incluido).
	Config *config.Config

	// Opcional: si viene, usa Postgres. Si no, Redis. Si no, in-memory.
	DB    *sql.DB
	Redis *rds.Client

	Logger logger.Logger

	// Opcional: por defecto remoto (CONTENT_BASE_URL) con fallback embebido.
	ContentLoader ports.Loader
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = loadConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.Language(cfg.Language()))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	parser, err := cfg.Parser()
	if err != nil {
		log.Warn("invalid timezone, using UTC", map[string]any{"error": err})
		parser = dates.NewParser(time.UTC, cfg.DefaultExamTime)
	}

	profileRepo, checklistRepo := repositories(opts, cfg, log)

	// Services por módulo
	profilesSvc := profiles.NewService(profileRepo, parser)

	store := content.NewStore(contentLoader(opts, cfg, log), log, cfg.Language().String(), languageCodes())
	if err := store.Preload(context.Background()); err != nil {
		log.Warn("content preload incomplete", map[string]any{"error": err})
	}
	checklistSvc := checklist.NewService(checklistRepo, profilesSvc, store)
	profilesSvc.OnReset(checklistSvc)

	catalog := i18n.Default()
	pres := presenter.New(catalog, presenter.Options{TimeZone: cfg.CalendarZone()})
	plannerSvc := planner.NewService(profilesSvc, pres, catalog, planner.Options{PublicBaseURL: cfg.PublicBaseURL})

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc)
	checklist.RegisterRoutes(r, checklistSvc)
	planner.RegisterRoutes(r, plannerSvc)
	content.RegisterRoutes(r, store, catalog)

	return r
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return &config.Config{}
	}
	return cfg
}

// repositories elige almacenamiento: DB explícita o DB_DSN > Redis explícito o REDIS_URL > memoria.
func repositories(opts Options, cfg *config.Config, log logger.Logger) (profiles.Repository, checklist.Repository) {
	db := opts.DB
	if db == nil && cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres unavailable, falling back", map[string]any{"error": err})
		} else {
			db = opened
		}
	}
	if db != nil {
		log.Info("storage: postgres", nil)
		return pg.NewProfilesRepo(db), pg.NewChecklistRepo(db)
	}

	rc := opts.Redis
	if rc == nil && cfg.RedisURL != "" {
		opened, err := rds.Open(context.Background(), cfg.RedisURL, rds.Options{Prefix: cfg.RedisPrefix})
		if err != nil {
			log.Error("redis unavailable, falling back", map[string]any{"error": err})
		} else {
			rc = opened
		}
	}
	if rc != nil {
		log.Info("storage: redis", nil)
		return rds.NewProfilesRepo(rc), rds.NewChecklistRepo(rc)
	}

	log.Info("storage: memory", nil)
	return mem.NewProfileRepo(), mem.NewChecklistRepo()
}

func contentLoader(opts Options, cfg *config.Config, log logger.Logger) ports.Loader {
	if opts.ContentLoader != nil {
		return opts.ContentLoader
	}

	local := embedded.NewLoader()
	client, err := remote.NewClient(remote.Config{
		BaseURL: cfg.ContentBaseURL,
		APIKey:  cfg.ContentAPIKey,
		Timeout: cfg.ContentTimeout,
	})
	if err != nil {
		log.Warn("remote content disabled", map[string]any{"error": err})
		return local
	}
	return remote.NewLoader(client, local, log)
}

func languageCodes() []string {
	out := make([]string, 0, len(schedule.Languages))
	for _, l := range schedule.Languages {
		out = append(out, l.String())
	}
	return out
}
