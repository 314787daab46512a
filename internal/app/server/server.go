package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"leavedesk/internal/domain/leave"
	"leavedesk/internal/platform/config"
	"leavedesk/internal/platform/db"
	"leavedesk/internal/platform/metrics"
	"leavedesk/internal/transport/http/api"
	leavehandler "leavedesk/internal/transport/http/handlers/leave"
	"leavedesk/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Service *leave.Service
	Metrics *metrics.Collector
	Router  http.Handler
}

// CalendarFromConfig resolves every configured holiday year into one
// calendar using the configured weekend.
func CalendarFromConfig(cfg config.Config) (*leave.HolidayCalendar, error) {
	weekend, err := cfg.Weekend()
	if err != nil {
		return nil, err
	}
	years, err := cfg.HolidayYears()
	if err != nil {
		return nil, err
	}
	cal := leave.NewCalendar(nil, leave.WithWeekend(weekend...))
	for _, year := range years {
		cal, err = cal.Extend(year, cfg.HolidaysFor(year))
		if err != nil {
			return nil, fmt.Errorf("holidays %d: %w", year, err)
		}
	}
	return cal, nil
}

// New builds the engine from config and, when a database is configured,
// migrates, seeds and reloads the calendar from the holidays table.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	cal, err := CalendarFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	app := &App{
		Config:  cfg,
		Service: leave.NewService(cal, leave.Policy{RejectHolidayBoundary: cfg.RejectHolidayBoundary}),
		Metrics: metrics.New(),
	}

	if cfg.DatabaseURL != "" {
		if err := app.initDatabase(ctx, cal); err != nil {
			app.Close()
			return nil, err
		}
	} else {
		slog.Info("DATABASE_URL not set, serving holidays from config only")
	}

	app.Router = app.routes()
	return app, nil
}

func (a *App) initDatabase(ctx context.Context, cal *leave.HolidayCalendar) error {
	pool, err := db.Connect(ctx, a.Config)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	a.DB = pool

	if a.Config.RunMigrations {
		if err := db.Migrate(ctx, pool, a.Config.MigrationsDir); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	store := leave.NewStore(pool)
	if a.Config.RunSeed {
		inserted, err := store.Seed(ctx, cal)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		slog.Info("holidays seeded", "inserted", inserted)
	}

	years, err := a.Config.HolidayYears()
	if err != nil {
		return err
	}
	if len(years) == 0 {
		years = []int{time.Now().Year()}
	}
	return a.Service.ReloadFromStore(ctx, store, years)
}

func (a *App) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(a.Metrics))
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(a.Config.IsProduction()))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if a.DB != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := a.DB.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if a.Config.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		var limitOpts []middleware.RateLimitOption
		if a.Config.TrustProxyHeaders {
			limitOpts = append(limitOpts, middleware.WithForwardedFor())
		}
		r.Use(middleware.RateLimit(a.Config.RateLimitPerMinute, time.Minute, limitOpts...))
		leavehandler.NewHandler(a.Service, a.Metrics, a.Config.MaxRangeDays).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: a.Config.FrontendDir, indexPath: "index.html"})
	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("leavedesk listening", "addr", a.Config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
