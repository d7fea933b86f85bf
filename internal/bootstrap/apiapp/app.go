package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	httpapi "tinyfox/internal/adapters/httpapi"
	"tinyfox/internal/adapters/httpapi/plugins"
	"tinyfox/internal/adapters/qrcode"
	"tinyfox/internal/adapters/sqlstore"
	"tinyfox/internal/app/links"
	"tinyfox/internal/platform/config"
	"tinyfox/internal/platform/logging"
	"tinyfox/internal/platform/sqldb"
)

// App is the composition root of the HTTP service.
type App struct {
	cfg    config.Config
	db     *sqldb.DB
	router http.Handler
	logger *zap.Logger
	sentry bool
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sentryEnabled := cfg.SentryDSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			return nil, fmt.Errorf("init sentry: %w", err)
		}
	}

	db, err := sqldb.Open(ctx, sqldb.OpenConfig{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if cfg.DBAutoMigrate {
		if err := sqldb.Migrate(ctx, db); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	repo := sqlstore.NewRepo(db)
	svc := links.New(repo, links.Config{
		BaseURL:            cfg.BaseURL,
		CodeLength:         cfg.CodeLength,
		AllocationAttempts: cfg.AllocationAttempts,
	}, logging.NewKV(logger).With("component", "links"))

	enginePlugins := []httpapi.EnginePlugin{
		plugins.RequestID(),
		plugins.AccessLog(logger),
		plugins.Recovery(logger),
	}
	if sentryEnabled {
		enginePlugins = append(enginePlugins, plugins.Sentry(cfg.SentryMiddlewareTimeout))
	}
	enginePlugins = append(enginePlugins,
		plugins.RequestTimeout(cfg.RequestBudget),
		plugins.CORS(cfg.CORSAllowedOrigins),
	)

	r := httpapi.NewEngine(enginePlugins...)
	httpapi.RegisterRoutes(r, httpapi.RouterDeps{
		Links:  svc,
		QR:     qrcode.NewRenderer(qrcode.DefaultSize),
		Logger: logger,
	})

	logger.Info("app initialised",
		zap.String("dialect", string(db.Dialect)),
		zap.Bool("sentry", sentryEnabled),
		zap.Bool("auto_migrate", cfg.DBAutoMigrate),
	)

	return &App{cfg: cfg, db: db, router: r, logger: logger, sentry: sentryEnabled}, nil
}

// Handler exposes the router, mostly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Close() error {
	if a.sentry {
		sentry.Flush(a.cfg.SentryFlushTimeout)
	}

	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           a.router,
		ReadHeaderTimeout: a.cfg.HTTPReadHeaderTimeout,
		ReadTimeout:       a.cfg.HTTPReadTimeout,
		WriteTimeout:      a.cfg.HTTPWriteTimeout,
		IdleTimeout:       a.cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	a.logger.Info("http server listening", zap.String("addr", a.cfg.HTTPAddr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("http server: %w", err)

	case <-ctx.Done():
		a.logger.Info("shutting down http server")

		return gracefulShutdown(ctx, srv, a.cfg.HTTPShutdownTimeout, errCh)
	}
}

func gracefulShutdown(ctx context.Context, srv *http.Server, timeout time.Duration, errCh <-chan error) error {
	srv.SetKeepAlivesEnabled(false)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("http shutdown timed out; forced close: %w", err)
		}

		return fmt.Errorf("http shutdown failed; forced close: %w", err)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("http server stopped with error: %w", err)
	default:
		return nil
	}
}
