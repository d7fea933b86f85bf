package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"tinyfox/internal/bootstrap/apiapp"
	"tinyfox/internal/platform/config"
	"tinyfox/internal/platform/logging"
)

// Run starts the API application and blocks until SIGINT or SIGTERM.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	gin.SetMode(gin.ReleaseMode)

	app, err := apiapp.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
