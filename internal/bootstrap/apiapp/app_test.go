package apiapp_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tinyfox/internal/bootstrap/apiapp"
	"tinyfox/internal/platform/config"
)

func sqliteConfig(t *testing.T) config.Config {
	t.Helper()

	t.Setenv("HTTP_ADDR", freeAddr(t))
	t.Setenv("BASE_URL", "http://localhost:8080")
	t.Setenv("DATABASE_URL", ":memory:")
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := config.Load()
	require.NoError(t, err)

	return cfg
}

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

func TestApp_ServesOverSQLite(t *testing.T) {
	app, err := apiapp.New(context.Background(), sqliteConfig(t), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(`{"url":"https://example.com","custom_code":"boot"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"short_url":"http://localhost:8080/boot"`)

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boot", nil))
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	require.Equal(t, "https://example.com", rec.Header().Get("Location"))
}

func TestApp_WithoutMigrationsFailsRequests(t *testing.T) {
	t.Setenv("DB_AUTO_MIGRATE", "false")

	app, err := apiapp.New(context.Background(), sqliteConfig(t), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/info/abc", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	cfg := sqliteConfig(t)

	app, err := apiapp.New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddr + "/ping")
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_New_BadDatabase(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DatabaseURL = "mysql://nope"

	_, err := apiapp.New(context.Background(), cfg, nil)
	require.Error(t, err)
}
