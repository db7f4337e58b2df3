package cmd

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/config"
	"civicpulse/fixtures"
	"civicpulse/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSConfig(t *testing.T) {
	cc := corsConfig(&config.Config{CORSOrigins: "*"})
	assert.True(t, cc.AllowAllOrigins)
	assert.False(t, cc.AllowCredentials)

	cc = corsConfig(&config.Config{CORSOrigins: "http://localhost:5173,https://civicpulse.example"})
	assert.False(t, cc.AllowAllOrigins)
	assert.True(t, cc.AllowCredentials)
	assert.Equal(t, []string{"http://localhost:5173", "https://civicpulse.example"}, cc.AllowOrigins)
}

func TestNewEngineServesPingAndProtectsAPI(t *testing.T) {
	ds, err := fixtures.Load()
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "secret", CORSOrigins: "*", TokenTTLHours: 1, SLAThresholdHours: 72, ReportDailyLimit: 10}
	r := newEngine(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), store.NewMemoryStore(ds), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/complaints", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()
	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	assert.NotNil(t, serve.Flags().Lookup("port"))

	seed, _, err := root.Find([]string{"seed"})
	require.NoError(t, err)
	assert.NotNil(t, seed.Flags().Lookup("dry-run"))
}

func TestSeedDryRun(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"seed", "--dry-run"})
	assert.NoError(t, root.Execute())
}
