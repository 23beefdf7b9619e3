package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dangerclosesec/roofdesk/internal/auth"
	"github.com/dangerclosesec/roofdesk/internal/config"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	cfg := &config.Config{Backend: config.BackendFixture}
	cfg.Session.Store = "memory"
	cfg.Session.TTL = time.Hour
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryPeriod = time.Hour
	cfg.Email.Provider = "log"
	cfg.Email.From = "noreply@taklaget.dk"
	cfg.Email.FromName = "Taklaget Team"
	cfg.Database.Driver = "postgres"
	cfg.Database.LogLevel = "silent"
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func loginAndFetch(t *testing.T, h http.Handler, email, path string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	req = httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewFixtureBackend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := New(ctx, testConfig(), quietLogger())
	require.NoError(t, err)
	defer a.Close()

	_, ok := a.Store.(*repository.MemoryStore)
	assert.True(t, ok)
	_, ok = a.Authenticator.(*auth.TokenAuthenticator)
	assert.True(t, ok)

	rec := loginAndFetch(t, a.Handler, "peter@taklaget.dk", "/api/reports")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "DANDY Business Park")
}

func TestNewWithRedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.Session.Store = "redis"
	cfg.Redis.Addr = mr.Addr()

	a, err := New(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	defer a.Close()

	rec := loginAndFetch(t, a.Handler, "manager@taklaget.dk", "/api/auth/me")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, mr.Keys(), 1)
}

func TestNewRejectsUnknownEmailProvider(t *testing.T) {
	cfg := testConfig()
	cfg.Email.Provider = "carrier-pigeon"

	_, err := New(context.Background(), cfg, quietLogger())
	assert.Error(t, err)
}

func TestUseDatabaseSeedsAndIssuesJWTs(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Backend = config.BackendStore
	cfg.SeedOnStart = true

	db, err := gorm.Open(sqlite.Open(":memory:"), repository.GormConfig(cfg))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	a := &App{Config: cfg, Logger: quietLogger()}
	require.NoError(t, a.useDatabase(ctx, db, auth.NewMemorySessionStore()))
	require.NoError(t, a.wire())

	rec := loginAndFetch(t, a.Handler, "admin@taklaget.dk", "/api/dashboard")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var dash struct {
		Counts struct {
			Reports int `json:"reports"`
			Users   int `json:"users"`
		} `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, 1, dash.Counts.Reports)
	assert.Equal(t, 4, dash.Counts.Users)
}
