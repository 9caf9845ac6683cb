package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	return Config{
		SecretKey:            "app-test-secret",
		Algorithm:            "HS384",
		TokenTTL:             time.Minute,
		Issuer:               "spano-test",
		AssistantTimeout:     time.Second,
		DefaultUserName:      "user",
		DefaultUserPassword:  "userpw",
		DefaultAdminName:     "admin",
		DefaultAdminPassword: "adminpw",
		DatabaseFile:         filepath.Join(dir, "spano.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		Env:                  "test",
		LogLevel:             "error",
		Port:                 8000,
		ShutdownGracePeriod:  time.Second,
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SecretKey = ""

	_, err := New(context.Background(), cfg)
	require.ErrorContains(t, err, "SECRET_KEY")
}

func TestNewSeedsDefaultAccountsOnce(t *testing.T) {
	cfg := testConfig(t)

	for range 2 {
		a, err := New(context.Background(), cfg)
		require.NoError(t, err)

		users, err := a.db.Users().ListUsers(context.Background(), 0, 10)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.NoError(t, a.Close())
	}
}

func TestApplicationServesDefaultAdmin(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	form := url.Values{"username": {"admin"}, "password": {"adminpw"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<td>user</td>")

	req = httptest.NewRequest(http.MethodPost, "/ai/ask", strings.NewReader(`{"prompt":"hi"}`))
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMigrate(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, Migrate(cfg, NewLogger(cfg)))
	require.NoError(t, Migrate(cfg, NewLogger(cfg)))
}
