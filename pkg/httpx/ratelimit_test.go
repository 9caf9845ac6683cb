package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func get(h http.Handler, remote string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"remote addr", "192.168.1.1:12345", nil, "192.168.1.1"},
		{"remote addr without port", "192.168.1.1", nil, "192.168.1.1"},
		{"forwarded for wins", "192.168.1.1:12345", map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}, "203.0.113.1"},
		{"real ip fallback", "192.168.1.1:12345", map[string]string{"X-Real-IP": " 203.0.113.2 "}, "203.0.113.2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tc.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestFormFieldAndCompositeExtractors(t *testing.T) {
	t.Parallel()

	form := url.Values{"username": {"bob"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.0.0.9:5555"

	require.Equal(t, "bob", httpx.FormFieldKeyExtractor("username")(req))

	key := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.FormFieldKeyExtractor("username"))
	require.Equal(t, "10.0.0.9:bob", key(req))

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	bare.RemoteAddr = "10.0.0.9:5555"
	require.Equal(t, "10.0.0.9", key(bare))
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	t.Parallel()

	h := httpx.NewRateLimiter(httpx.RateLimitConfig{
		RequestsPerWindow: 3,
		Window:            time.Minute,
		Burst:             3,
	}, httpx.IPKeyExtractor).Middleware()(okHandler)

	for i := range 3 {
		require.Equal(t, http.StatusOK, get(h, "192.168.1.1:1").Code, "request %d", i+1)
	}

	rec := get(h, "192.168.1.1:1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Contains(t, rec.Body.String(), "rate_limit_exceeded")

	// Another client has its own bucket.
	require.Equal(t, http.StatusOK, get(h, "192.168.1.2:1").Code)
}

func TestRateLimiterUnkeyedRequestsPass(t *testing.T) {
	t.Parallel()

	h := httpx.NewRateLimiter(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}, func(*http.Request) string { return "" }).Middleware()(okHandler)

	for range 3 {
		require.Equal(t, http.StatusOK, get(h, "192.168.1.1:1").Code)
	}
}

func TestRateLimitByIPAndFormField(t *testing.T) {
	t.Parallel()

	h := httpx.RateLimitByIPAndFormField(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}, "username")(okHandler)

	withUser := func(name string) func(*http.Request) {
		return func(r *http.Request) { r.URL.RawQuery = "username=" + name }
	}

	require.Equal(t, http.StatusOK, get(h, "10.0.0.1:1", withUser("alice")).Code)
	require.Equal(t, http.StatusTooManyRequests, get(h, "10.0.0.1:1", withUser("alice")).Code)
	require.Equal(t, http.StatusOK, get(h, "10.0.0.1:1", withUser("bob")).Code)
}

func TestRateLimitBySession(t *testing.T) {
	t.Parallel()

	h := httpx.RateLimitBySession(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	})(okHandler)

	withCookie := func(v string) func(*http.Request) {
		return func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: v})
		}
	}

	require.Equal(t, http.StatusOK, get(h, "10.0.0.1:1", withCookie("one")).Code)
	require.Equal(t, http.StatusTooManyRequests, get(h, "10.0.0.1:1", withCookie("one")).Code)
	require.Equal(t, http.StatusOK, get(h, "10.0.0.1:1", withCookie("two")).Code)
	require.Equal(t, http.StatusOK, get(h, "10.0.0.1:1").Code)
}

func TestRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATELIMIT_TESTING_REQUESTS", "7")
	t.Setenv("RATELIMIT_TESTING_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_TESTING_BURST", "-1")

	def := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 2}
	got := httpx.RateLimitFromEnv("TESTING", def)

	require.Equal(t, 7, got.RequestsPerWindow)
	require.Equal(t, 30*time.Second, got.Window)
	require.Equal(t, 2, got.Burst)
}

func TestRateLimitProfiles(t *testing.T) {
	t.Parallel()

	for name, cfg := range map[string]httpx.RateLimitConfig{
		"auth":      httpx.AuthLimit,
		"assistant": httpx.AssistantLimit,
		"webhook":   httpx.WebhookLimit,
		"page":      httpx.PageLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.True(t, cfg.Window > 0)
			require.Positive(t, cfg.Burst)
		})
	}
}
