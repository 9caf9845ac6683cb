package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spano-fitness/spano/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket: RequestsPerWindow refill per Window, up to Burst.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Profiles per route class. Each can be overridden with
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and RATELIMIT_<NAME>_BURST.
var (
	// AuthLimit guards login and signup.
	AuthLimit = RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 5}

	// AssistantLimit guards the language-model endpoint, which costs money per call.
	AssistantLimit = RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 3}

	// WebhookLimit guards the meal-logging webhook.
	WebhookLimit = RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 20}

	// PageLimit covers ordinary page views.
	PageLimit = RateLimitConfig{RequestsPerWindow: 300, Window: time.Minute, Burst: 100}
)

func init() {
	AuthLimit = RateLimitFromEnv("AUTH", AuthLimit)
	AssistantLimit = RateLimitFromEnv("ASSISTANT", AssistantLimit)
	WebhookLimit = RateLimitFromEnv("WEBHOOK", WebhookLimit)
	PageLimit = RateLimitFromEnv("PAGE", PageLimit)
}

// RateLimitFromEnv overlays positive integer env overrides onto def.
func RateLimitFromEnv(name string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	if n, ok := positiveEnv("RATELIMIT_" + name + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnv("RATELIMIT_" + name + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv("RATELIMIT_" + name + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor picks the bucket a request is charged to. "" means unkeyed.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor uses the first X-Forwarded-For hop, then X-Real-IP, then RemoteAddr.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormFieldKeyExtractor keys on a form or query field, e.g. the login username.
func FormFieldKeyExtractor(field string) KeyExtractor {
	return func(r *http.Request) string {
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.FormValue(field)
	}
}

// SessionKeyExtractor keys on the session cookie so each signed-in browser
// gets its own bucket.
func SessionKeyExtractor(r *http.Request) string {
	return SessionCookieValue(r)
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, ex := range extractors {
			if k := ex(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

const idleBucketTTL = 10 * time.Minute

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds one token bucket per key.
type RateLimiter struct {
	cfg RateLimitConfig
	key KeyExtractor

	mu       sync.Mutex
	buckets  map[string]*bucket
	lastScan time.Time
}

// NewRateLimiter builds a limiter. A zero Window is treated as one minute.
func NewRateLimiter(cfg RateLimitConfig, key KeyExtractor) *RateLimiter {
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &RateLimiter{cfg: cfg, key: key, buckets: make(map[string]*bucket), lastScan: time.Now()}
}

// Allow reports whether key may proceed now and, if not, how long to wait.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	b, ok := rl.buckets[key]
	if !ok {
		perSecond := float64(rl.cfg.RequestsPerWindow) / rl.cfg.Window.Seconds()
		b = &bucket{lim: rate.NewLimiter(rate.Limit(perSecond), rl.cfg.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	rl.evictIdleLocked(now)
	rl.mu.Unlock()

	res := b.lim.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (rl *RateLimiter) evictIdleLocked(now time.Time) {
	if now.Sub(rl.lastScan) < idleBucketTTL {
		return
	}
	rl.lastScan = now
	for k, b := range rl.buckets {
		if now.Sub(b.lastSeen) > idleBucketTTL {
			delete(rl.buckets, k)
		}
	}
}

// Middleware answers 429 with a JSON body once a key's bucket is empty.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rl.key(r)
			if key == "" {
				slogx.FromContext(r.Context()).Debug("rate limit: no key, letting request through")
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := rl.Allow(key)
			if !ok {
				retryAfter := max(int(wait.Seconds()+0.5), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.cfg.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", rl.cfg.Window.String())

				slogx.FromContext(r.Context()).Warn("rate limit exceeded",
					"key", key,
					"path", r.URL.Path,
					"retry_after", retryAfter,
				)
				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"error":             "rate_limit_exceeded",
					"error_description": "Too many requests. Please try again later.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits per client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return NewRateLimiter(cfg, IPKeyExtractor).Middleware()
}

// RateLimitByIPAndFormField limits per (address, form field) pair.
func RateLimitByIPAndFormField(cfg RateLimitConfig, field string) Middleware {
	return NewRateLimiter(cfg, CompositeKeyExtractor(":", IPKeyExtractor, FormFieldKeyExtractor(field))).Middleware()
}

// RateLimitBySession limits per session cookie, falling back to the address.
func RateLimitBySession(cfg RateLimitConfig) Middleware {
	return NewRateLimiter(cfg, func(r *http.Request) string {
		if k := SessionKeyExtractor(r); k != "" {
			return "s:" + k
		}
		return "ip:" + IPKeyExtractor(r)
	}).Middleware()
}
