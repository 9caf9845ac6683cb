package http

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/spano-fitness/spano/internal/fitness/service"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
	"github.com/spano-fitness/spano/pkg/spanosdk"

	_ "github.com/spano-fitness/spano/api/spano" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// SecureCookies marks the session cookie Secure. Enable behind TLS.
	SecureCookies bool

	// WebhookSecret, when set, must be sent in spanosdk.WebhookSecretHeader.
	WebhookSecret string

	// AssistantEnabled is reported by /readyz.
	AssistantEnabled bool

	Sessions         *service.SessionResolver
	TokenService     *service.TokenService
	UserService      *service.UserService
	MealService      *service.MealService
	Nutrition        *service.NutritionEngine
	WebhookService   *service.WebhookService
	AssistantService *service.AssistantService
}

func NewRouter(st store.Store, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(func(req *http.Request, v any) {
			slogx.FromContext(req.Context()).Error("panic serving request",
				"panic", v,
				"stack", string(debug.Stack()),
			)
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerAuth()
	r.registerAPI()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Spano Fitness API
//	@version		0.1.0
//	@description	Meal logging webhook and nutrition assistant of the Spano fitness tracker.
//	@description
//	@description	The HTML pages (/login, /signup, /dashboard, /admin/dashboard) share the
//	@description	access_token session cookie with /ai/ask.
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						access_token
//	@description				Session token. Format: "Bearer {token}".
//
//	@securityDefinitions.apikey	WebhookSecret
//	@in							header
//	@name						X-Webhook-Secret
//	@description				Shared secret, only required when WEBHOOK_SECRET is configured.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	pageLimit := httpx.RateLimitByIP(httpx.PageLimit)

	r.Mux.Handle("GET /{$}",
		httpx.Chain(r.withSession(pageRoute, r.handleRoot), pageLimit),
	)

	dash := &DashboardHandler{Meals: r.MealService, Nutrition: r.Nutrition}
	r.Mux.Handle("GET /dashboard",
		httpx.Chain(r.withSession(pageRoute, dash.HandleGet), pageLimit),
	)
	r.Mux.Handle("POST /dashboard/log-meal",
		httpx.Chain(r.withSession(pageRoute, dash.HandleLogMeal), pageLimit),
	)

	admin := &AdminHandler{Users: r.UserService}
	r.Mux.Handle("GET /admin/dashboard",
		httpx.Chain(r.withSession(pageRoute, admin.HandleGet), pageLimit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Users:         r.UserService,
		Tokens:        r.TokenService,
		SecureCookies: r.SecureCookies,
	}

	// Form views are cheap; only submissions get the strict limit.
	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(h.HandleLoginForm), httpx.RateLimitByIP(httpx.PageLimit)),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(r.withSession(pageRoute, h.HandleLogin),
			httpx.RateLimitByIPAndFormField(httpx.AuthLimit, "username"),
		),
	)

	r.Mux.Handle("GET /signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignupForm), httpx.RateLimitByIP(httpx.PageLimit)),
	)
	r.Mux.Handle("POST /signup",
		httpx.Chain(r.withSession(pageRoute, h.HandleSignup),
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)

	r.Mux.Handle("GET /logout", http.HandlerFunc(h.HandleLogout))
}

func (r *Router) registerAPI() {
	webhook := &WebhookHandler{Webhooks: r.WebhookService}
	r.Mux.Handle("POST /webhook/{$}",
		httpx.Chain(r.withSession(apiRoute, webhook.Handle),
			httpx.RateLimitByIP(httpx.WebhookLimit),
			httpx.RequireSharedSecret(spanosdk.WebhookSecretHeader, r.WebhookSecret, func(w http.ResponseWriter, req *http.Request) {
				slogx.FromContext(req.Context()).Warn("webhook secret mismatch")
				spanosdk.ErrUnauthenticated.WithDescription("missing or wrong webhook secret").WriteError(w)
			}),
		),
	)

	ask := &AssistantHandler{Assistant: r.AssistantService}
	r.Mux.Handle("POST /ai/ask",
		httpx.Chain(r.withSession(apiRoute, ask.Handle),
			httpx.RateLimitBySession(httpx.AssistantLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.AssistantEnabled))
}
