package http

import (
	"net/http"
	"time"

	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/spanosdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	spanosdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get]
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, spanosdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Pings the database. A missing language model is reported but does not fail the probe.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	spanosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	spanosdk.HealthResponse	"database unreachable"
//	@Router			/readyz [get]
func ReadyzHandler(startTime time.Time, version string, st store.Store, assistantEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &spanosdk.HealthChecks{Database: "ok", Assistant: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if !assistantEnabled {
			checks.Assistant = "disabled"
		}

		httpx.WriteJSON(w, code, spanosdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
