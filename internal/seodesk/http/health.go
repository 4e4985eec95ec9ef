package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/jwtx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Always 200 while the process is serving, with uptime and version.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	seosdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, seosdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Checks the database, the token verification keys and the job queue.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	seosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	seosdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
	queue jobs.Queue,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &seosdk.HealthChecks{
			Database: "ok",
			Keys:     "ok",
			Jobs:     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK
		degrade := func() {
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			degrade()
		}

		// Tokens cannot be verified until the JWKS has been loaded
		if !keys.IsReady() {
			checks.Keys = "error: no keys loaded"
			degrade()
		}

		if queue != nil {
			if err := queue.Ping(r.Context()); err != nil {
				checks.Jobs = "error: " + err.Error()
				degrade()
			}
		}

		httpx.WriteJSON(w, statusCode, seosdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
