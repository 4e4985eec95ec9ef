package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandlerUsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/members/{memberId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := InstrumentHandler(mux)

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/members/{memberId}", "418"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/members/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/members/{memberId}", "418"))
	require.Equal(t, before+2, after)
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(inviteTransitions.WithLabelValues("accepted"))
	InviteTransition("ACCEPTED")
	require.Equal(t, before+1, testutil.ToFloat64(inviteTransitions.WithLabelValues("accepted")))

	beforeJobs := testutil.ToFloat64(jobs.WithLabelValues("keyword.analyze", "success"))
	RecordJob("keyword.analyze", "success", 20*time.Millisecond)
	require.Equal(t, beforeJobs+1, testutil.ToFloat64(jobs.WithLabelValues("keyword.analyze", "success")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	InviteIssued()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "seodesk_invites_issued_total")
}
