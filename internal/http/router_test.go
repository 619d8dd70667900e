package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/football-career-sim/internal/app/careers"
	"github.com/preston-bernstein/football-career-sim/internal/http/handlers"
	"github.com/preston-bernstein/football-career-sim/internal/metrics"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
	"github.com/preston-bernstein/football-career-sim/internal/store"
	"github.com/preston-bernstein/football-career-sim/internal/testutil"
)

func newTestRouter(rec *metrics.Recorder) http.Handler {
	svc := careers.NewService(store.NewMemoryStore(), roster.Fixture(), careers.Options{Seed: 3})
	logger, _ := testutil.NewBufferLogger()
	return NewRouter(RouterConfig{
		Handler:     handlers.NewHandler(svc, nil, logger),
		Admin:       handlers.NewAdminHandler(svc, "secret", logger),
		Logger:      logger,
		Recorder:    rec,
		CORSOrigins: []string{"http://localhost:5173"},
		Timeout:     time.Second,
	})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(metrics.NewRecorder())

	cases := map[string]int{
		"/health":            http.StatusOK,
		"/ready":             http.StatusOK,
		"/careers":           http.StatusOK,
		"/hall-of-fame":      http.StatusOK,
		"/careers/foo":       http.StatusNotFound,
		"/careers/foo/world": http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if !strings.Contains(rr.Body.String(), `"error":"not found"`) {
		t.Fatalf("expected json error, got %s", rr.Body.String())
	}

	rr = testutil.Serve(router, http.MethodPut, "/careers", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterRecordsRoutePatterns(t *testing.T) {
	rec := metrics.NewRecorder()
	router := newTestRouter(rec)

	testutil.Serve(router, http.MethodGet, "/careers/a", nil)
	testutil.Serve(router, http.MethodGet, "/careers/b", nil)

	// Nested index routes may carry a trailing slash depending on chi's version.
	got := rec.HTTPRequests(http.MethodGet, "/careers/{id}").Calls + rec.HTTPRequests(http.MethodGet, "/careers/{id}/").Calls
	if got != 2 {
		t.Fatalf("expected both lookups under one pattern, got %d", got)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/careers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := testutil.ServeRequest(router, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}
}

func TestRouterMountsAdmin(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.Serve(router, http.MethodDelete, "/admin/careers/x", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}
