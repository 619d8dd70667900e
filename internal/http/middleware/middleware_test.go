package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/football-career-sim/internal/metrics"
	"github.com/preston-bernstein/football-career-sim/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndRecordsMetrics(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	r := chi.NewRouter()
	r.Use(Logging(logger, rec))
	r.Get("/careers/{id}", func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.Serve(r, http.MethodGet, "/careers/abc", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rec.HTTPRequests(http.MethodGet, "/careers/{id}").Calls; got != 1 {
		t.Fatalf("expected request recorded under route pattern, got %d", got)
	}
	testutil.AssertLogged(t, buf, "status_code=418")
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, nil, next)
	rr := testutil.Serve(handler, http.MethodGet, "/health?foo=bar", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestLoggingMiddlewareKeepsValidRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "trace-1" {
			t.Fatalf("expected incoming id, got %s", got)
		}
	}))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-1")
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	rr := testutil.ServeRequest(handler, req)

	if rr.Header().Get("X-Request-ID") != "trace-1" {
		t.Fatalf("expected request id echoed")
	}
	testutil.AssertLogged(t, buf, "client_ip=198.51.100.1")
}

func TestUnroutedRequestsShareALabel(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	handler := LoggingMiddleware(logger, rec, http.NotFoundHandler())

	testutil.Serve(handler, http.MethodGet, "/nope/1", nil)
	testutil.Serve(handler, http.MethodGet, "/nope/2", nil)

	if got := rec.HTTPRequests(http.MethodGet, "unmatched").Calls; got != 2 {
		t.Fatalf("expected unmatched requests grouped, got %d", got)
	}
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, status: http.StatusOK}
	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected first status kept, got %d", w.status)
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}
	//nolint:staticcheck // nil context is part of the contract
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/careers", nil)
		handler.ServeHTTP(rr, req)
	}
}
