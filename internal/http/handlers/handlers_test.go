package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/football-career-sim/internal/app/careers"
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/http/middleware"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
	"github.com/preston-bernstein/football-career-sim/internal/store"
	"github.com/preston-bernstein/football-career-sim/internal/testutil"
)

const createBody = `{"name":"Sam Rivers","nationality":"England","age":17,"position":"Forward"}`

func newCareerService() (*careers.Service, *store.MemoryStore) {
	st := store.NewMemoryStore()
	n := 0
	svc := careers.NewService(st, roster.Fixture(), careers.Options{
		Seed:  7,
		NewID: func() string { n++; return fmt.Sprintf("c%d", n) },
	})
	return svc, st
}

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

func createCareer(t *testing.T, router http.Handler) domain.Career {
	t.Helper()
	rr := testutil.Serve(router, http.MethodPost, "/careers", strings.NewReader(createBody))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var c domain.Career
	testutil.DecodeJSON(t, rr, &c)
	return c
}

func TestHealth(t *testing.T) {
	svc, _ := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	svc, _ := newCareerService()
	h := NewHandler(svc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	svc, _ := newCareerService()

	rr := testutil.Serve(newRouter(NewHandler(svc, nil, nil)), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	down := func(context.Context) error { return errors.New("redis unreachable") }
	rr = testutil.Serve(newRouter(NewHandler(svc, down, nil)), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "redis unreachable" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestCreateAndFetchCareer(t *testing.T) {
	svc, _ := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))

	c := createCareer(t, router)
	if c.ID != "c1" || c.Player.Name != "Sam Rivers" || c.Phase != domain.PhasePreSeason {
		t.Fatalf("unexpected career %+v", c)
	}

	rr := testutil.Serve(router, http.MethodGet, "/careers/c1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/careers", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var list CareersResponse
	testutil.DecodeJSON(t, rr, &list)
	if len(list.Careers) != 1 {
		t.Fatalf("expected one career, got %d", len(list.Careers))
	}
}

func TestCreateCareerRejectsBadBodies(t *testing.T) {
	svc, _ := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))

	for _, body := range []string{
		`not json`,
		`{"name":"x","nationality":"England","age":17,"position":"Forward","shoeSize":9}`,
		`{"name":"","nationality":"England","age":17,"position":"Forward"}`,
		`{"name":"x","nationality":"England","age":3,"position":"Forward"}`,
	} {
		rr := testutil.Serve(router, http.MethodPost, "/careers", strings.NewReader(body))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestListCareersEmpty(t *testing.T) {
	svc, _ := newCareerService()
	rr := testutil.Serve(newRouter(NewHandler(svc, nil, nil)), http.MethodGet, "/careers", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"careers":[]`) {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
}

func TestSimulateSeason(t *testing.T) {
	svc, _ := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))
	createCareer(t, router)

	rr := testutil.Serve(router, http.MethodPost, "/careers/c1/seasons/second-half", nil)
	testutil.AssertStatus(t, rr, http.StatusConflict)

	rr = testutil.Serve(router, http.MethodPost, "/careers/c1/seasons/first-half", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var out careers.Outcome
	testutil.DecodeJSON(t, rr, &out)
	if out.Career.Phase != domain.PhaseMidSeason || out.Season != nil {
		t.Fatalf("expected mid-season, got %s", out.Career.Phase)
	}

	rr = testutil.Serve(router, http.MethodPost, "/careers/c1/seasons/second-half", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &out)
	if out.Season == nil || out.Career.Year != 2025 {
		t.Fatalf("expected closed season, got %+v", out.Career.Year)
	}

	rr = testutil.Serve(router, http.MethodPost, "/careers/c1/seasons/full-season", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodPost, "/careers/c1/seasons/extra-time", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(router, http.MethodGet, "/careers/c1/world", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var world domain.WorldTables
	testutil.DecodeJSON(t, rr, &world)
	if len(world) == 0 {
		t.Fatalf("expected league tables")
	}
}

func TestUnknownCareerIsNotFound(t *testing.T) {
	svc, _ := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/careers/missing"},
		{http.MethodPost, "/careers/missing/seasons/first-half"},
		{http.MethodGet, "/careers/missing/offers"},
		{http.MethodGet, "/careers/missing/world"},
		{http.MethodPost, "/careers/missing/retire"},
		{http.MethodPost, "/careers/missing/release"},
	} {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	}
}

func TestOffersAndAccept(t *testing.T) {
	svc, st := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))
	_ = st.Put(context.Background(), testutil.SampleCareer("c9", "Chelsea", 86))

	rr := testutil.Serve(router, http.MethodGet, "/careers/c9/offers", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var offers OffersResponse
	testutil.DecodeJSON(t, rr, &offers)
	if len(offers.Offers) == 0 || offers.Offers[0].ID != "renewal" {
		t.Fatalf("expected a renewal, got %+v", offers.Offers)
	}

	rr = testutil.Serve(router, http.MethodPost, "/careers/c9/offers/renewal/accept", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var c domain.Career
	testutil.DecodeJSON(t, rr, &c)
	if c.Player.Contract.YearsLeft != 3 {
		t.Fatalf("expected renewed contract, got %+v", c.Player.Contract)
	}

	rr = testutil.Serve(router, http.MethodPost, "/careers/c9/offers/renewal/accept", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestReleaseRetireAndHallOfFame(t *testing.T) {
	svc, _ := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))
	createCareer(t, router)

	rr := testutil.Serve(router, http.MethodGet, "/hall-of-fame", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"entries":[]`) {
		t.Fatalf("expected empty hall of fame, got %s", rr.Body.String())
	}

	rr = testutil.Serve(router, http.MethodPost, "/careers/c1/release", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var c domain.Career
	testutil.DecodeJSON(t, rr, &c)
	if !c.Player.CurrentClub.IsFreeAgent() {
		t.Fatalf("expected free agent, got %s", c.Player.CurrentClub.Name)
	}

	rr = testutil.Serve(router, http.MethodPost, "/careers/c1/retire", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var entry domain.HallOfFameEntry
	testutil.DecodeJSON(t, rr, &entry)
	if entry.CareerID != "c1" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	rr = testutil.Serve(router, http.MethodPost, "/careers/c1/seasons/first-half", nil)
	testutil.AssertStatus(t, rr, http.StatusConflict)

	rr = testutil.Serve(router, http.MethodGet, "/hall-of-fame", nil)
	var hof HallOfFameResponse
	testutil.DecodeJSON(t, rr, &hof)
	if len(hof.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(hof.Entries))
	}
}

func TestMethodNotAllowed(t *testing.T) {
	svc, _ := newCareerService()
	router := newRouter(NewHandler(svc, nil, nil))

	rr := testutil.Serve(router, http.MethodDelete, "/careers", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRequestIDPropagatesThroughMiddleware(t *testing.T) {
	svc, _ := newCareerService()
	wrapped := middleware.LoggingMiddleware(nil, nil, newRouter(NewHandler(svc, nil, nil)))

	req := httptest.NewRequest(http.MethodGet, "/careers/missing", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := testutil.ServeRequest(wrapped, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["requestId"] != "req-42" {
		t.Fatalf("expected request id in error body, got %+v", resp)
	}
}
