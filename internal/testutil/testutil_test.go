package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/metrics"
)

func TestClockHelpers(t *testing.T) {
	open := SeasonOpening(2026)
	if open.Year() != 2026 || open.Month() != time.July || open.Location() != time.UTC {
		t.Fatalf("unexpected season opening %v", open)
	}
	if got := NowAt(open)(); !got.Equal(open) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	tick := Ticking(open, time.Minute)
	if !tick().Equal(open) || !tick().Equal(open.Add(time.Minute)) {
		t.Fatalf("expected the clock to advance by one step per call")
	}
}

func TestFixtures(t *testing.T) {
	p := SamplePlayer("Leeds", 70)
	if p.CurrentClub.Name != "Leeds" || p.CurrentAbility != 70 || p.MarketValue <= 0 {
		t.Fatalf("unexpected player fixture %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("fixture should be valid: %v", err)
	}
	if !SamplePlayer("Nowhere Town", 50).CurrentClub.IsFreeAgent() {
		t.Fatalf("expected unknown club to leave the player unattached")
	}
	if p.MarketValue != MarketValue(70, 25, 75, domain.PositionMID, 2) {
		t.Fatalf("expected fixture priced by the market, got %d", p.MarketValue)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected invalid market inputs to panic")
			}
		}()
		MarketValue(-1, 25, 70, domain.PositionMID, 2)
	}()
	c := SampleCareer("c1", "Chelsea", 80)
	if c.ID != "c1" || c.Phase != domain.PhasePreSeason || c.Year != 2024 {
		t.Fatalf("unexpected career fixture %+v", c)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	})

	rr := Serve(handler, http.MethodPost, "/careers", JSONBody(t, map[string]string{"name": "Sam"}))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]string
	DecodeJSON(t, rr, &body)
	if body["echo"] != "Sam" {
		t.Fatalf("expected echoed name, got %+v", body)
	}

	req := httptest.NewRequest(http.MethodGet, "/careers", nil)
	AssertStatus(t, ServeRequest(handler, req), http.StatusCreated)
}

func TestSaveHelpers(t *testing.T) {
	w := NewTempWriter(t, 5)
	c := SampleCareer("c1", "Leeds", 60)
	WriteSave(t, w, c)
	data, err := os.ReadFile(SavePath(w, c))
	if err != nil {
		t.Fatalf("expected save file, got %v", err)
	}
	if !strings.Contains(string(data), `"c1"`) {
		t.Fatalf("expected save contents, got %s", data)
	}
}

func TestScriptedSource(t *testing.T) {
	s := &ScriptedSource{Ints: []int{99, -5, 4}, Floats: []float64{0.25}, FallbackFloat: 0.5}
	if s.Int(0, 10) != 10 || s.Int(0, 10) != 0 || s.Int(10, 0) != 4 {
		t.Fatalf("expected scripted ints clamped into range")
	}
	if s.Int(3, 7) != 3 || s.Float64() != 0.25 || s.Float64() != 0.5 {
		t.Fatalf("expected fallbacks once scripts run out")
	}
	if FixedSource(0.1, true).Int(1, 6) != 6 {
		t.Fatalf("expected high fallback")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("half simulated", "half", "first-half")
	AssertLogged(t, buf, "half simulated", "half=first-half")

	rec := metrics.NewRecorder()
	rec.RecordSimulation("first-half", time.Millisecond, nil)
	AssertSimulations(t, rec, "first-half", 1)
	AssertSimulations(t, rec, "second-half", 0)
}
