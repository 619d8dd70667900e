package metrics

import (
	"errors"
	"sync"
	"time"
)

var errServerStatus = errors.New("server error")

type counterStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory counters for simulations and
// store calls, and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu       sync.Mutex
	sims     map[string]*counterStats
	stores   map[string]*counterStats
	injuries map[string]int
	seasons  map[string]int
	requests map[string]*counterStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sims:     make(map[string]*counterStats),
		stores:   make(map[string]*counterStats),
		injuries: make(map[string]int),
		seasons:  make(map[string]int),
		requests: make(map[string]*counterStats),
		otel:     otel,
	}
}

// RecordSimulation counts one simulated half and its latency.
func (r *Recorder) RecordSimulation(half string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.bump(r.sims, half, duration, err)
	if r.otel != nil {
		r.otel.recordSimulation(half, duration, err)
	}
}

// RecordStoreCall counts one career store operation.
func (r *Recorder) RecordStoreCall(store, op string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.bump(r.stores, store+":"+op, duration, err)
	if r.otel != nil {
		r.otel.recordStoreCall(store, op, duration, err)
	}
}

// RecordInjury counts an injury by description.
func (r *Recorder) RecordInjury(description string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.injuries[description]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordInjury(description)
	}
}

// RecordSeasonEnd counts a finalized season by what happened to the club.
func (r *Recorder) RecordSeasonEnd(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.seasons[outcome]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSeasonEnd(outcome)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics. 5xx responses count as errors.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	var err error
	if status >= 500 {
		err = errServerStatus
	}
	r.bump(r.requests, method+" "+path, duration, err)
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Snapshot is a copy of the counters for one key.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

// Simulations returns the counters for a half.
func (r *Recorder) Simulations(half string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return r.snapshot(r.sims, half)
}

// StoreCalls returns the counters for a store operation.
func (r *Recorder) StoreCalls(store, op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return r.snapshot(r.stores, store+":"+op)
}

// Injuries returns how many times an injury was recorded.
func (r *Recorder) Injuries(description string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.injuries[description]
}

// HTTPRequests returns the counters for a routed request pattern.
func (r *Recorder) HTTPRequests(method, path string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return r.snapshot(r.requests, method+" "+path)
}

// SeasonEnds returns how many finalized seasons ended with outcome.
func (r *Recorder) SeasonEnds(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seasons[outcome]
}

func (r *Recorder) bump(m map[string]*counterStats, key string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := m[key]
	if !ok {
		stats = &counterStats{}
		m[key] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
}

func (r *Recorder) snapshot(m map[string]*counterStats, key string) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := m[key]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{Calls: stats.calls, Errors: stats.errors, LastLatency: stats.lastLatency}
}
