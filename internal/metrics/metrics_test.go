package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksSimulations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSimulation("first-half", 2*time.Millisecond, nil)
	rec.RecordSimulation("first-half", 3*time.Millisecond, errors.New("boom"))
	rec.RecordSimulation("second-half", time.Millisecond, nil)

	snap := rec.Simulations("first-half")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastLatency != 3*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if got := rec.Simulations("second-half").Calls; got != 1 {
		t.Fatalf("expected 1 second half, got %d", got)
	}
	if got := rec.Simulations("full-season"); got != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}

func TestRecorderTracksStoreCalls(t *testing.T) {
	rec := NewRecorder()
	rec.RecordStoreCall("redis", "get", time.Millisecond, nil)
	rec.RecordStoreCall("redis", "get", time.Millisecond, errors.New("down"))

	if snap := rec.StoreCalls("redis", "get"); snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected store snapshot %+v", snap)
	}
	if snap := rec.StoreCalls("redis", "put"); snap.Calls != 0 {
		t.Fatalf("expected no puts, got %+v", snap)
	}
}

func TestRecorderTracksInjuriesAndSeasons(t *testing.T) {
	rec := NewRecorder()
	rec.RecordInjury("ACL Tear (6 months)")
	rec.RecordInjury("ACL Tear (6 months)")
	rec.RecordSeasonEnd("promoted")

	if got := rec.Injuries("ACL Tear (6 months)"); got != 2 {
		t.Fatalf("expected 2 injuries, got %d", got)
	}
	if got := rec.SeasonEnds("promoted"); got != 1 {
		t.Fatalf("expected 1 promotion, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordSimulation("first-half", time.Millisecond, nil)
	rec.RecordStoreCall("memory", "get", time.Millisecond, nil)
	rec.RecordInjury("x")
	rec.RecordSeasonEnd("stayed")
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.Simulations("first-half").Calls != 0 || rec.Injuries("x") != 0 || rec.SeasonEnds("stayed") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestRecordHTTPRequestCountsServerErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordHTTPRequest("POST", "/careers", 201, 2*time.Millisecond)
	rec.RecordHTTPRequest("POST", "/careers", 500, 3*time.Millisecond)
	rec.RecordHTTPRequest("POST", "/careers", 409, time.Millisecond)

	snap := rec.HTTPRequests("POST", "/careers")
	if snap.Calls != 3 || snap.Errors != 1 || snap.LastLatency != time.Millisecond {
		t.Fatalf("unexpected http snapshot %+v", snap)
	}
	if rec.HTTPRequests("GET", "/careers").Calls != 0 {
		t.Fatalf("expected methods to be tracked separately")
	}
}
