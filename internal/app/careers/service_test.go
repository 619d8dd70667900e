package careers

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/metrics"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
	"github.com/preston-bernstein/football-career-sim/internal/season"
	"github.com/preston-bernstein/football-career-sim/internal/snapshots"
	"github.com/preston-bernstein/football-career-sim/internal/store"
	"github.com/preston-bernstein/football-career-sim/internal/testutil"
)

var fixedNow = testutil.SeasonOpening(2024)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("career-%d", n)
	}
}

func newService(t *testing.T, opts Options) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	if opts.Seed == 0 && opts.Source == nil {
		opts.Seed = 42
	}
	if opts.NewID == nil {
		opts.NewID = sequentialIDs()
	}
	if opts.Now == nil {
		opts.Now = testutil.NowAt(fixedNow)
	}
	return NewService(st, roster.Fixture(), opts), st
}

func seedCareer(t *testing.T, st *store.MemoryStore, id, club string, ability int) domain.Career {
	t.Helper()
	career := testutil.SampleCareer(id, club, ability)
	if career.Player.CurrentClub.IsFreeAgent() {
		t.Fatalf("unknown fixture club %s", club)
	}
	if err := st.Put(context.Background(), career); err != nil {
		t.Fatalf("seed career: %v", err)
	}
	return career
}

func validRequest() CreateRequest {
	return CreateRequest{Name: "Sam Rivers", Nationality: "England", Age: 16, Position: domain.PositionFWD}
}

func TestCreateRollsYouthProspect(t *testing.T) {
	svc, _ := newService(t, Options{
		Source: func(string, uint64) rng.Source { return testutil.FixedSource(0, false) },
	})

	c, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p := c.Player
	if p.CurrentAbility != 35 || p.PotentialAbility != 55 || p.NaturalFitness != 50 || p.InjuryProne != 1 {
		t.Fatalf("unexpected attributes %+v", p)
	}
	if p.CurrentClub.Country != "England" {
		t.Fatalf("expected a home club, got %s", p.CurrentClub.Country)
	}
	want := domain.Contract{Wage: 100, YearsLeft: 3, ExpiryYear: 2027, Type: domain.ContractYouth, PromisedRole: domain.RoleYouth}
	if p.Contract != want {
		t.Fatalf("unexpected contract %+v", p.Contract)
	}
	if c.ID != "career-1" || c.Year != 2024 || c.Phase != domain.PhasePreSeason || p.Form != 50 {
		t.Fatalf("unexpected career %+v", c)
	}
	if len(c.World) != len(roster.Fixture().Leagues()) {
		t.Fatalf("expected a table per league, got %d", len(c.World))
	}
	if p.MarketValue != testutil.MarketValue(35, 16, 55, domain.PositionFWD, 3) {
		t.Fatalf("unexpected market value %d", p.MarketValue)
	}
}

func TestCreateHonoursOverrides(t *testing.T) {
	svc, st := newService(t, Options{})
	req := validRequest()
	req.StartingClub = "Arsenal"
	req.StartingAbility = 60
	req.PotentialAbility = 80
	req.InjuryProneness = 20
	req.Modifiers.InjuriesOff = true

	c, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p := c.Player
	if p.CurrentClub.Name != "Arsenal" || p.CurrentAbility != 60 || p.PotentialAbility != 80 || p.InjuryProne != 20 {
		t.Fatalf("overrides ignored: %+v", p)
	}
	if !p.Modifiers.InjuriesOff {
		t.Fatalf("modifiers not carried")
	}
	if _, err := st.Get(context.Background(), c.ID); err != nil {
		t.Fatalf("career not stored: %v", err)
	}
}

func TestCreateRejectsBadRequests(t *testing.T) {
	svc, _ := newService(t, Options{})
	cases := map[string]func(*CreateRequest){
		"name":     func(r *CreateRequest) { r.Name = " " },
		"nation":   func(r *CreateRequest) { r.Nationality = "" },
		"young":    func(r *CreateRequest) { r.Age = 9 },
		"old":      func(r *CreateRequest) { r.Age = 50 },
		"position": func(r *CreateRequest) { r.Position = "Sweeper" },
		"ability":  func(r *CreateRequest) { r.StartingAbility = 120 },
		"club":     func(r *CreateRequest) { r.StartingClub = "Atlantis FC" },
	}
	for name, mutate := range cases {
		req := validRequest()
		mutate(&req)
		if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("%s: expected ErrInvalidRequest, got %v", name, err)
		}
	}
}

func TestSeasonCycle(t *testing.T) {
	rec := metrics.NewRecorder()
	svc, _ := newService(t, Options{Recorder: rec})
	ctx := context.Background()
	c, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SimulateHalf(ctx, c.ID, season.SecondHalf); !errors.Is(err, ErrNoSeasonInProgress) {
		t.Fatalf("expected ErrNoSeasonInProgress, got %v", err)
	}

	first, err := svc.SimulateHalf(ctx, c.ID, season.FirstHalf)
	if err != nil {
		t.Fatalf("first half: %v", err)
	}
	if first.Career.Phase != domain.PhaseMidSeason || first.Career.MidSeason == nil || first.Season != nil {
		t.Fatalf("expected a paused season, got %+v", first.Career.Phase)
	}
	if _, err := svc.SimulateHalf(ctx, c.ID, season.FirstHalf); !errors.Is(err, ErrSeasonInProgress) {
		t.Fatalf("expected ErrSeasonInProgress, got %v", err)
	}
	if _, err := svc.Retire(ctx, c.ID); !errors.Is(err, ErrSeasonInProgress) {
		t.Fatalf("cannot retire mid-season, got %v", err)
	}
	if _, err := svc.Release(ctx, c.ID); !errors.Is(err, ErrSeasonInProgress) {
		t.Fatalf("cannot walk out mid-season, got %v", err)
	}

	second, err := svc.SimulateHalf(ctx, c.ID, season.SecondHalf)
	if err != nil {
		t.Fatalf("second half: %v", err)
	}
	got := second.Career
	if got.Year != 2025 || got.Phase != domain.PhasePreSeason || got.MidSeason != nil {
		t.Fatalf("expected next pre-season, got %d %s", got.Year, got.Phase)
	}
	if len(got.Player.History) != 1 || got.Player.Age != 17 || second.Season == nil {
		t.Fatalf("season not closed out: %+v", got.Player.History)
	}
	record := got.Player.History[0]
	wantMatches := first.Performance.Stats.League.Matches + second.Performance.Stats.League.Matches
	if record.Year != 2024 || record.Stats.League.Matches != wantMatches {
		t.Fatalf("halves not merged: %d vs %d", record.Stats.League.Matches, wantMatches)
	}
	for _, e := range first.Performance.Events {
		found := false
		for _, have := range record.Events {
			found = found || have == e
		}
		if !found {
			t.Fatalf("first-half event %q lost", e)
		}
	}

	testutil.AssertSimulations(t, rec, season.FirstHalf.String(), 1)
	testutil.AssertSimulations(t, rec, season.SecondHalf.String(), 1)
	if rec.SeasonEnds(string(second.Season.Club)) != 1 {
		t.Fatalf("season end not recorded")
	}
}

func TestTimestampsFollowClock(t *testing.T) {
	svc, _ := newService(t, Options{Now: testutil.Ticking(fixedNow, time.Hour)})
	ctx := context.Background()

	c, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !c.CreatedAt.Equal(fixedNow) || !c.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("expected creation stamped once, got %v %v", c.CreatedAt, c.UpdatedAt)
	}
	out, err := svc.SimulateHalf(ctx, c.ID, season.FirstHalf)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !out.Career.UpdatedAt.Equal(fixedNow.Add(time.Hour)) || !out.Career.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected only UpdatedAt to move, got %v %v", out.Career.CreatedAt, out.Career.UpdatedAt)
	}
}

func TestFullSeasonInOneCall(t *testing.T) {
	svc, st := newService(t, Options{})
	seedCareer(t, st, "c1", "Aston Villa", 78)

	out, err := svc.SimulateHalf(context.Background(), "c1", season.FullSeason)
	if err != nil {
		t.Fatalf("full season: %v", err)
	}
	if out.Career.Year != 2025 || len(out.Career.Player.History) != 1 || out.Career.Player.Contract.YearsLeft != 1 {
		t.Fatalf("unexpected career after full season %+v", out.Career.Player.Contract)
	}
	if out.Career.Player.History[0].Stats.League.Matches == 0 {
		t.Fatalf("expected league football for a senior regular")
	}
}

func TestExpiredContractMustBeResolved(t *testing.T) {
	svc, st := newService(t, Options{})
	c := seedCareer(t, st, "c1", "Leeds", 70)
	c.Player.Contract.YearsLeft = 0
	_ = st.Put(context.Background(), c)
	ctx := context.Background()

	if _, err := svc.SimulateHalf(ctx, "c1", season.FirstHalf); !errors.Is(err, ErrContractExpired) {
		t.Fatalf("expected ErrContractExpired, got %v", err)
	}
	released, err := svc.Release(ctx, "c1")
	if err != nil || !released.Player.CurrentClub.IsFreeAgent() {
		t.Fatalf("expected free agent, got %+v %v", released.Player.CurrentClub, err)
	}
	again, err := svc.Release(ctx, "c1")
	if err != nil || !again.Player.CurrentClub.IsFreeAgent() {
		t.Fatalf("releasing a free agent should be a no-op, got %v", err)
	}
	out, err := svc.SimulateHalf(ctx, "c1", season.FirstHalf)
	if err != nil {
		t.Fatalf("free agents can play out a season: %v", err)
	}
	if out.Performance.Stats.Level != domain.LevelFreeAgent {
		t.Fatalf("expected free agent level, got %s", out.Performance.Stats.Level)
	}
}

func TestForcedRetirementAndHallOfFame(t *testing.T) {
	svc, st := newService(t, Options{})
	c := seedCareer(t, st, "c1", "Chelsea", 80)
	c.Player.Fatigue = 111
	c.Player.History = []domain.SeasonRecord{{Year: 2023, Stats: domain.SeasonStats{Total: domain.StatSet{Matches: 30, Goals: 9, Rating: 7.2}}}}
	_ = st.Put(context.Background(), c)
	ctx := context.Background()

	if _, err := svc.SimulateHalf(ctx, "c1", season.FirstHalf); !errors.Is(err, ErrMustRetire) {
		t.Fatalf("expected ErrMustRetire, got %v", err)
	}
	entry, err := svc.Retire(ctx, "c1")
	if err != nil {
		t.Fatalf("retire: %v", err)
	}
	if entry.CareerID != "c1" || entry.Apps != 30 || entry.Goals != 9 || entry.RetiredYear != 2024 {
		t.Fatalf("unexpected entry %+v", entry)
	}

	hof, err := svc.HallOfFame(ctx)
	if err != nil || len(hof) != 1 || hof[0].CareerID != "c1" {
		t.Fatalf("unexpected hall of fame %+v %v", hof, err)
	}
	if _, err := svc.Retire(ctx, "c1"); !errors.Is(err, ErrRetired) {
		t.Fatalf("expected ErrRetired, got %v", err)
	}
	if _, err := svc.Offers(ctx, "c1"); !errors.Is(err, ErrRetired) {
		t.Fatalf("expected ErrRetired, got %v", err)
	}
	got, _ := svc.Get(ctx, "c1")
	if !got.Retired() {
		t.Fatalf("career should be frozen")
	}
}

func TestOffersAreDrawnOnceAndAccepted(t *testing.T) {
	svc, st := newService(t, Options{})
	c := seedCareer(t, st, "c1", "Man City", 70)
	c.Player.MarketValue = 100_000
	_ = st.Put(context.Background(), c)
	ctx := context.Background()

	offers, err := svc.Offers(ctx, "c1")
	if err != nil {
		t.Fatalf("offers: %v", err)
	}
	if len(offers) != 4 || offers[0].ID != "renewal" {
		t.Fatalf("expected a renewal and three loans, got %+v", offers)
	}
	again, _ := svc.Offers(ctx, "c1")
	if !reflect.DeepEqual(offers, again) {
		t.Fatalf("window should not be redrawn")
	}

	loan := offers[1]
	if loan.Type != domain.OfferLoan {
		t.Fatalf("expected a loan, got %s", loan.Type)
	}
	got, err := svc.AcceptOffer(ctx, "c1", loan.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !got.Player.OnLoan() || got.Player.CurrentClub.Name != loan.Club.Name || got.Player.ParentClub.Name != "Man City" {
		t.Fatalf("expected loan move, got %+v", got.Player.CurrentClub)
	}
	if len(got.Offers) != 0 {
		t.Fatalf("accepting should close the window")
	}
	if _, err := svc.AcceptOffer(ctx, "c1", loan.ID); !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestRenewalAccepted(t *testing.T) {
	svc, st := newService(t, Options{})
	seedCareer(t, st, "c1", "Chelsea", 86)
	ctx := context.Background()

	if _, err := svc.Offers(ctx, "c1"); err != nil {
		t.Fatalf("offers: %v", err)
	}
	got, err := svc.AcceptOffer(ctx, "c1", "renewal")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if got.Player.Contract.Wage != 11_000 || got.Player.Contract.YearsLeft != 3 || got.Player.Contract.ExpiryYear != 2027 {
		t.Fatalf("unexpected contract %+v", got.Player.Contract)
	}
}

func TestLoanExtensionKeepsPlayerAtLoanClub(t *testing.T) {
	svc, st := newService(t, Options{})
	c := seedCareer(t, st, "c1", "Leeds", 70)
	parent, _ := roster.Fixture().Club("Arsenal")
	c.Player.ParentClub = &parent
	c.Player.Contract.YearsLeft = 3
	_ = st.Put(context.Background(), c)
	ctx := context.Background()

	if _, err := svc.SimulateHalf(ctx, "c1", season.FirstHalf); err != nil {
		t.Fatalf("first half: %v", err)
	}
	offers, err := svc.Offers(ctx, "c1")
	if err != nil {
		t.Fatalf("offers: %v", err)
	}
	for _, o := range offers {
		if o.Type == domain.OfferLoan {
			t.Fatalf("a loanee should not be offered another loan")
		}
	}
	if len(offers) == 0 || offers[0].Type != domain.OfferExtension {
		t.Fatalf("expected an extension first, got %+v", offers)
	}
	mid, err := svc.AcceptOffer(ctx, "c1", offers[0].ID)
	if err != nil || !mid.ExtendLoan {
		t.Fatalf("expected extension recorded, got %v", err)
	}

	out, err := svc.SimulateHalf(ctx, "c1", season.SecondHalf)
	if err != nil {
		t.Fatalf("second half: %v", err)
	}
	p := out.Career.Player
	if !p.OnLoan() || p.CurrentClub.Name != "Leeds" || p.ParentClub.Name != "Arsenal" {
		t.Fatalf("expected another season at Leeds, got %s", p.CurrentClub.Name)
	}
	if out.Career.ExtendLoan {
		t.Fatalf("extension should be spent")
	}
}

func TestGetAndList(t *testing.T) {
	svc, st := newService(t, Options{})
	ctx := context.Background()
	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.World(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	seedCareer(t, st, "a", "Leeds", 60)
	seedCareer(t, st, "b", "Leeds", 60)
	list, err := svc.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("unexpected list %d %v", len(list), err)
	}
	world, err := svc.World(ctx, "a")
	if err != nil || world == nil {
		t.Fatalf("expected empty world, got %v %v", world, err)
	}
}

func TestSeededServicesReplayCareers(t *testing.T) {
	ctx := context.Background()
	run := func() Outcome {
		svc, _ := newService(t, Options{Seed: 99})
		c, err := svc.Create(ctx, validRequest())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		out, err := svc.SimulateHalf(ctx, c.ID, season.FullSeason)
		if err != nil {
			t.Fatalf("simulate: %v", err)
		}
		return out
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a.Career.Player, b.Career.Player) {
		t.Fatalf("seeded careers diverged")
	}
}

func TestRestoreFromSaveFiles(t *testing.T) {
	dir := t.TempDir()
	writer := snapshots.NewWriter(dir, 3)
	reader := snapshots.NewFSStore(dir)
	ctx := context.Background()

	first, _ := newService(t, Options{Writer: writer, Reader: reader})
	c, err := first.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := first.SimulateHalf(ctx, c.ID, season.FirstHalf); err != nil {
		t.Fatalf("first half: %v", err)
	}

	second, _ := newService(t, Options{Writer: writer, Reader: reader})
	n, err := second.Restore(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected one career restored, got %d %v", n, err)
	}
	got, err := second.Get(ctx, c.ID)
	if err != nil || got.Phase != domain.PhaseMidSeason {
		t.Fatalf("expected the mid-season save, got %+v %v", got.Phase, err)
	}
	if n, _ := second.Restore(ctx); n != 0 {
		t.Fatalf("restored careers should not be loaded twice")
	}

	if _, err := second.SimulateHalf(ctx, c.ID, season.SecondHalf); err != nil {
		t.Fatalf("second half after restore: %v", err)
	}
	if _, err := second.Retire(ctx, c.ID); err != nil {
		t.Fatalf("retire: %v", err)
	}
	hof, err := first.HallOfFame(ctx)
	if err != nil || len(hof) != 1 {
		t.Fatalf("hall of fame should be shared on disk, got %d %v", len(hof), err)
	}
}

type brokenWriter struct{ calls int }

func (b *brokenWriter) WriteSave(domain.Career) error { b.calls++; return errors.New("disk full") }
func (b *brokenWriter) AddToHallOfFame(domain.HallOfFameEntry) (bool, error) {
	return false, errors.New("disk full")
}

type brokenStore struct{ *store.MemoryStore }

func (brokenStore) Put(context.Context, domain.Career) error { return errors.New("redis down") }

func TestSaveFileFailuresAreNotFatal(t *testing.T) {
	w := &brokenWriter{}
	svc, _ := newService(t, Options{Writer: w})
	if _, err := svc.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("save file errors should only be logged: %v", err)
	}
	if w.calls != 1 {
		t.Fatalf("expected a save attempt")
	}
}

func TestStoreFailuresSurface(t *testing.T) {
	svc := NewService(brokenStore{store.NewMemoryStore()}, roster.Fixture(), Options{Seed: 1})
	if _, err := svc.Create(context.Background(), validRequest()); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestDeleteCareer(t *testing.T) {
	svc, st := newService(t, Options{})
	seedCareer(t, st, "c1", "Leeds", 60)
	ctx := context.Background()

	if err := svc.Delete(ctx, "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, "c1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected career gone, got %v", err)
	}
	if _, held := svc.locks.Load("c1"); held {
		t.Fatalf("expected the career's lock to be released")
	}
	if err := svc.Delete(ctx, "c1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
