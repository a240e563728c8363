package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

type fakeResolver struct {
	mu    sync.Mutex
	seen  []string
	locs  map[string]Location
	fails map[string]error
}

func (f *fakeResolver) Name() string { return "fake-resolver" }

func (f *fakeResolver) Resolve(_ context.Context, name string) (Location, error) {
	f.mu.Lock()
	f.seen = append(f.seen, name)
	f.mu.Unlock()

	if err, ok := f.fails[name]; ok {
		return Location{}, err
	}
	if loc, ok := f.locs[name]; ok {
		return loc, nil
	}
	return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
}

type fakeNormalizer struct {
	fails map[string]error
}

func (f *fakeNormalizer) Name() string { return "fake-normalizer" }

func (f *fakeNormalizer) FetchCurrent(_ context.Context, loc Location) (WeatherSnapshot, error) {
	if err, ok := f.fails[loc.Name]; ok {
		return WeatherSnapshot{}, err
	}
	return WeatherSnapshot{
		LocationName: loc.Name,
		CountryCode:  loc.CountryCode,
		TemperatureC: loc.Latitude,
		Condition:    Describe(0),
	}, nil
}

func (f *fakeNormalizer) FetchForecast(_ context.Context, loc Location) (Forecast, error) {
	if err, ok := f.fails[loc.Name]; ok {
		return Forecast{}, err
	}
	return Forecast{
		LocationName: loc.Name,
		CountryCode:  loc.CountryCode,
		Points:       []ForecastPoint{{Timestamp: 1, Time: "1970-01-01T00:00"}},
	}, nil
}

type fakeBoard struct {
	mu     sync.Mutex
	latest *Dashboard
	saves  int
}

func (b *fakeBoard) SaveDashboard(s []WeatherSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saves++
	b.latest = &Dashboard{Snapshots: s}
}

func (b *fakeBoard) LatestDashboard() (Dashboard, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.latest == nil {
		return Dashboard{}, errors.New("empty")
	}
	return *b.latest, nil
}

func newTestService(resolver *fakeResolver, normalizer *fakeNormalizer, board *fakeBoard) *Service {
	return NewService(resolver, normalizer, board, map[string]string{"القاهرة": "Cairo"})
}

func testLocations() map[string]Location {
	return map[string]Location{
		"Cairo":  {Name: "Cairo", CountryCode: "EG", Latitude: 30.06, Longitude: 31.25},
		"London": {Name: "London", CountryCode: "GB", Latitude: 51.51, Longitude: -0.13},
		"Tokyo":  {Name: "Tokyo", CountryCode: "JP", Latitude: 35.69, Longitude: 139.69},
	}
}

func TestCurrentTranslatesAlias(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	svc := newTestService(r, &fakeNormalizer{}, &fakeBoard{})

	snap, err := svc.Current(context.Background(), "القاهرة")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.seen) != 1 || r.seen[0] != "Cairo" {
		t.Fatalf("expected resolver to see Cairo, saw %v", r.seen)
	}
	if snap.LocationName != "Cairo" || snap.CountryCode != "EG" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestCurrentPassesUnknownNameThrough(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	svc := newTestService(r, &fakeNormalizer{}, &fakeBoard{})

	_, err := svc.Current(context.Background(), "Unknown City")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
	if len(r.seen) != 1 || r.seen[0] != "Unknown City" {
		t.Fatalf("expected resolver to see raw name, saw %v", r.seen)
	}
}

func TestCurrentRejectsBlankName(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	svc := newTestService(r, &fakeNormalizer{}, &fakeBoard{})

	if _, err := svc.Current(context.Background(), "   "); !errors.Is(err, ErrEmptyCityName) {
		t.Fatalf("expected ErrEmptyCityName, got %v", err)
	}
	if len(r.seen) != 0 {
		t.Fatalf("resolver should not be called, saw %v", r.seen)
	}
}

func TestCurrentPropagatesUpstreamFailure(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	n := &fakeNormalizer{fails: map[string]error{"London": ErrUpstreamFetchFailed}}
	svc := newTestService(r, n, &fakeBoard{})

	if _, err := svc.Current(context.Background(), "London"); !errors.Is(err, ErrUpstreamFetchFailed) {
		t.Fatalf("expected ErrUpstreamFetchFailed, got %v", err)
	}
}

func TestForecastResolvesFirst(t *testing.T) {
	r := &fakeResolver{fails: map[string]error{"Tokyo": ErrServiceUnavailable}}
	svc := newTestService(r, &fakeNormalizer{}, &fakeBoard{})

	if _, err := svc.Forecast(context.Background(), "Tokyo"); !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}

	r = &fakeResolver{locs: testLocations()}
	svc = newTestService(r, &fakeNormalizer{}, &fakeBoard{})
	fc, err := svc.Forecast(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.LocationName != "Tokyo" || len(fc.Points) != 1 {
		t.Fatalf("unexpected forecast: %+v", fc)
	}
}

func TestDashboardAllSucceed(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	svc := newTestService(r, &fakeNormalizer{}, &fakeBoard{})

	names := []string{"Cairo", "London", "Tokyo"}
	snaps, err := svc.Dashboard(context.Background(), names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != len(names) {
		t.Fatalf("expected %d snapshots, got %d", len(names), len(snaps))
	}
	for i, name := range names {
		if snaps[i].LocationName != name {
			t.Errorf("snapshot %d: expected %s, got %s", i, name, snaps[i].LocationName)
		}
	}
}

func TestDashboardOneFailureFailsAll(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	n := &fakeNormalizer{fails: map[string]error{"London": ErrUpstreamFetchFailed}}
	svc := newTestService(r, n, &fakeBoard{})

	snaps, err := svc.Dashboard(context.Background(), []string{"Cairo", "London"})
	if !errors.Is(err, ErrDashboardUnavailable) {
		t.Fatalf("expected ErrDashboardUnavailable, got %v", err)
	}
	if errors.Is(err, ErrUpstreamFetchFailed) {
		t.Fatal("aggregate error should not reveal the failing member")
	}
	if snaps != nil {
		t.Fatalf("expected no partial snapshots, got %+v", snaps)
	}
}

func TestDashboardNoCities(t *testing.T) {
	svc := newTestService(&fakeResolver{}, &fakeNormalizer{}, &fakeBoard{})

	if _, err := svc.Dashboard(context.Background(), nil); !errors.Is(err, ErrDashboardUnavailable) {
		t.Fatalf("expected ErrDashboardUnavailable, got %v", err)
	}
}

func TestRefreshDashboardKeepsPreviousBoardOnFailure(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	n := &fakeNormalizer{fails: map[string]error{}}
	b := &fakeBoard{}
	svc := newTestService(r, n, b)

	if err := svc.RefreshDashboard(context.Background(), []string{"Cairo", "Tokyo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n.fails["Tokyo"] = ErrUpstreamFetchFailed
	if err := svc.RefreshDashboard(context.Background(), []string{"Cairo", "Tokyo"}); err == nil {
		t.Fatal("expected refresh to fail")
	}

	if b.saves != 1 {
		t.Fatalf("expected 1 save, got %d", b.saves)
	}
	d, err := b.LatestDashboard()
	if err != nil || len(d.Snapshots) != 2 {
		t.Fatalf("expected previous 2-city board, got %+v (%v)", d, err)
	}
}

func TestLatestDashboardRefreshesWhenEmpty(t *testing.T) {
	r := &fakeResolver{locs: testLocations()}
	b := &fakeBoard{}
	svc := newTestService(r, &fakeNormalizer{}, b)

	d, err := svc.LatestDashboard(context.Background(), []string{"London"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Snapshots) != 1 || d.Snapshots[0].LocationName != "London" {
		t.Fatalf("unexpected board: %+v", d)
	}

	// Second call is served from the board.
	if _, err := svc.LatestDashboard(context.Background(), []string{"London"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.saves != 1 {
		t.Fatalf("expected 1 save, got %d", b.saves)
	}
}
