package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/city-weather/internal/weather"
)

var (
	// ErrNotFound is returned when no dashboard refresh has completed yet.
	ErrNotFound = errors.New("no dashboard data available")
)

// MemoryBoard is a concurrency-safe in-memory holder of the latest dashboard.
// It keeps only the most recent complete refresh.
type MemoryBoard struct {
	mu sync.RWMutex

	latest *weather.Dashboard

	// now is replaceable in tests.
	now func() time.Time
}

// NewMemoryBoard creates an empty MemoryBoard.
func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// SaveDashboard replaces the stored board with snapshots.
func (b *MemoryBoard) SaveDashboard(snapshots []weather.WeatherSnapshot) {
	// Copy so later writes by the caller cannot leak into the board.
	cp := make([]weather.WeatherSnapshot, len(snapshots))
	copy(cp, snapshots)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = &weather.Dashboard{
		RefreshedAt: b.now(),
		Snapshots:   cp,
	}
}

// LatestDashboard returns the most recent board.
func (b *MemoryBoard) LatestDashboard() (weather.Dashboard, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.latest == nil {
		return weather.Dashboard{}, ErrNotFound
	}

	d := *b.latest
	d.Snapshots = make([]weather.WeatherSnapshot, len(b.latest.Snapshots))
	copy(d.Snapshots, b.latest.Snapshots)
	return d, nil
}

var _ weather.Board = (*MemoryBoard)(nil)
