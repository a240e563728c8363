package weather

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
)

// Service ties a location source to a weather source for city-name lookups
// and keeps the dashboard board up to date.
type Service struct {
	resolver   Resolver
	normalizer Normalizer
	board      Board
	aliases    map[string]string
}

// NewService creates a new Service. aliases is consulted before every
// geocoding call; pass CityAliases for the built-in table.
func NewService(resolver Resolver, normalizer Normalizer, board Board, aliases map[string]string) *Service {
	return &Service{
		resolver:   resolver,
		normalizer: normalizer,
		board:      board,
		aliases:    aliases,
	}
}

// Resolve translates a raw city name through the alias table and geocodes it.
func (s *Service) Resolve(ctx context.Context, raw string) (Location, error) {
	name := TranslateCity(raw, s.aliases)
	if name == "" {
		return Location{}, ErrEmptyCityName
	}

	log.Printf("DEBUG: resolving %q via %s", name, s.resolver.Name())
	return s.resolver.Resolve(ctx, name)
}

// Current resolves raw and returns the current weather for it.
func (s *Service) Current(ctx context.Context, raw string) (WeatherSnapshot, error) {
	loc, err := s.Resolve(ctx, raw)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	return s.normalizer.FetchCurrent(ctx, loc)
}

// Forecast resolves raw and returns its hourly forecast.
func (s *Service) Forecast(ctx context.Context, raw string) (Forecast, error) {
	loc, err := s.Resolve(ctx, raw)
	if err != nil {
		return Forecast{}, err
	}
	return s.normalizer.FetchForecast(ctx, loc)
}

// Dashboard fetches current weather for every name concurrently. It succeeds
// only when all members succeed; otherwise it returns ErrDashboardUnavailable
// and no snapshots. Results keep the order of names.
func (s *Service) Dashboard(ctx context.Context, names []string) ([]WeatherSnapshot, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no cities configured", ErrDashboardUnavailable)
	}

	snapshots := make([]WeatherSnapshot, len(names))

	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			snap, err := s.Current(ctx, name)
			if err != nil {
				log.Printf("dashboard: fetch failed for %q: %v", name, err)
				return err
			}
			snapshots[i] = snap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, ErrDashboardUnavailable
	}
	return snapshots, nil
}

// RefreshDashboard fetches the dashboard and stores it on the board. A failed
// refresh leaves the previous board in place.
func (s *Service) RefreshDashboard(ctx context.Context, names []string) error {
	snapshots, err := s.Dashboard(ctx, names)
	if err != nil {
		return err
	}
	s.board.SaveDashboard(snapshots)
	return nil
}

// LatestDashboard returns the last complete board, refreshing it first when
// nothing has been stored yet.
func (s *Service) LatestDashboard(ctx context.Context, names []string) (Dashboard, error) {
	if d, err := s.board.LatestDashboard(); err == nil {
		return d, nil
	}

	log.Printf("INFO: dashboard board empty; refreshing %d cities", len(names))
	if err := s.RefreshDashboard(ctx, names); err != nil {
		return Dashboard{}, err
	}

	return s.board.LatestDashboard()
}
