package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	listingRepo "heirloom/database/repository/listing"
	"heirloom/geo"
	"heirloom/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSearchFailed wraps provider failures. They surface to callers as a
// generic retryable message, never as an error value.
var ErrSearchFailed = errors.New("search failed")

const retryableError = "Network error. Please try again."

// searchState guards the sequence counter and the visible snapshot.
// Overlapping searches all run to completion; only the newest one's outcome
// is published.
type searchState struct {
	mu      sync.Mutex
	lastSeq uint64
	snap    Snapshot
}

// begin issues the next sequence number and moves the visible state to
// loading.
func (s *searchState) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeq++
	s.snap = Snapshot{Status: StatusLoading, Seq: s.lastSeq}
	return s.lastSeq
}

// publish applies an outcome to the visible state only when it belongs to
// the newest issued search. Superseded outcomes are dropped.
func (s *searchState) publish(seq uint64, resp models.SearchResponse) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.lastSeq {
		return false
	}
	if resp.Success {
		s.snap = Snapshot{Status: StatusSuccess, Results: resp.Data, Seq: seq}
	} else {
		s.snap = Snapshot{Status: StatusFailed, Error: resp.Error, Seq: seq}
	}
	return true
}

func (s *searchState) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Status == "" {
		return Snapshot{Status: StatusIdle}
	}
	return s.snap
}

// State returns the visible lifecycle snapshot of the newest search.
func (s *DefaultSearchService) State() Snapshot {
	return s.state.snapshot()
}

// Search runs one orchestrated search: provider fetch (through the listing
// cache), free-text query match, filter evaluation, and distance-sorted
// results when an origin is known.
func (s *DefaultSearchService) Search(ctx context.Context, req models.SearchRequest) models.SearchResponse {
	seq := s.state.begin()
	logger := s.Logger.With(
		zap.String("requestId", uuid.NewString()),
		zap.Uint64("seq", seq),
	)

	if req.Radius <= 0 {
		req.Radius = req.Filters.Distance
	}
	if req.Radius <= 0 {
		req.Radius = s.DefaultRadius
	}

	resp := s.doSearch(ctx, req, logger)
	if !s.state.publish(seq, resp) {
		logger.Debug("Search superseded by a newer request, result not applied")
	}
	return resp
}

func (s *DefaultSearchService) doSearch(ctx context.Context, req models.SearchRequest, logger *zap.Logger) models.SearchResponse {
	listings, err := s.fetchListings(ctx, req, logger)
	if err != nil {
		logger.Error("Listing provider failed", zap.Error(err))
		return models.SearchResponse{Success: false, Error: retryableError, Data: []models.Listing{}}
	}

	now := s.now()
	results := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if !matchesQuery(l, req.Query) {
			continue
		}
		var distance *float64
		if req.Origin != nil && l.HasCoords() {
			d := geo.DistanceMiles(req.Origin.Latitude, req.Origin.Longitude, *l.Latitude, *l.Longitude)
			distance = &d
		}
		if !matchesFilters(l, req.Filters, req.Radius, distance, now) {
			continue
		}
		// l is a copy; the cached provider data is never annotated.
		l.DistanceMiles = distance
		results = append(results, l)
	}

	if req.Origin != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return distanceOrZero(results[i]) < distanceOrZero(results[j])
		})
	}

	logger.Info("Search completed",
		zap.Int("candidates", len(listings)),
		zap.Int("results", len(results)),
	)
	return models.SearchResponse{
		Success: true,
		Data:    results,
		Total:   len(results),
		Page:    1,
		Pages:   1,
	}
}

// fetchListings memoizes provider responses in the listing cache.
func (s *DefaultSearchService) fetchListings(ctx context.Context, req models.SearchRequest, logger *zap.Logger) ([]models.Listing, error) {
	key := req.CacheKey()
	if v, ok := s.ListingCache.Get(key); ok {
		logger.Debug("Listing cache hit", zap.String("key", key))
		return v.([]models.Listing), nil
	}

	listings, err := s.Repo.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	s.ListingCache.Set(key, listings)
	return listings, nil
}

// GetDetails fetches the enriched listing for id.
func (s *DefaultSearchService) GetDetails(ctx context.Context, id string) models.DetailResponse {
	listing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return models.DetailResponse{Success: false, Error: "Sale not found"}
		}
		s.Logger.Error("Detail lookup failed", zap.String("id", id), zap.Error(err))
		return models.DetailResponse{Success: false, Error: retryableError}
	}
	return models.DetailResponse{Success: true, Data: listing}
}

// Geocode resolves a free-text address through the geocode cache.
func (s *DefaultSearchService) Geocode(ctx context.Context, address string) models.GeocodeResponse {
	key := "geo:" + strings.ToLower(strings.TrimSpace(address))
	if v, ok := s.GeocodeCache.Get(key); ok {
		coords := v.(models.Coordinates)
		return models.GeocodeResponse{Success: true, Data: &coords}
	}

	coords, err := geo.Geocode(address)
	if err != nil {
		return models.GeocodeResponse{Success: false, Error: "Address not found"}
	}
	s.GeocodeCache.Set(key, coords)
	return models.GeocodeResponse{Success: true, Data: &coords}
}

func (s *DefaultSearchService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// distanceOrZero orders listings with no computed distance first.
func distanceOrZero(l models.Listing) float64 {
	if l.DistanceMiles == nil {
		return 0
	}
	return *l.DistanceMiles
}
