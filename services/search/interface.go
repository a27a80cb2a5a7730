package search

import (
	"context"
	"fmt"
	"time"

	"heirloom/cache"
	listingRepo "heirloom/database/repository/listing"
	"heirloom/models"

	"go.uber.org/zap"
)

// Status is the lifecycle state of the most recent orchestrated search.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Snapshot is the visible search state: the lifecycle status, the result set
// of the newest finished search, and the sequence number that produced it.
type Snapshot struct {
	Status  Status           `json:"status"`
	Results []models.Listing `json:"results"`
	Error   string           `json:"error,omitempty"`
	Seq     uint64           `json:"seq"`
}

// SearchService exposes listing search, detail lookup, and address
// geocoding. Provider failures never escape as errors: every operation
// resolves to a tagged response envelope.
type SearchService interface {
	Search(ctx context.Context, req models.SearchRequest) models.SearchResponse
	GetDetails(ctx context.Context, id string) models.DetailResponse
	Geocode(ctx context.Context, address string) models.GeocodeResponse
	State() Snapshot
}

// DefaultSearchService is the production implementation.
type DefaultSearchService struct {
	Repo          listingRepo.ListingRepository
	ListingCache  *cache.Cache
	GeocodeCache  *cache.Cache
	Logger        *zap.Logger
	DefaultRadius int

	// Now is the clock used by date-bucket filtering; tests override it.
	Now func() time.Time

	state searchState
}

// NewDefaultSearchService wires the orchestrator with its provider and
// caches.
func NewDefaultSearchService(
	repo listingRepo.ListingRepository,
	listingCache *cache.Cache,
	geocodeCache *cache.Cache,
	logger *zap.Logger,
	defaultRadius int,
) (*DefaultSearchService, error) {
	if repo == nil || listingCache == nil || geocodeCache == nil || logger == nil {
		return nil, fmt.Errorf("search service initialization error: one or more dependencies are nil")
	}
	return &DefaultSearchService{
		Repo:          repo,
		ListingCache:  listingCache,
		GeocodeCache:  geocodeCache,
		Logger:        logger,
		DefaultRadius: defaultRadius,
		Now:           time.Now,
	}, nil
}
