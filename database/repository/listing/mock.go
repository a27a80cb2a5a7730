package listingRepo

import (
	"context"
	"sync"
	"time"

	"heirloom/models"
)

// MockListingRepo serves the fixture set from memory with simulated provider
// latency. It is the default provider outside production.
type MockListingRepo struct {
	searchDelay time.Duration
	detailDelay time.Duration

	mu       sync.RWMutex
	listings []models.Listing
}

// NewMockListingRepo creates a fixture-backed repository seeded relative to
// the current time.
func NewMockListingRepo(searchDelay, detailDelay time.Duration) *MockListingRepo {
	return &MockListingRepo{
		searchDelay: searchDelay,
		detailDelay: detailDelay,
		listings:    Fixtures(time.Now()),
	}
}

// Search returns every fixture listing, detail fields stripped. The request's
// query and filters are applied by the search service, matching the provider
// contract.
func (r *MockListingRepo) Search(ctx context.Context, _ models.SearchRequest) ([]models.Listing, error) {
	if err := simulateLatency(ctx, r.searchDelay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Listing, len(r.listings))
	for i := range r.listings {
		c := copyListing(r.listings[i])
		c.FullDescription = ""
		c.Terms = ""
		c.Contact = nil
		out[i] = c
	}
	return out, nil
}

// GetByID returns the enriched listing for id, or ErrListingNotFound.
func (r *MockListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	if err := simulateLatency(ctx, r.detailDelay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.listings {
		if r.listings[i].ID == id {
			c := copyListing(r.listings[i])
			return &c, nil
		}
	}
	return nil, ErrListingNotFound
}

// copyListing returns a deep enough copy that callers can annotate freely.
func copyListing(l models.Listing) models.Listing {
	c := l
	c.Categories = append([]string(nil), l.Categories...)
	c.Photos = append([]string(nil), l.Photos...)
	return c
}

// simulateLatency stands in for the network round trip of a real provider.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
