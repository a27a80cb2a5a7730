package listingRepo

import (
	"context"
	"errors"

	"heirloom/models"
)

// ErrListingNotFound is returned by GetByID for an unknown identifier.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository is the listings provider behind the search service. Search
// returns a coarse candidate set for the request; the exact query, filter, and
// ordering semantics are owned by the search service.
type ListingRepository interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
}
