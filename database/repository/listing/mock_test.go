package listingRepo_test

import (
	"context"
	"testing"
	"time"

	listingRepo "heirloom/database/repository/listing"
	"heirloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesCoverTheDateBuckets(t *testing.T) {
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC) // Wednesday
	fixtures := listingRepo.Fixtures(now)
	require.Len(t, fixtures, 5)

	byID := make(map[string]models.Listing, len(fixtures))
	for _, l := range fixtures {
		byID[l.ID] = l
	}

	assert.Equal(t, now, byID["1"].StartsAt)
	assert.Equal(t, now.AddDate(0, 0, 1), byID["2"].StartsAt)
	assert.Equal(t, time.Saturday, byID["3"].StartsAt.Weekday())
	assert.True(t, byID["3"].StartsAt.After(now))
	assert.Equal(t, now.AddDate(0, 0, 7), byID["5"].StartsAt)
}

func TestMockSearchStripsDetailFields(t *testing.T) {
	repo := listingRepo.NewMockListingRepo(0, 0)

	listings, err := repo.Search(context.Background(), models.SearchRequest{})
	require.NoError(t, err)
	require.Len(t, listings, 5)
	for _, l := range listings {
		assert.Empty(t, l.FullDescription, "listing %s", l.ID)
		assert.Empty(t, l.Terms, "listing %s", l.ID)
		assert.Nil(t, l.Contact, "listing %s", l.ID)
	}
}

func TestMockGetByIDReturnsEnrichedListing(t *testing.T) {
	repo := listingRepo.NewMockListingRepo(0, 0)

	listing, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEmpty(t, listing.FullDescription)
	assert.NotEmpty(t, listing.Terms)
	require.NotNil(t, listing.Contact)
	assert.NotEmpty(t, listing.Contact.Phone)
}

func TestMockGetByIDUnknownID(t *testing.T) {
	repo := listingRepo.NewMockListingRepo(0, 0)

	_, err := repo.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, listingRepo.ErrListingNotFound)
}

func TestMockSearchHonorsCancelledContext(t *testing.T) {
	repo := listingRepo.NewMockListingRepo(5*time.Second, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Search(ctx, models.SearchRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
