package search_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"heirloom/cache"
	listingRepo "heirloom/database/repository/listing"
	"heirloom/models"
	"heirloom/services/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bostonCenter = models.Coordinates{Latitude: 42.3601, Longitude: -71.0589}

// stubRepo is a controllable ListingRepository. Queries listed in gates
// block until their channel is closed, which lets tests overlap searches.
type stubRepo struct {
	listings []models.Listing
	err      error
	gates    map[string]chan struct{}
	calls    int32
}

func (r *stubRepo) Search(_ context.Context, req models.SearchRequest) ([]models.Listing, error) {
	atomic.AddInt32(&r.calls, 1)
	if gate, ok := r.gates[req.Query]; ok {
		<-gate
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.listings, nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*models.Listing, error) {
	for i := range r.listings {
		if r.listings[i].ID == id {
			c := r.listings[i]
			return &c, nil
		}
	}
	return nil, listingRepo.ErrListingNotFound
}

func newService(t *testing.T, repo listingRepo.ListingRepository) *search.DefaultSearchService {
	t.Helper()
	svc, err := search.NewDefaultSearchService(
		repo,
		cache.New(16, time.Minute),
		cache.New(16, time.Minute),
		zap.NewNop(),
		25,
	)
	require.NoError(t, err)
	return svc
}

func resultIDs(resp models.SearchResponse) []string {
	ids := make([]string, 0, len(resp.Data))
	for _, l := range resp.Data {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestStateInitiallyIdle(t *testing.T) {
	svc := newService(t, &stubRepo{})
	assert.Equal(t, search.StatusIdle, svc.State().Status)
}

func TestSearchVictorianNearBoston(t *testing.T) {
	now := time.Now()
	svc := newService(t, &stubRepo{listings: listingRepo.Fixtures(now)})

	resp := svc.Search(context.Background(), models.SearchRequest{
		Origin: &bostonCenter,
		Query:  "victorian",
		Radius: 25,
	})

	require.True(t, resp.Success)
	assert.Equal(t, []string{"1"}, resultIDs(resp))
	assert.Equal(t, len(resp.Data), resp.Total)
	require.NotNil(t, resp.Data[0].DistanceMiles)
	assert.Less(t, *resp.Data[0].DistanceMiles, 25.0)

	state := svc.State()
	assert.Equal(t, search.StatusSuccess, state.Status)
	assert.Equal(t, []string{"1"}, resultIDs(models.SearchResponse{Data: state.Results}))
}

func TestSearchRadiusExcludesDistantListings(t *testing.T) {
	now := time.Now()
	svc := newService(t, &stubRepo{listings: listingRepo.Fixtures(now)})

	// Concord is roughly 17 miles out; everything else is inside 10.
	resp := svc.Search(context.Background(), models.SearchRequest{
		Origin: &bostonCenter,
		Radius: 10,
	})

	require.True(t, resp.Success)
	assert.NotContains(t, resultIDs(resp), "5")
	assert.Contains(t, resultIDs(resp), "1")
}

func TestSearchSortsByDistanceWithMissingCoordsFirst(t *testing.T) {
	listings := []models.Listing{
		*coordedListing("far", 42.4606, -71.3489),
		{ID: "online"},
		*coordedListing("near", 42.3584, -71.0598),
	}
	svc := newService(t, &stubRepo{listings: listings})

	resp := svc.Search(context.Background(), models.SearchRequest{
		Origin: &bostonCenter,
		Radius: 100,
	})

	require.True(t, resp.Success)
	assert.Equal(t, []string{"online", "near", "far"}, resultIDs(resp))
	assert.Nil(t, resp.Data[0].DistanceMiles)
	require.NotNil(t, resp.Data[1].DistanceMiles)
	require.NotNil(t, resp.Data[2].DistanceMiles)
	assert.Less(t, *resp.Data[1].DistanceMiles, *resp.Data[2].DistanceMiles)
}

func coordedListing(id string, lat, lon float64) *models.Listing {
	return &models.Listing{ID: id, Latitude: &lat, Longitude: &lon, StartsAt: time.Now()}
}

func TestSearchProviderFailure(t *testing.T) {
	svc := newService(t, &stubRepo{err: context.DeadlineExceeded})

	resp := svc.Search(context.Background(), models.SearchRequest{Query: "anything"})

	assert.False(t, resp.Success)
	assert.Equal(t, "Network error. Please try again.", resp.Error)
	assert.Empty(t, resp.Data)

	state := svc.State()
	assert.Equal(t, search.StatusFailed, state.Status)
	assert.NotEmpty(t, state.Error)
}

func TestSearchMemoizesProviderResponses(t *testing.T) {
	repo := &stubRepo{listings: listingRepo.Fixtures(time.Now())}
	svc := newService(t, repo)

	req := models.SearchRequest{Origin: &bostonCenter, Query: "victorian", Radius: 25}
	first := svc.Search(context.Background(), req)
	second := svc.Search(context.Background(), req)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.calls))
	assert.Equal(t, resultIDs(first), resultIDs(second))
}

func TestSupersededSearchResultIsNotApplied(t *testing.T) {
	slowGate := make(chan struct{})
	repo := &stubRepo{
		listings: listingRepo.Fixtures(time.Now()),
		gates:    map[string]chan struct{}{"tool": slowGate},
	}
	svc := newService(t, repo)

	slowDone := make(chan models.SearchResponse, 1)
	go func() {
		slowDone <- svc.Search(context.Background(), models.SearchRequest{Query: "tool", Radius: 25})
	}()

	// Let the slow search reach the provider before issuing the newer one.
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&repo.calls) == 1
	}, time.Second, 5*time.Millisecond)

	fast := svc.Search(context.Background(), models.SearchRequest{Query: "victorian", Radius: 25})
	require.True(t, fast.Success)

	close(slowGate)
	slow := <-slowDone

	// The superseded search still resolves with its own results, but the
	// visible state keeps the newest search's outcome.
	require.True(t, slow.Success)
	assert.Equal(t, []string{"3"}, resultIDs(slow))

	state := svc.State()
	assert.Equal(t, search.StatusSuccess, state.Status)
	assert.Equal(t, []string{"1"}, resultIDs(models.SearchResponse{Data: state.Results}))
}

func TestGetDetails(t *testing.T) {
	svc := newService(t, &stubRepo{listings: listingRepo.Fixtures(time.Now())})

	resp := svc.GetDetails(context.Background(), "1")
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.NotEmpty(t, resp.Data.FullDescription)
	assert.NotEmpty(t, resp.Data.Terms)
	require.NotNil(t, resp.Data.Contact)

	missing := svc.GetDetails(context.Background(), "999")
	assert.False(t, missing.Success)
	assert.Equal(t, "Sale not found", missing.Error)
}

func TestGeocode(t *testing.T) {
	svc := newService(t, &stubRepo{})

	resp := svc.Geocode(context.Background(), "02139")
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.InDelta(t, 42.3736, resp.Data.Latitude, 1e-6)

	// Second lookup is served from the geocode cache.
	again := svc.Geocode(context.Background(), "02139")
	require.True(t, again.Success)
	assert.Equal(t, *resp.Data, *again.Data)

	missing := svc.Geocode(context.Background(), "nowhere, xx")
	assert.False(t, missing.Success)
	assert.Equal(t, "Address not found", missing.Error)
}
