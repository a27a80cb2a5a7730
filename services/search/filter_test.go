package search

import (
	"testing"
	"time"

	"heirloom/models"

	"github.com/stretchr/testify/assert"
)

func coordListing(lat, lon float64) models.Listing {
	return models.Listing{
		ID:        "x",
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func TestWeekendWindowMidweek(t *testing.T) {
	// Wednesday 2024-06-05.
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	from, to := WeekendWindow(now)

	assert.Equal(t, now, from)
	assert.Equal(t, time.Saturday, to.Weekday())
	assert.Equal(t, 8, to.Day())
	assert.Equal(t, 23, to.Hour())
}

func TestWeekendWindowOnSaturday(t *testing.T) {
	// On a Saturday the window is the remainder of that same day.
	now := time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)
	from, to := WeekendWindow(now)

	assert.Equal(t, now, from)
	assert.Equal(t, now.Day(), to.Day())
	assert.True(t, to.After(from))
}

func TestMatchesDates(t *testing.T) {
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name    string
		filters models.FilterState
		start   time.Time
		want    bool
	}{
		{"today matches same calendar day", models.FilterState{Dates: models.DatesToday},
			time.Date(2024, 6, 5, 23, 0, 0, 0, time.UTC), true},
		{"today rejects tomorrow", models.FilterState{Dates: models.DatesToday},
			time.Date(2024, 6, 6, 0, 30, 0, 0, time.UTC), false},
		{"weekend includes saturday evening", models.FilterState{Dates: models.DatesThisWeekend},
			time.Date(2024, 6, 8, 20, 0, 0, 0, time.UTC), true},
		{"weekend rejects sunday", models.FilterState{Dates: models.DatesThisWeekend},
			time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC), false},
		{"weekend rejects the past", models.FilterState{Dates: models.DatesThisWeekend},
			time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC), false},
		{"next week includes day seven", models.FilterState{Dates: models.DatesNextWeek},
			time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), true},
		{"next week rejects day eight", models.FilterState{Dates: models.DatesNextWeek},
			time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC), false},
		{"unknown bucket passes everything", models.FilterState{Dates: ""},
			time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesDates(tt.start, tt.filters, now))
		})
	}
}

func TestMatchesDatesCustomRange(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	full := models.FilterState{
		Dates: models.DatesCustom,
		CustomRange: &models.DateRange{
			Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	// End is normalized to end-of-day.
	assert.True(t, matchesDates(time.Date(2024, 6, 2, 23, 0, 0, 0, time.UTC), full, now))
	assert.False(t, matchesDates(time.Date(2024, 6, 3, 0, 1, 0, 0, time.UTC), full, now))
	assert.False(t, matchesDates(time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC), full, now))

	// An incomplete range makes the date predicate a no-op.
	incomplete := models.FilterState{Dates: models.DatesCustom}
	assert.True(t, matchesDates(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), incomplete, now))
}

func TestMatchesCategories(t *testing.T) {
	listing := models.Listing{Categories: []string{"Tools", "Vintage", "Collectibles"}}

	assert.True(t, matchesCategories(listing, nil), "empty selection passes")
	assert.True(t, matchesCategories(listing, []string{"tool"}), "case-insensitive substring")
	assert.True(t, matchesCategories(listing, []string{"China", "vintage"}), "any one selected category suffices")
	assert.False(t, matchesCategories(listing, []string{"Jewelry"}))
}

func TestMatchesFiltersDistance(t *testing.T) {
	now := time.Now()
	near, far := 10.0, 30.0

	listing := coordListing(42.0, -71.0)
	assert.True(t, matchesFilters(listing, models.FilterState{}, 25, &near, now))
	assert.False(t, matchesFilters(listing, models.FilterState{}, 25, &far, now))

	// Listings without a computed distance are never distance-filtered.
	online := models.Listing{ID: "online"}
	assert.True(t, matchesFilters(online, models.FilterState{}, 1, nil, now))
}

func TestMatchesFiltersTypeAndPrice(t *testing.T) {
	now := time.Now()
	listing := models.Listing{Type: models.TypeEstateSale, PriceRange: models.PriceMid}

	assert.True(t, matchesFilters(listing, models.FilterState{Type: models.TypeAll, PriceRange: models.PriceAll}, 0, nil, now))
	assert.True(t, matchesFilters(listing, models.FilterState{}, 0, nil, now), "unset filters do not apply")
	assert.True(t, matchesFilters(listing, models.FilterState{Type: models.TypeEstateSale, PriceRange: models.PriceMid}, 0, nil, now))
	assert.False(t, matchesFilters(listing, models.FilterState{Type: models.TypeAuction}, 0, nil, now))
	assert.False(t, matchesFilters(listing, models.FilterState{PriceRange: models.PriceHigh}, 0, nil, now))
}

func TestMatchesQuery(t *testing.T) {
	listing := models.Listing{
		Title:      "Beautiful Victorian Estate Sale - Antiques & Fine Art",
		Address:    "123 Beacon Hill Street, Boston, MA 02108",
		Categories: []string{"Antiques", "Art"},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query passes", "", true},
		{"title match", "victorian", true},
		{"address match", "beacon hill", true},
		{"category match", "antiq", true},
		{"no match", "mid-century", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesQuery(listing, tt.query))
		})
	}
}
