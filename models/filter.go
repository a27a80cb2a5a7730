package models

import (
	"sort"
	"strings"
	"time"
)

// DateBucket selects the date window applied to listing start times.
type DateBucket string

const (
	DatesToday       DateBucket = "today"
	DatesThisWeekend DateBucket = "this_weekend"
	DatesNextWeek    DateBucket = "next_week"
	DatesCustom      DateBucket = "custom"
)

// DateRange is an inclusive calendar range. End is interpreted through
// end-of-day, so a range 06-01..06-02 includes 06-02T23:00.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// FilterState is the user's structured search constraints. It is replaced
// wholesale on every change, never merged field by field.
type FilterState struct {
	Dates       DateBucket  `json:"dates"`
	CustomRange *DateRange  `json:"customDateRange,omitempty"`
	Distance    int         `json:"distance"`
	Type        ListingType `json:"type"`
	PriceRange  PriceTier   `json:"priceRange"`
	Categories  []string    `json:"categories"`
}

// DefaultFilters returns the initial filter state presented to new sessions.
func DefaultFilters(radiusMiles int) FilterState {
	return FilterState{
		Dates:      DatesThisWeekend,
		Distance:   radiusMiles,
		Type:       TypeAll,
		PriceRange: PriceAll,
	}
}

// CanonicalKey renders the filter state as a stable string for cache keys.
// Categories are sorted so selection order does not fragment the cache.
func (f FilterState) CanonicalKey() string {
	cats := append([]string(nil), f.Categories...)
	for i, c := range cats {
		cats[i] = strings.ToLower(c)
	}
	sort.Strings(cats)

	var b strings.Builder
	b.WriteString(string(f.Dates))
	if f.CustomRange != nil {
		b.WriteString("|" + f.CustomRange.Start.Format("2006-01-02"))
		b.WriteString(".." + f.CustomRange.End.Format("2006-01-02"))
	}
	b.WriteString("|" + string(f.Type))
	b.WriteString("|" + string(f.PriceRange))
	b.WriteString("|" + strings.Join(cats, ","))
	return b.String()
}
