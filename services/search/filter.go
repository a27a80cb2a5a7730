package search

import (
	"strings"
	"time"

	"heirloom/models"
)

// endOfDay returns the last instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// WeekendWindow returns the inclusive bounds of the "this weekend" date
// bucket: from now through the end of the upcoming Saturday. On a Saturday
// the window covers the remainder of that same day.
func WeekendWindow(now time.Time) (time.Time, time.Time) {
	days := (6 - int(now.Weekday())) % 7
	return now, endOfDay(now.AddDate(0, 0, days))
}

// matchesDates applies the date-bucket predicate to a listing start time.
// Unknown buckets and incomplete custom ranges pass everything.
func matchesDates(start time.Time, filters models.FilterState, now time.Time) bool {
	switch filters.Dates {
	case models.DatesToday:
		y1, m1, d1 := start.In(now.Location()).Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case models.DatesThisWeekend:
		from, to := WeekendWindow(now)
		return !start.Before(from) && !start.After(to)
	case models.DatesNextWeek:
		return !start.Before(now) && !start.After(now.AddDate(0, 0, 7))
	case models.DatesCustom:
		r := filters.CustomRange
		if r == nil || r.Start.IsZero() || r.End.IsZero() {
			return true
		}
		return !start.Before(r.Start) && !start.After(endOfDay(r.End))
	default:
		return true
	}
}

// matchesCategories passes when no categories are selected, or when at least
// one selected category appears case-insensitively inside a listing category.
func matchesCategories(listing models.Listing, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		w := strings.ToLower(want)
		for _, have := range listing.Categories {
			if strings.Contains(strings.ToLower(have), w) {
				return true
			}
		}
	}
	return false
}

// matchesFilters reports whether a listing passes every filter predicate.
// distance is the precomputed origin distance in miles, nil when either side
// has no coordinates; such listings are never distance-filtered. The function
// is pure: it never annotates the listing.
func matchesFilters(listing models.Listing, filters models.FilterState, radius int, distance *float64, now time.Time) bool {
	if distance != nil && radius > 0 && *distance > float64(radius) {
		return false
	}
	if !matchesDates(listing.StartsAt, filters, now) {
		return false
	}
	if filters.Type != "" && filters.Type != models.TypeAll && listing.Type != filters.Type {
		return false
	}
	if filters.PriceRange != "" && filters.PriceRange != models.PriceAll && listing.PriceRange != filters.PriceRange {
		return false
	}
	return matchesCategories(listing, filters.Categories)
}

// matchesQuery applies the free-text query: a case-insensitive substring
// match against title, address, and categories. Any one match passes.
func matchesQuery(listing models.Listing, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(listing.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(listing.Address), q) {
		return true
	}
	for _, cat := range listing.Categories {
		if strings.Contains(strings.ToLower(cat), q) {
			return true
		}
	}
	return false
}
