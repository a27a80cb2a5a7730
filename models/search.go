package models

import (
	"fmt"
	"strings"
)

// SearchRequest is one orchestrated search: origin (when known), free-text
// query, a snapshot of the filter state, and the radius in miles.
type SearchRequest struct {
	Origin  *Coordinates `json:"origin,omitempty"`
	Query   string       `json:"query"`
	Radius  int          `json:"radius"`
	Filters FilterState  `json:"filters"`
}

// CacheKey renders the request as a stable string for result memoization.
func (r SearchRequest) CacheKey() string {
	origin := "none"
	if r.Origin != nil {
		origin = fmt.Sprintf("%.4f,%.4f", r.Origin.Latitude, r.Origin.Longitude)
	}
	return fmt.Sprintf("search:%s:%d:%s:%s",
		origin, r.Radius, strings.ToLower(strings.TrimSpace(r.Query)), r.Filters.CanonicalKey())
}

// SearchResponse is the listings provider envelope.
type SearchResponse struct {
	Success bool      `json:"success"`
	Data    []Listing `json:"data"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	Pages   int       `json:"pages"`
	Error   string    `json:"error,omitempty"`
}

// DetailResponse is the envelope for a single-listing lookup.
type DetailResponse struct {
	Success bool     `json:"success"`
	Data    *Listing `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// GeocodeResponse is the envelope for a free-text address lookup.
type GeocodeResponse struct {
	Success bool         `json:"success"`
	Data    *Coordinates `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}
