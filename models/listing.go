package models

import (
	"time"
)

// ListingType classifies how a sale is conducted.
type ListingType string

const (
	TypeEstateSale ListingType = "estate_sale"
	TypeAuction    ListingType = "auction"
	TypeOnline     ListingType = "online"
	// TypeAll is the filter wildcard, never set on a listing.
	TypeAll ListingType = "all"
)

// PriceTier buckets a sale's general price level.
type PriceTier string

const (
	PriceUnset PriceTier = ""
	PriceLow   PriceTier = "$"
	PriceMid   PriceTier = "$$"
	PriceHigh  PriceTier = "$$$"
	// PriceAll is the filter wildcard, never set on a listing.
	PriceAll PriceTier = "all"
)

// Coordinates is a WGS84 point in degrees.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Contact is the organizer contact block shown on sale detail pages.
type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// Listing is a single estate sale, auction, or online-only sale event.
// Latitude/Longitude are nil for online-only sales with no physical site.
type Listing struct {
	ID          string      `bson:"id" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	StartsAt    time.Time   `bson:"startsAt" json:"date"`
	EndsAt      *time.Time  `bson:"endsAt,omitempty" json:"endDate,omitempty"`
	Address     string      `bson:"address" json:"address"`
	Latitude    *float64    `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   *float64    `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Organizer   string      `bson:"organizer" json:"organizer"`
	Categories  []string    `bson:"categories" json:"categories"`
	PriceRange  PriceTier   `bson:"priceRange" json:"priceRange"`
	Type        ListingType `bson:"type" json:"type"`
	Photos      []string    `bson:"photos" json:"photos"`
	Featured    bool        `bson:"featured,omitempty" json:"featured,omitempty"`

	// LocationGeo mirrors Latitude/Longitude as GeoJSON for the 2dsphere
	// index; maintained by the Mongo repository, hidden from API responses.
	LocationGeo *GeoPoint `bson:"locationGeo,omitempty" json:"-"`

	// Detail-only fields, populated by the detail lookup.
	FullDescription string   `bson:"fullDescription,omitempty" json:"fullDescription,omitempty"`
	Terms           string   `bson:"terms,omitempty" json:"terms,omitempty"`
	Contact         *Contact `bson:"contact,omitempty" json:"contact,omitempty"`

	// DistanceMiles is the distance from the search origin, computed
	// per search and never persisted.
	DistanceMiles *float64 `bson:"-" json:"distance,omitempty"`
}

// HasCoords reports whether the listing has a physical location.
func (l *Listing) HasCoords() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Coords returns the listing's coordinates, or nil for online-only sales.
func (l *Listing) Coords() *Coordinates {
	if !l.HasCoords() {
		return nil
	}
	return &Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
}
