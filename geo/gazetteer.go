package geo

import (
	"errors"
	"sort"
	"strings"

	"heirloom/models"
)

// ErrAddressNotFound is returned when no gazetteer entry matches the input.
var ErrAddressNotFound = errors.New("address not found")

// gazetteer maps known city names and postal codes to coordinates. This is a
// stand-in for a real geocoding provider; a deployment would swap it for
// Nominatim or a commercial geocoding API behind the same contract.
var gazetteer = map[string]models.Coordinates{
	"boston":     {Latitude: 42.3601, Longitude: -71.0589},
	"cambridge":  {Latitude: 42.3736, Longitude: -71.1097},
	"somerville": {Latitude: 42.3876, Longitude: -71.0995},
	"newton":     {Latitude: 42.3370, Longitude: -71.2092},
	"brookline":  {Latitude: 42.3317, Longitude: -71.1211},
	"medford":    {Latitude: 42.4184, Longitude: -71.1061},
	"concord":    {Latitude: 42.4606, Longitude: -71.3489},

	"02108": {Latitude: 42.3584, Longitude: -71.0598},
	"02139": {Latitude: 42.3736, Longitude: -71.1097},
	"02155": {Latitude: 42.4184, Longitude: -71.1061},
	"01742": {Latitude: 42.4606, Longitude: -71.3489},
}

// gazetteerKeys holds the table keys in sorted order so the substring scan
// is deterministic.
var gazetteerKeys = func() []string {
	keys := make([]string, 0, len(gazetteer))
	for k := range gazetteer {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// Geocode resolves free-text input to coordinates. The lookup is two-phase:
// an exact match on the normalized input, then the first entry (in key order)
// whose key appears as a substring of the input. First match wins; there is
// no ranking by match quality.
func Geocode(address string) (models.Coordinates, error) {
	normalized := strings.ToLower(strings.TrimSpace(address))
	if normalized == "" {
		return models.Coordinates{}, ErrAddressNotFound
	}

	if coords, ok := gazetteer[normalized]; ok {
		return coords, nil
	}

	for _, key := range gazetteerKeys {
		if strings.Contains(normalized, key) {
			return gazetteer[key], nil
		}
	}

	return models.Coordinates{}, ErrAddressNotFound
}
