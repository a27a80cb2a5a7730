package listingRepo

import (
	"time"

	"heirloom/models"
)

// Development fixture data mirroring the EstateSales.NET shapes. Dates are
// generated relative to now so the fixtures always land inside the date
// filter buckets.

const fixtureFiller = " Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// fixtureSaturday returns the next Saturday strictly after now.
func fixtureSaturday(now time.Time) time.Time {
	days := (6 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}

// Fixtures returns the seeded listing set, fully enriched with detail fields.
func Fixtures(now time.Time) []models.Listing {
	tomorrow := now.AddDate(0, 0, 1)
	weekend := fixtureSaturday(now)
	nextWeek := now.AddDate(0, 0, 7)

	contact := &models.Contact{
		Phone:   "(555) 123-4567",
		Email:   "info@heritageestatesales.com",
		Website: "https://heritageestatesales.com",
	}
	terms := "Cash and carry. All sales final. 10% buyer's premium."

	listings := []models.Listing{
		{
			ID:          "1",
			Title:       "Beautiful Victorian Estate Sale - Antiques & Fine Art",
			Description: "Magnificent Victorian estate featuring fine antiques, oil paintings, sterling silver, and period furniture.",
			StartsAt:    now,
			EndsAt:      timePtr(now.Add(7 * time.Hour)),
			Address:     "123 Beacon Hill Street, Boston, MA 02108",
			Latitude:    floatPtr(42.3584),
			Longitude:   floatPtr(-71.0598),
			Organizer:   "Heritage Estate Sales",
			Categories:  []string{"Antiques", "Art", "Furniture", "Jewelry"},
			PriceRange:  models.PriceHigh,
			Type:        models.TypeEstateSale,
			Photos: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400",
				"https://images.unsplash.com/photo-1524634126442-357e0eac3c14?w=400",
			},
			Featured: true,
		},
		{
			ID:          "2",
			Title:       "Mid-Century Modern Collection - Designer Furniture",
			Description: "Curated collection of authentic mid-century modern furniture, ceramics, and lighting.",
			StartsAt:    tomorrow,
			EndsAt:      timePtr(tomorrow.Add(7 * time.Hour)),
			Address:     "456 Cambridge Street, Cambridge, MA 02139",
			Latitude:    floatPtr(42.3736),
			Longitude:   floatPtr(-71.1097),
			Organizer:   "Modern Estate Sales",
			Categories:  []string{"Mid-Century Modern", "Furniture", "Art", "Collectibles"},
			PriceRange:  models.PriceMid,
			Type:        models.TypeEstateSale,
			Photos: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400",
			},
		},
		{
			ID:          "3",
			Title:       "Tool Collector's Dream - Vintage & Antique Tools",
			Description: "Extensive collection of vintage hand tools, woodworking equipment, and shop accessories.",
			StartsAt:    weekend,
			EndsAt:      timePtr(weekend.Add(7 * time.Hour)),
			Address:     "789 Salem Street, Medford, MA 02155",
			Latitude:    floatPtr(42.4184),
			Longitude:   floatPtr(-71.1061),
			Organizer:   "Boston Area Estate Sales",
			Categories:  []string{"Tools", "Vintage", "Collectibles"},
			PriceRange:  models.PriceLow,
			Type:        models.TypeEstateSale,
			Photos:      []string{},
		},
		{
			ID:          "4",
			Title:       "Online Auction - Fine Jewelry & Watches",
			Description: "Curated selection of fine jewelry, vintage watches, and precious metals.",
			StartsAt:    weekend,
			EndsAt:      timePtr(weekend.Add(3 * time.Hour)),
			Address:     "Online Only",
			Latitude:    floatPtr(42.3601),
			Longitude:   floatPtr(-71.0589),
			Organizer:   "Premier Auctions",
			Categories:  []string{"Jewelry", "Watches", "Collectibles"},
			PriceRange:  models.PriceHigh,
			Type:        models.TypeOnline,
			Photos: []string{
				"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400",
			},
		},
		{
			ID:          "5",
			Title:       "Country Home Estate - Furniture & Home Decor",
			Description: "Charming country home filled with rustic furniture, quilts, and Americana.",
			StartsAt:    nextWeek,
			EndsAt:      timePtr(nextWeek.AddDate(0, 0, 2)),
			Address:     "321 Main Street, Concord, MA 01742",
			Latitude:    floatPtr(42.4606),
			Longitude:   floatPtr(-71.3489),
			Organizer:   "Country Estate Sales",
			Categories:  []string{"Furniture", "Vintage", "Books", "China"},
			PriceRange:  models.PriceMid,
			Type:        models.TypeEstateSale,
			Photos:      []string{},
		},
	}

	for i := range listings {
		listings[i].FullDescription = listings[i].Description + fixtureFiller
		listings[i].Terms = terms
		listings[i].Contact = contact
	}
	return listings
}
