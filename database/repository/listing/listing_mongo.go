package listingRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"heirloom/database"
	"heirloom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// metersPerMile converts the request radius for $geoNear.
const metersPerMile = 1609.34

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a ListingRepository over the "listings"
// collection of the configured database.
func NewMongoListingRepo(dbName string) *MongoListingRepo {
	coll := database.MongoClient.Database(dbName).Collection("listings")
	return &MongoListingRepo{coll: coll}
}

// EnsureIndexes creates the id and geo indexes the queries depend on.
func (r *MongoListingRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "locationGeo", Value: "2dsphere"}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create listing indexes: %w", err)
	}
	return nil
}

// SeedIfEmpty loads the fixture set into an empty collection so a fresh
// deployment has data to serve.
func (r *MongoListingRepo) SeedIfEmpty(ctx context.Context) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count listings: %w", err)
	}
	if count > 0 {
		return nil
	}

	fixtures := Fixtures(time.Now())
	docs := make([]interface{}, 0, len(fixtures))
	for i := range fixtures {
		l := fixtures[i]
		if l.HasCoords() {
			l.LocationGeo = &models.GeoPoint{
				Type:        "Point",
				Coordinates: []float64{*l.Longitude, *l.Latitude},
			}
		}
		docs = append(docs, l)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}
	return nil
}

// Search fetches a candidate set for the request: a $geoNear prefilter when
// an origin is known, and a coarse text match on the query. Exact filter and
// ordering semantics stay with the search service.
func (r *MongoListingRepo) Search(ctx context.Context, req models.SearchRequest) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var pipeline mongo.Pipeline

	// $geoNear must come first to filter and sort by distance. Listings
	// without locationGeo (online only) are fetched separately below.
	if req.Origin != nil && req.Radius > 0 {
		pipeline = append(pipeline, bson.D{
			{Key: "$geoNear", Value: bson.D{
				{Key: "near", Value: bson.D{
					{Key: "type", Value: "Point"},
					{Key: "coordinates", Value: []float64{req.Origin.Longitude, req.Origin.Latitude}},
				}},
				{Key: "distanceField", Value: "geoDistance"},
				{Key: "spherical", Value: true},
				{Key: "maxDistance", Value: float64(req.Radius) * metersPerMile},
			}},
		})
	}

	if req.Query != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": queryClauses(req.Query),
		}}})
	}

	// List responses carry the summary fields only.
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"fullDescription": 0,
		"terms":           0,
		"contact":         0,
		"geoDistance":     0,
	}}})

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("listing search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}

	// Listings with no coordinates never enter a $geoNear stage, but the
	// distance filter must not reject them either.
	if req.Origin != nil && req.Radius > 0 {
		online, err := r.findWithoutCoords(ctx, req.Query)
		if err != nil {
			return nil, err
		}
		listings = append(listings, online...)
	}
	return listings, nil
}

// queryClauses builds a case-insensitive substring match over the searchable
// text fields. The query is escaped so regex metacharacters match literally:
// "a+b" must find a listing titled "A+B Estate", not "ab".
func queryClauses(query string) []bson.M {
	pattern := regexp.QuoteMeta(query)
	return []bson.M{
		{"title": bson.M{"$regex": pattern, "$options": "i"}},
		{"address": bson.M{"$regex": pattern, "$options": "i"}},
		{"categories": bson.M{"$regex": pattern, "$options": "i"}},
	}
}

func (r *MongoListingRepo) findWithoutCoords(ctx context.Context, query string) ([]models.Listing, error) {
	filter := bson.M{"locationGeo": bson.M{"$exists": false}}
	if query != "" {
		filter["$or"] = queryClauses(query)
	}

	opts := options.Find().SetProjection(bson.M{
		"fullDescription": 0,
		"terms":           0,
		"contact":         0,
	})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch online-only listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode online-only listings: %w", err)
	}
	return listings, nil
}

// GetByID returns the full listing document for id.
func (r *MongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}
