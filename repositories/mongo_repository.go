package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

const (
	propertiesCollection = "properties"
	reviewsCollection    = "reviews"
)

// MongoReviewRepository reads the reviews collection. Documents are returned in natural
// (_id) order, which is insertion order for ObjectIDs.
type MongoReviewRepository struct {
	coll *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection(reviewsCollection)}
}

func (r *MongoReviewRepository) FindByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"property_id": propertyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("MongoReviewRepository.FindByProperty: %w", err)
	}
	defer cur.Close(ctx)

	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("MongoReviewRepository.FindByProperty decode: %w", err)
	}
	return reviews, nil
}

// MongoPropertyRepository reads the properties collection keyed by the property id.
type MongoPropertyRepository struct {
	coll *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database) *MongoPropertyRepository {
	return &MongoPropertyRepository{coll: db.Collection(propertiesCollection)}
}

// List returns properties ordered by the position field written by SeedMongo.
func (r *MongoPropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("MongoPropertyRepository.List: %w", err)
	}
	defer cur.Close(ctx)

	properties := []models.Property{}
	if err := cur.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("MongoPropertyRepository.List decode: %w", err)
	}
	return properties, nil
}

func (r *MongoPropertyRepository) Get(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("MongoPropertyRepository.Get: %w", err)
	}
	return &p, nil
}

// SeedMongo fills empty collections with the given catalogue and reviews.
func SeedMongo(ctx context.Context, db *mongo.Database, properties []models.Property, reviews map[string][]models.Review) error {
	props := db.Collection(propertiesCollection)
	n, err := props.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if n == 0 && len(properties) > 0 {
		docs := make([]interface{}, 0, len(properties))
		for i, p := range properties {
			doc, err := withPosition(p, i)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		if _, err := props.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed properties: %w", err)
		}
	}

	revs := db.Collection(reviewsCollection)
	n, err = revs.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count reviews: %w", err)
	}
	if n > 0 {
		return nil
	}
	var docs []interface{}
	for _, r := range seedReviewOrder(properties, reviews) {
		docs = append(docs, r)
	}
	if len(docs) == 0 {
		return nil
	}
	// Ordered inserts keep ObjectIDs increasing in display order.
	if _, err := revs.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}
	return nil
}

func withPosition(p models.Property, position int) (bson.M, error) {
	raw, err := bson.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode property %s: %w", p.ID, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode property %s: %w", p.ID, err)
	}
	doc["position"] = position
	return doc, nil
}
