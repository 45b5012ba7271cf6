package repository

import (
	"context"
	"errors"
	"fmt"

	"homenest-backend/internal/models"
	"homenest-backend/internal/observability"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrInvalidID is returned when an id is not a 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid document id")

// Documents is a pass-through wrapper over one collection. Documents are
// stored exactly as received and returned exactly as stored.
type Documents struct {
	name       string
	collection *mongo.Collection
}

func NewDocuments(collection *mongo.Collection) *Documents {
	return &Documents{name: collection.Name(), collection: collection}
}

func (d *Documents) Insert(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	result, err := d.collection.InsertOne(ctx, doc)
	observability.ObserveStore(d.name, "insert", err)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert into %s: %w", d.name, err)
	}
	return models.InsertResult{Acknowledged: result.Acknowledged, InsertedID: result.InsertedID}, nil
}

func (d *Documents) FindAll(ctx context.Context) ([]models.Document, error) {
	return d.find(ctx, "find_all", bson.M{})
}

func (d *Documents) FindByFilter(ctx context.Context, filter bson.M) ([]models.Document, error) {
	return d.find(ctx, "find_filter", filter)
}

// FindSorted returns at most limit documents ordered by sortKey. direction is
// 1 for ascending and -1 for descending.
func (d *Documents) FindSorted(ctx context.Context, sortKey string, direction int, limit int64) ([]models.Document, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: sortKey, Value: direction}}).
		SetLimit(limit)
	return d.find(ctx, "find_sorted", bson.M{}, opts)
}

// FindOne returns the document with the given id, or nil if none exists.
func (d *Documents) FindOne(ctx context.Context, id string) (models.Document, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc models.Document
	err = d.collection.FindOne(ctx, bson.M{models.IDField: oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observability.ObserveStore(d.name, "find_one", nil)
		return nil, nil
	}
	observability.ObserveStore(d.name, "find_one", err)
	if err != nil {
		return nil, fmt.Errorf("find %s in %s: %w", id, d.name, err)
	}
	return doc, nil
}

func (d *Documents) DeleteOne(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.DeleteResult{}, ErrInvalidID
	}

	result, err := d.collection.DeleteOne(ctx, bson.M{models.IDField: oid})
	observability.ObserveStore(d.name, "delete", err)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete %s from %s: %w", id, d.name, err)
	}
	return models.DeleteResult{Acknowledged: result.Acknowledged, DeletedCount: result.DeletedCount}, nil
}

func (d *Documents) find(ctx context.Context, op string, filter bson.M, opts ...options.Lister[options.FindOptions]) ([]models.Document, error) {
	cursor, err := d.collection.Find(ctx, filter, opts...)
	if err != nil {
		observability.ObserveStore(d.name, op, err)
		return nil, fmt.Errorf("%s on %s: %w", op, d.name, err)
	}

	// Non-nil so an empty result encodes as [] rather than null
	docs := []models.Document{}
	err = cursor.All(ctx, &docs)
	observability.ObserveStore(d.name, op, err)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", op, d.name, err)
	}
	return docs, nil
}
