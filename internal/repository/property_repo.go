package repository

import (
	"context"

	"homenest-backend/internal/database"
	"homenest-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type PropertyRepo struct {
	docs *Documents
}

func NewPropertyRepo(db *database.Client) *PropertyRepo {
	return &PropertyRepo{
		docs: NewDocuments(db.Collection(models.PropertiesCollection)),
	}
}

func (r *PropertyRepo) Create(ctx context.Context, property models.Document) (models.InsertResult, error) {
	return r.docs.Insert(ctx, property)
}

func (r *PropertyRepo) All(ctx context.Context) ([]models.Document, error) {
	return r.docs.FindAll(ctx)
}

// Latest returns the newest properties by posted date.
func (r *PropertyRepo) Latest(ctx context.Context, limit int64) ([]models.Document, error) {
	return r.docs.FindSorted(ctx, models.PropertyPostedField, -1, limit)
}

func (r *PropertyRepo) FindByID(ctx context.Context, id string) (models.Document, error) {
	return r.docs.FindOne(ctx, id)
}

func (r *PropertyRepo) FindByOwner(ctx context.Context, email string) ([]models.Document, error) {
	return r.docs.FindByFilter(ctx, bson.M{models.PropertyOwnerField: email})
}

func (r *PropertyRepo) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return r.docs.DeleteOne(ctx, id)
}

// EnsureIndexes creates the lookup indexes for the properties collection
func (r *PropertyRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: models.PropertyOwnerField, Value: 1}}},
		{Keys: bson.D{{Key: models.PropertyPostedField, Value: -1}}},
	}
	_, err := r.docs.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
