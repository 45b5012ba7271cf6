package repository

import (
	"context"

	"homenest-backend/internal/database"
	"homenest-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type RatingRepo struct {
	docs *Documents
}

func NewRatingRepo(db *database.Client) *RatingRepo {
	return &RatingRepo{
		docs: NewDocuments(db.Collection(models.RatingsCollection)),
	}
}

func (r *RatingRepo) Create(ctx context.Context, rating models.Document) (models.InsertResult, error) {
	return r.docs.Insert(ctx, rating)
}

func (r *RatingRepo) FindByReviewer(ctx context.Context, email string) ([]models.Document, error) {
	return r.docs.FindByFilter(ctx, bson.M{models.RatingReviewerField: email})
}

func (r *RatingRepo) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return r.docs.DeleteOne(ctx, id)
}

// EnsureIndexes creates the lookup index for the ratings collection
func (r *RatingRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.docs.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: models.RatingReviewerField, Value: 1}},
	})
	return err
}
