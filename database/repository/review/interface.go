package reviewRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, review *models.Review) error
	ListBySubject(ctx context.Context, subjectID string) ([]models.Review, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{coll: db.Collection("reviews")}
}
