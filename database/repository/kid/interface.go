package kidRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type KidRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, kid *models.Kid) error
	GetByID(ctx context.Context, id string) (*models.Kid, error)
	ListByUser(ctx context.Context, userID string) ([]models.Kid, error)
	Delete(ctx context.Context, id, userID string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type mongoKidRepo struct {
	coll *mongo.Collection
}

func NewMongoKidRepo(db *mongo.Database) KidRepository {
	return &mongoKidRepo{coll: db.Collection("kids")}
}
