package certificationRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CertificationRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, c *models.Certification) error
	ListByUser(ctx context.Context, userID string) ([]models.Certification, error)
	Delete(ctx context.Context, id, userID string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type mongoCertificationRepo struct {
	coll *mongo.Collection
}

func NewMongoCertificationRepo(db *mongo.Database) CertificationRepository {
	return &mongoCertificationRepo{coll: db.Collection("certifications")}
}
