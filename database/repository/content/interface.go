package contentRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContentRepository stores speech resources and ebooks.
type ContentRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateResource(ctx context.Context, resource *models.Resource) error
	ListResources(ctx context.Context) ([]models.Resource, error)
	GetResource(ctx context.Context, id string) (*models.Resource, error)
	CreateEbook(ctx context.Context, ebook *models.Ebook) error
	ListEbooks(ctx context.Context) ([]models.Ebook, error)
}

type mongoContentRepo struct {
	resources *mongo.Collection
	ebooks    *mongo.Collection
}

func NewMongoContentRepo(db *mongo.Database) ContentRepository {
	return &mongoContentRepo{
		resources: db.Collection("resources"),
		ebooks:    db.Collection("ebooks"),
	}
}
