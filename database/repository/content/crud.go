package contentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctospeech/models"
	"doctospeech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoContentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := r.resources.Indexes().CreateOne(ctx, unique); err != nil {
		return fmt.Errorf("failed to create resource indexes: %w", err)
	}
	if _, err := r.ebooks.Indexes().CreateOne(ctx, unique); err != nil {
		return fmt.Errorf("failed to create ebook indexes: %w", err)
	}
	return nil
}

func (r *mongoContentRepo) CreateResource(ctx context.Context, resource *models.Resource) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resource.CreatedAt = time.Now()
	if _, err := r.resources.InsertOne(ctx, resource); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// ListResources returns resource summaries without their alphabets.
func (r *mongoContentRepo) ListResources(ctx context.Context) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"alphabets": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.resources.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer cursor.Close(ctx)

	resources := []models.Resource{}
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode resources: %w", err)
	}
	return resources, nil
}

func (r *mongoContentRepo) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var resource models.Resource
	if err := r.resources.FindOne(ctx, bson.M{"id": id}).Decode(&resource); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("resource %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch resource %s: %w", id, err)
	}
	return &resource, nil
}

func (r *mongoContentRepo) CreateEbook(ctx context.Context, ebook *models.Ebook) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ebook.CreatedAt = time.Now()
	if _, err := r.ebooks.InsertOne(ctx, ebook); err != nil {
		return fmt.Errorf("failed to create ebook: %w", err)
	}
	return nil
}

func (r *mongoContentRepo) ListEbooks(ctx context.Context) ([]models.Ebook, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.ebooks.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list ebooks: %w", err)
	}
	defer cursor.Close(ctx)

	ebooks := []models.Ebook{}
	if err := cursor.All(ctx, &ebooks); err != nil {
		return nil, fmt.Errorf("failed to decode ebooks: %w", err)
	}
	return ebooks, nil
}
