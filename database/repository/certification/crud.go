package certificationRepo

import (
	"context"
	"fmt"
	"time"

	"doctospeech/models"
	"doctospeech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoCertificationRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create certification indexes: %w", err)
	}
	return nil
}

func (r *mongoCertificationRepo) Create(ctx context.Context, c *models.Certification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create certification: %w", err)
	}
	return nil
}

func (r *mongoCertificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Certification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "completionYear", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer cursor.Close(ctx)

	certs := []models.Certification{}
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, fmt.Errorf("failed to decode certifications: %w", err)
	}
	return certs, nil
}

// Delete removes a certification owned by userID.
func (r *mongoCertificationRepo) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete certification %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("certification %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

func (r *mongoCertificationRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete certifications of %s: %w", userID, err)
	}
	return res.DeletedCount, nil
}
