package kidRepo

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

func (r *mongoKidRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create kid indexes: %w", err)
	}
	return nil
}

func (r *mongoKidRepo) Create(ctx context.Context, kid *models.Kid) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	kid.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, kid); err != nil {
		return fmt.Errorf("failed to create kid: %w", err)
	}
	return nil
}

func (r *mongoKidRepo) GetByID(ctx context.Context, id string) (*models.Kid, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var kid models.Kid
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&kid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("kid %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch kid %s: %w", id, err)
	}
	return &kid, nil
}

func (r *mongoKidRepo) ListByUser(ctx context.Context, userID string) ([]models.Kid, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list kids: %w", err)
	}
	defer cursor.Close(ctx)

	kids := []models.Kid{}
	if err := cursor.All(ctx, &kids); err != nil {
		return nil, fmt.Errorf("failed to decode kids: %w", err)
	}
	return kids, nil
}

// Delete removes a kid owned by userID.
func (r *mongoKidRepo) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user": userID})
	if err != nil {
		return fmt.Errorf("failed to delete kid %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("kid %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

func (r *mongoKidRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"user": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete kids of %s: %w", userID, err)
	}
	return res.DeletedCount, nil
}
