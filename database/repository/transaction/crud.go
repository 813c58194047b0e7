// File: database/repository/transaction/crud.go
package transactionRepo

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

// EnsureIndexes creates the necessary indexes on the transactions collection.
func (r *mongoTransactionRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "paymentIntentId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_payment_intent")},
		{Keys: bson.D{{Key: "payer", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("payer_created_idx")},
		{Keys: bson.D{{Key: "receiver", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("receiver_created_idx")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}

// Create inserts a transaction. A second transaction for the same payment
// intent is rejected by the unique index and reported as a conflict.
func (r *mongoTransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, tx); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("payment intent %s already recorded: %w", tx.PaymentIntentID, utils.ErrConflict)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *mongoTransactionRepo) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tx models.Transaction
	if err := r.coll.FindOne(ctx, bson.M{"paymentIntentId": paymentIntentID}).Decode(&tx); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("transaction for %s: %w", paymentIntentID, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return &tx, nil
}

func (r *mongoTransactionRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{bson.M{"payer": userID}, bson.M{"receiver": userID}}}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions of %s: %w", userID, err)
	}
	return res.DeletedCount, nil
}
