// File: database/repository/transaction/interface.go
package transactionRepo

import (
	"context"

	"doctospeech/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, tx *models.Transaction) error
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Transaction, error)
	ListByPayer(ctx context.Context, payerID string) ([]models.Transaction, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]models.Transaction, error)
	SumByReceiver(ctx context.Context, receiverID string) (float64, int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type mongoTransactionRepo struct {
	coll *mongo.Collection
}

func NewMongoTransactionRepo(db *mongo.Database) TransactionRepository {
	return &mongoTransactionRepo{coll: db.Collection("transactions")}
}
