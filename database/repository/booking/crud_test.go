package bookingRepo

import (
	"context"
	"testing"

	"doctospeech/models"
	"doctospeech/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreate_DuplicateKeyIsSlotAlreadyBooked(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: doctospeech.bookings index: " + ActiveSlotIndex,
		}))

		repo := NewMongoBookingRepo(mt.DB)
		err := repo.Create(context.Background(), &models.Booking{
			ID: "b1", TherapistID: "t1", BookedBy: "c1", TimeID: "time-1", Date: "2030-01-07", Status: models.StatusPending,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrSlotAlreadyBooked)
	})

	mt.Run("success sets holdsSlot", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewMongoBookingRepo(mt.DB)
		b := &models.Booking{ID: "b2", TherapistID: "t1", BookedBy: "c1", TimeID: "time-1", Date: "2030-01-07", Status: models.StatusPending}
		require.NoError(t, repo.Create(context.Background(), b))
		assert.True(t, b.HoldsSlot)
		assert.False(t, b.CreatedAt.IsZero())
	})
}

func TestGetByID_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctospeech.bookings", mtest.FirstBatch))

		repo := NewMongoBookingRepo(mt.DB)
		_, err := repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})
}

func TestTransition_LostRaceIsInvalidTransition(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		repo := NewMongoBookingRepo(mt.DB)
		_, err := repo.Transition(context.Background(), "b1", models.Transition{From: models.StatusPending, To: models.StatusAccepted})
		assert.ErrorIs(t, err, utils.ErrInvalidTransition)
	})

	mt.Run("match", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "id", Value: "b1"},
				{Key: "status", Value: "Accepted"},
				{Key: "holdsSlot", Value: true},
			}},
		})

		repo := NewMongoBookingRepo(mt.DB)
		updated, err := repo.Transition(context.Background(), "b1", models.Transition{From: models.StatusPending, To: models.StatusAccepted})
		require.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, updated.Status)
	})
}

func TestDeleteActive_NothingDeleted(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("terminal booking", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		repo := NewMongoBookingRepo(mt.DB)
		err := repo.DeleteActive(context.Background(), "b1", "c1")
		assert.ErrorIs(t, err, utils.ErrInvalidTransition)
	})
}
