package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

// RewardRepository is an append-only log of token transfer attempts.
type RewardRepository struct {
	Col *mongo.Collection
}

func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{Col: db.Collection("reward_log")}
}

func (r *RewardRepository) Insert(ctx context.Context, record *models.RewardRecord) error {
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

// UpdateOutcome fills in the transfer result for a pending record.
func (r *RewardRepository) UpdateOutcome(ctx context.Context, id string, status models.RewardStatus, txDigest, message string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "tx_digest": txDigest, "message": message},
	})
	return err
}

func (r *RewardRepository) FindByWallet(ctx context.Context, wallet string, limit int64) ([]models.RewardRecord, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{"wallet": wallet}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.RewardRecord
	for cur.Next(ctx) {
		var rec models.RewardRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
