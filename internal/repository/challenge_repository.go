package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

type ChallengeRepository struct {
	Col            *mongo.Collection
	CompletionsCol *mongo.Collection
}

func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{
		Col:            db.Collection("daily_challenges"),
		CompletionsCol: db.Collection("challenge_completions"),
	}
}

func (r *ChallengeRepository) FindByDate(ctx context.Context, date string) ([]models.DailyChallenge, error) {
	cur, err := r.Col.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var challenges []models.DailyChallenge
	for cur.Next(ctx) {
		var ch models.DailyChallenge
		if err := cur.Decode(&ch); err != nil {
			return nil, err
		}
		challenges = append(challenges, ch)
	}
	return challenges, nil
}

func (r *ChallengeRepository) FindByID(ctx context.Context, id string) (*models.DailyChallenge, error) {
	var ch models.DailyChallenge
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *ChallengeRepository) Upsert(ctx context.Context, ch *models.DailyChallenge) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": ch.ID}, ch, opts)
	return err
}

// InsertCompletion records a completion; the _id scheme makes a second
// completion of the same challenge by the same wallet a duplicate-key error.
func (r *ChallengeRepository) InsertCompletion(ctx context.Context, completion *models.ChallengeCompletion) error {
	_, err := r.CompletionsCol.InsertOne(ctx, completion)
	return err
}

func (r *ChallengeRepository) HasCompleted(ctx context.Context, challengeID, wallet string) (bool, error) {
	count, err := r.CompletionsCol.CountDocuments(ctx, bson.M{"challenge_id": challengeID, "wallet": wallet})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
