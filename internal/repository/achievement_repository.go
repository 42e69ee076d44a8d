package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

type AchievementRepository struct {
	Col *mongo.Collection
}

func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{Col: db.Collection("user_achievements")}
}

func (r *AchievementRepository) FindByWallet(ctx context.Context, wallet string) ([]models.UserAchievement, error) {
	cur, err := r.Col.Find(ctx, bson.M{"wallet": wallet})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var unlocked []models.UserAchievement
	for cur.Next(ctx) {
		var ua models.UserAchievement
		if err := cur.Decode(&ua); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, ua)
	}
	return unlocked, nil
}

// Insert records an unlock; the "<wallet>:<achievement>" _id makes repeat
// unlocks duplicate-key errors, which callers treat as already-unlocked.
func (r *AchievementRepository) Insert(ctx context.Context, ua *models.UserAchievement) error {
	_, err := r.Col.InsertOne(ctx, ua)
	return err
}
