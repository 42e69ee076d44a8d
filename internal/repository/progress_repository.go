package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("user_progress")}
}

// FindOrCreate returns the progress record for a wallet, inserting a fresh
// default record on first sight.
func (r *ProgressRepository) FindOrCreate(ctx context.Context, wallet string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"_id": wallet}).Decode(&progress)
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	fresh := models.NewUserProgress(wallet)
	if _, err := r.Col.InsertOne(ctx, fresh); err != nil {
		// Another session may have created it between the read and the
		// insert; re-read in that case.
		if mongo.IsDuplicateKeyError(err) {
			if rerr := r.Col.FindOne(ctx, bson.M{"_id": wallet}).Decode(&progress); rerr == nil {
				return &progress, nil
			}
		}
		return nil, err
	}
	return fresh, nil
}

// AddXP increments the XP counter and merges in the recomputed level.
func (r *ProgressRepository) AddXP(ctx context.Context, wallet string, xp int64, newLevel int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": wallet}, bson.M{
		"$inc": bson.M{"total_xp": xp},
		"$set": bson.M{"level": newLevel, "updated_at": time.Now().UTC()},
	})
	return err
}

// CompleteModule appends a module id (set semantics) and advances the
// galaxy/module pointers.
func (r *ProgressRepository) CompleteModule(ctx context.Context, wallet, moduleID string, galaxy, module int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": wallet}, bson.M{
		"$addToSet": bson.M{"completed_modules": moduleID},
		"$set": bson.M{
			"current_galaxy": galaxy,
			"current_module": module,
			"updated_at":     time.Now().UTC(),
		},
	})
	return err
}

// SetStreak stores the streak counter and login date after a streak update.
func (r *ProgressRepository) SetStreak(ctx context.Context, wallet string, streak int, loginDate string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": wallet}, bson.M{
		"$set": bson.M{
			"streak":          streak,
			"last_login_date": loginDate,
			"updated_at":      time.Now().UTC(),
		},
	})
	return err
}

// IncrementBoxesOpened bumps the mystery box counter.
func (r *ProgressRepository) IncrementBoxesOpened(ctx context.Context, wallet string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": wallet}, bson.M{
		"$inc": bson.M{"boxes_opened": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}, opts)
	return err
}
