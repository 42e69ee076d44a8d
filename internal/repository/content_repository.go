package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

type ContentRepository struct {
	Col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{Col: db.Collection("module_content")}
}

func (r *ContentRepository) FindByTopic(ctx context.Context, topicID string) (*models.ModuleContent, error) {
	var mc models.ModuleContent
	if err := r.Col.FindOne(ctx, bson.M{"_id": topicID}).Decode(&mc); err != nil {
		return nil, err
	}
	return &mc, nil
}

// Upsert stores generated content with merge semantics so regeneration
// replaces a stale record in place.
func (r *ContentRepository) Upsert(ctx context.Context, mc *models.ModuleContent) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": mc.TopicID}, mc, opts)
	return err
}
