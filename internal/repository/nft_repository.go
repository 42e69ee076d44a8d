package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

type NFTRepository struct {
	Col *mongo.Collection
}

func NewNFTRepository(db *mongo.Database) *NFTRepository {
	return &NFTRepository{Col: db.Collection("nft_mints")}
}

func (r *NFTRepository) Insert(ctx context.Context, record *models.NFTRecord) error {
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

func (r *NFTRepository) FindByWallet(ctx context.Context, wallet string) ([]models.NFTRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"wallet": wallet})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.NFTRecord
	for cur.Next(ctx) {
		var rec models.NFTRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
