package merchantRepo

import (
	"context"
	"fmt"
	"time"

	"onboardify/database"
	"onboardify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMerchantRepo implements MerchantRepository using MongoDB.
type MongoMerchantRepo struct {
	coll *mongo.Collection
}

// NewMongoMerchantRepo creates a new instance of MerchantRepository using MongoDB.
func NewMongoMerchantRepo() MerchantRepository {
	coll := database.MongoClient.Database("onboardify").Collection("merchants")
	return &MongoMerchantRepo{coll: coll}
}

func (r *MongoMerchantRepo) GetByID(id string) (*models.Merchant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var merchant models.Merchant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&merchant); err != nil {
		return nil, fmt.Errorf("failed to fetch merchant with id %s: %w", id, err)
	}
	return &merchant, nil
}

func (r *MongoMerchantRepo) GetAll() ([]models.Merchant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve merchants: %w", err)
	}
	defer cursor.Close(ctx)
	var merchants []models.Merchant
	for cursor.Next(ctx) {
		var m models.Merchant
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	return merchants, nil
}

func (r *MongoMerchantRepo) Create(merchant *models.Merchant) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	merchant.CreatedAt = time.Now()
	merchant.UpdatedAt = merchant.CreatedAt
	if _, err := r.coll.InsertOne(ctx, merchant); err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}
	return nil
}

func (r *MongoMerchantRepo) Update(merchant *models.Merchant) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	merchant.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": merchant.ID}, merchant)
	if err != nil {
		return fmt.Errorf("failed to update merchant %s: %w", merchant.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("merchant %s not found", merchant.ID)
	}
	return nil
}

func (r *MongoMerchantRepo) SetStage(id string, stage string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"stage": stage, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update stage for merchant %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("merchant %s not found", id)
	}
	return nil
}
