package trainerRepo

import (
	"context"
	"fmt"
	"time"

	"onboardify/database"
	"onboardify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTrainerRepo implements TrainerRepository using MongoDB.
type MongoTrainerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainerRepo creates a new instance of TrainerRepository using MongoDB.
func NewMongoTrainerRepo() TrainerRepository {
	coll := database.MongoClient.Database("onboardify").Collection("trainers")
	return &MongoTrainerRepo{coll: coll}
}

func (r *MongoTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var trainer models.Trainer
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&trainer); err != nil {
		return nil, fmt.Errorf("failed to fetch trainer with id %s: %w", id, err)
	}
	return &trainer, nil
}

func (r *MongoTrainerRepo) GetByEmail(email string) (*models.Trainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var trainer models.Trainer
	filter := bson.M{"email": email}
	if err := r.coll.FindOne(ctx, filter).Decode(&trainer); err != nil {
		return nil, fmt.Errorf("failed to fetch trainer with email %s: %w", email, err)
	}
	return &trainer, nil
}

func (r *MongoTrainerRepo) GetAll() ([]models.Trainer, error) {
	return r.find(bson.M{})
}

func (r *MongoTrainerRepo) GetActive() ([]models.Trainer, error) {
	return r.find(bson.M{"active": true})
}

func (r *MongoTrainerRepo) find(filter bson.M) ([]models.Trainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trainers: %w", err)
	}
	defer cursor.Close(ctx)
	var trainers []models.Trainer
	for cursor.Next(ctx) {
		var t models.Trainer
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	return trainers, nil
}

func (r *MongoTrainerRepo) Upsert(trainer *models.Trainer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	trainer.UpdatedAt = time.Now()
	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = trainer.UpdatedAt
	}
	filter := bson.M{"id": trainer.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, trainer, opts); err != nil {
		return fmt.Errorf("failed to upsert trainer %s: %w", trainer.ID, err)
	}
	return nil
}

func (r *MongoTrainerRepo) SetCalendarGrant(id string, grant models.CalendarGrant) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"calendar":  grant,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update calendar grant for trainer %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("trainer %s not found", id)
	}
	return nil
}

func (r *MongoTrainerRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trainer %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("trainer %s not found", id)
	}
	return nil
}
