package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"gamebot/internal/bootstrap"
	"gamebot/internal/domain/wordle"
)

const wordleCollection = "wordle"

type WordleRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewWordleRepository(cfg bootstrap.Config, log *zap.SugaredLogger, mongo *mongo.Database) *WordleRepository {
	return &WordleRepository{
		cfg:   cfg,
		log:   log,
		mongo: mongo,
	}
}

// GetOrCreate loads the per-user record, inserting a fresh one on first
// touch. The upsert makes first access and creation a single write.
func (r *WordleRepository) GetOrCreate(ctx context.Context, userID string) (wordle.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection(wordleCollection)
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":          userID,
			"answer":           "",
			"assigned_date":    "",
			"guesses":          []string{},
			"last_played_date": "",
			"wins":             0,
			"losses":           0,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var rec wordle.Record
	if err := collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rec); err != nil {
		r.log.Errorf("failed to load wordle record for %s: %v", userID, err)
		return wordle.Record{}, fmt.Errorf("load wordle record: %w", err)
	}
	return rec, nil
}

func (r *WordleRepository) Save(ctx context.Context, rec wordle.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection(wordleCollection)
	filter := bson.M{"user_id": rec.UserID}
	opts := options.Replace().SetUpsert(true)

	if _, err := collection.ReplaceOne(ctx, filter, rec, opts); err != nil {
		r.log.Errorf("failed to save wordle record for %s: %v", rec.UserID, err)
		return fmt.Errorf("save wordle record: %w", err)
	}
	return nil
}
