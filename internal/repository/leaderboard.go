package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"gamebot/internal/bootstrap"
	"gamebot/internal/domain/leaderboard"
	errs "gamebot/internal/errors"
)

const (
	leaderboardCollection = "leaderboard"
	pointsKey             = "leaderboard:points"
)

// LeaderboardRepository keeps the durable ledger in mongo and mirrors
// point totals into a redis sorted set for rank queries. The mirror is
// best-effort and rebuilt from mongo when a member is missing.
type LeaderboardRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewLeaderboardRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *LeaderboardRepository {
	return &LeaderboardRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

func (r *LeaderboardRepository) Get(ctx context.Context, userID string) (leaderboard.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection(leaderboardCollection)
	filter := bson.M{"user_id": userID}

	var rec leaderboard.Record
	err := collection.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return leaderboard.Record{UserID: userID}, errs.ErrRecordNotFound
	} else if err != nil {
		r.log.Errorf("failed to load leaderboard record for %s: %v", userID, err)
		return leaderboard.Record{}, fmt.Errorf("load leaderboard record: %w", err)
	}
	return rec, nil
}

// ApplyDelta increments points and games_played in a single upsert, so
// concurrent deltas for the same user cannot lose updates.
func (r *LeaderboardRepository) ApplyDelta(ctx context.Context, userID string, points int, games int) (leaderboard.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection(leaderboardCollection)
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$inc": bson.M{
			"points":       points,
			"games_played": games,
		},
		"$setOnInsert": bson.M{
			"user_id": userID,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var rec leaderboard.Record
	if err := collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rec); err != nil {
		r.log.Errorf("failed to apply delta for %s: %v", userID, err)
		return leaderboard.Record{}, fmt.Errorf("apply leaderboard delta: %w", err)
	}

	if err := r.redis.ZAdd(ctx, pointsKey, redis.Z{
		Score:  float64(rec.Points),
		Member: rec.UserID,
	}).Err(); err != nil {
		r.log.Errorf("failed to mirror points for %s: %v", userID, err)
	}

	return rec, nil
}

// All returns every record sorted by points descending. The secondary
// _id sort keeps ties in insertion order, records are created lazily so
// _id order is first-touch order.
func (r *LeaderboardRepository) All(ctx context.Context) ([]leaderboard.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection(leaderboardCollection)
	opts := options.Find().SetSort(bson.D{
		{Key: "points", Value: -1},
		{Key: "_id", Value: 1},
	})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error(err)
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	defer cursor.Close(ctx)

	var result []leaderboard.Record
	for cursor.Next(ctx) {
		var rec leaderboard.Record
		if err = cursor.Decode(&rec); err != nil {
			r.log.Error(err)
			return nil, fmt.Errorf("decode leaderboard record: %w", err)
		}
		result = append(result, rec)
	}
	return result, cursor.Err()
}

// Rank answers a zero-based descending rank from the redis mirror.
func (r *LeaderboardRepository) Rank(ctx context.Context, userID string) (int64, error) {
	rnk, err := r.redis.ZRevRank(ctx, pointsKey, userID).Result()
	if errors.Is(err, redis.Nil) {
		if err = r.rebuildMirror(ctx); err != nil {
			return 0, err
		}
		rnk, err = r.redis.ZRevRank(ctx, pointsKey, userID).Result()
		if errors.Is(err, redis.Nil) {
			return 0, errs.ErrRecordNotFound
		}
	}
	if err != nil {
		r.log.Errorf("failed to rank %s: %v", userID, err)
		return 0, fmt.Errorf("rank lookup: %w", err)
	}
	return rnk, nil
}

func (r *LeaderboardRepository) rebuildMirror(ctx context.Context) error {
	records, err := r.All(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	members := make([]redis.Z, 0, len(records))
	for _, rec := range records {
		members = append(members, redis.Z{Score: float64(rec.Points), Member: rec.UserID})
	}
	if err := r.redis.ZAdd(ctx, pointsKey, members...).Err(); err != nil {
		return fmt.Errorf("rebuild rank mirror: %w", err)
	}
	r.log.Infof("rank mirror rebuilt with %d members", len(members))
	return nil
}
