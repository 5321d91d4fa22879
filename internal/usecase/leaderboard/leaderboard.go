package leaderboard

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"gamebot/internal/domain/leaderboard"
	"gamebot/internal/domain/rank"
	errs "gamebot/internal/errors"
)

type Store interface {
	Get(ctx context.Context, userID string) (leaderboard.Record, error)
	ApplyDelta(ctx context.Context, userID string, points int, games int) (leaderboard.Record, error)
	All(ctx context.Context) ([]leaderboard.Record, error)
	Rank(ctx context.Context, userID string) (int64, error)
}

// RoleSink applies a tier to a user somewhere outside this process.
// Errors are the sink's problem to report; the ledger never rolls back
// because a role could not be set.
type RoleSink interface {
	AssignTier(userID string, tier rank.Tier) error
}

type Engine struct {
	store Store
	roles RoleSink
	log   *zap.SugaredLogger
}

func NewEngine(store Store, roles RoleSink, log *zap.SugaredLogger) *Engine {
	return &Engine{
		store: store,
		roles: roles,
		log:   log,
	}
}

// ApplyDelta moves points and games for one user and kicks off role
// re-evaluation in the background. The returned record reflects the
// persisted totals whether or not the role sync succeeds.
func (e *Engine) ApplyDelta(ctx context.Context, userID string, points int, games int) (leaderboard.Record, error) {
	rec, err := e.store.ApplyDelta(ctx, userID, points, games)
	if err != nil {
		return leaderboard.Record{}, err
	}

	if e.roles != nil {
		tier := rank.TierFor(rec.Points)
		go func() {
			if err := e.roles.AssignTier(userID, tier); err != nil {
				e.log.Errorf("role sync for %s (%s) failed: %v", userID, tier.Name, err)
			}
		}()
	}

	return rec, nil
}

// GetPoints treats an unknown user as a zero balance, the record is
// created on first write.
func (e *Engine) GetPoints(ctx context.Context, userID string) (int, error) {
	rec, err := e.store.Get(ctx, userID)
	if errors.Is(err, errs.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.Points, nil
}

// TopN returns up to n records by points descending, ties in insertion
// order. An empty ledger is reported as ErrEmptyLeaderboard, not as a
// failure.
func (e *Engine) TopN(ctx context.Context, n int) ([]leaderboard.Record, error) {
	all, err := e.store.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, errs.ErrEmptyLeaderboard
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Points > all[j].Points
	})

	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}

// Rank is one-based for display.
func (e *Engine) Rank(ctx context.Context, userID string) (leaderboard.RankResponse, error) {
	rnk, err := e.store.Rank(ctx, userID)
	if err != nil {
		return leaderboard.RankResponse{}, err
	}
	points, err := e.GetPoints(ctx, userID)
	if err != nil {
		return leaderboard.RankResponse{}, err
	}
	return leaderboard.RankResponse{
		UserID: userID,
		Rank:   rnk + 1,
		Points: points,
	}, nil
}
