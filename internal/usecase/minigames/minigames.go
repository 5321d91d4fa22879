package minigames

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gamebot/internal/domain/leaderboard"
	"gamebot/internal/domain/minigames"
	errs "gamebot/internal/errors"
	"gamebot/internal/usecase"
)

// Ledger is the slice of the leaderboard engine the wager games need.
type Ledger interface {
	GetPoints(ctx context.Context, userID string) (int, error)
	ApplyDelta(ctx context.Context, userID string, points int, games int) (leaderboard.Record, error)
}

// Engine settles coinflip and rock-paper-scissors wagers against the
// ledger. The balance check and the delta for one user run under the
// same lock, concurrent games cannot spend the same points twice.
type Engine struct {
	ledger Ledger
	log    *zap.SugaredLogger
	rng    *rand.Rand
	locks  usecase.KeyedMutex
}

func NewEngine(ledger Ledger, rng *rand.Rand, log *zap.SugaredLogger) *Engine {
	return &Engine{
		ledger: ledger,
		log:    log,
		rng:    rng,
	}
}

func (e *Engine) Coinflip(ctx context.Context, userID string, side minigames.CoinSide, wager int) (minigames.CoinflipResult, error) {
	if side != minigames.SideHeads && side != minigames.SideTails {
		return minigames.CoinflipResult{}, errs.ErrUnknownChoice
	}

	unlock := e.locks.Lock(userID)
	defer unlock()

	landed := minigames.SideHeads
	if e.rng.Intn(2) == 1 {
		landed = minigames.SideTails
	}

	result := minigames.CoinflipResult{
		ChallengeID: uuid.New().String(),
		Landed:      landed,
		Guessed:     side == landed,
		Wager:       wager,
	}

	if wager > 0 {
		points, err := e.settle(ctx, userID, wager, result.Guessed, false)
		result.Points = points
		if err != nil {
			return result, err
		}
	}

	e.log.Infof("coinflip %s: %s landed %s wager %d", result.ChallengeID, userID, landed, wager)
	return result, nil
}

func (e *Engine) PlayRPS(ctx context.Context, userID string, choice minigames.RPSChoice, wager int) (minigames.RPSResult, error) {
	if beats(choice) == "" {
		return minigames.RPSResult{}, errs.ErrUnknownChoice
	}

	unlock := e.locks.Lock(userID)
	defer unlock()

	choices := []minigames.RPSChoice{minigames.ChoiceRock, minigames.ChoicePaper, minigames.ChoiceScissors}
	bot := choices[e.rng.Intn(len(choices))]

	outcome := minigames.RPSTie
	switch {
	case beats(choice) == bot:
		outcome = minigames.RPSWin
	case beats(bot) == choice:
		outcome = minigames.RPSLoss
	}

	result := minigames.RPSResult{
		ChallengeID: uuid.New().String(),
		Player:      choice,
		Bot:         bot,
		Outcome:     outcome,
		Wager:       wager,
	}

	if wager > 0 {
		points, err := e.settle(ctx, userID, wager, outcome == minigames.RPSWin, outcome == minigames.RPSTie)
		result.Points = points
		if err != nil {
			return result, err
		}
	}

	e.log.Infof("rps %s: %s played %s vs %s, %s, wager %d", result.ChallengeID, userID, choice, bot, outcome, wager)
	return result, nil
}

// settle validates the wager against the current balance and applies the
// outcome. Ties move no points but still count the game.
func (e *Engine) settle(ctx context.Context, userID string, wager int, won bool, tie bool) (int, error) {
	points, err := e.ledger.GetPoints(ctx, userID)
	if err != nil {
		return 0, err
	}
	if wager > points {
		return points, errs.ErrWagerTooLarge
	}

	delta := 0
	if !tie {
		delta = wager
		if !won {
			delta = -wager
		}
	}

	rec, err := e.ledger.ApplyDelta(ctx, userID, delta, 1)
	if err != nil {
		return 0, err
	}
	return rec.Points, nil
}

func beats(c minigames.RPSChoice) minigames.RPSChoice {
	switch c {
	case minigames.ChoiceRock:
		return minigames.ChoiceScissors
	case minigames.ChoicePaper:
		return minigames.ChoiceRock
	case minigames.ChoiceScissors:
		return minigames.ChoicePaper
	}
	return ""
}
