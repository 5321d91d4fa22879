package wordle

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"gamebot/internal/domain/wordle"
	"gamebot/internal/usecase"
)

type Store interface {
	GetOrCreate(ctx context.Context, userID string) (wordle.Record, error)
	Save(ctx context.Context, rec wordle.Record) error
}

type Words interface {
	Contains(word string) bool
	Random() string
}

// Engine runs the daily word game: one answer per user per day, up to
// MaxAttempts guesses, terminal win/loss sticky until the date advances.
type Engine struct {
	store Store
	words Words
	clock usecase.Clock
	log   *zap.SugaredLogger
	locks usecase.KeyedMutex
}

func NewEngine(store Store, words Words, clock usecase.Clock, log *zap.SugaredLogger) *Engine {
	return &Engine{
		store: store,
		words: words,
		clock: clock,
		log:   log,
	}
}

// AssignOrRefreshAnswer draws a new answer when the stored one is from a
// previous day and clears that day's guesses. Calling it again on the
// same day is a no-op.
func (e *Engine) AssignOrRefreshAnswer(ctx context.Context, userID string) error {
	unlock := e.locks.Lock(userID)
	defer unlock()

	rec, err := e.store.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return e.refreshLocked(ctx, &rec)
}

// refreshLocked assumes the caller holds the user's lock.
func (e *Engine) refreshLocked(ctx context.Context, rec *wordle.Record) error {
	today := e.clock.Today()
	if rec.AssignedDate == today {
		return nil
	}
	rec.Answer = e.words.Random()
	rec.AssignedDate = today
	rec.Guesses = []string{}
	return e.store.Save(ctx, *rec)
}

// SubmitGuess validates and applies one guess. Check order matters:
// completed-today wins over format, format over list membership, list
// membership over attempt accounting.
func (e *Engine) SubmitGuess(ctx context.Context, userID, guess string) (wordle.Result, error) {
	unlock := e.locks.Lock(userID)
	defer unlock()

	rec, err := e.store.GetOrCreate(ctx, userID)
	if err != nil {
		return wordle.Result{}, err
	}
	if err = e.refreshLocked(ctx, &rec); err != nil {
		return wordle.Result{}, err
	}

	today := e.clock.Today()
	if rec.LastPlayedDate == today {
		return wordle.Result{
			Outcome:  wordle.OutcomeAlreadyComplete,
			WonToday: wonWith(rec.Guesses, rec.Answer),
		}, nil
	}

	guess = strings.ToLower(strings.TrimSpace(guess))
	if !validFormat(guess) {
		return wordle.Result{Outcome: wordle.OutcomeInvalidFormat}, nil
	}
	if !e.words.Contains(guess) {
		return wordle.Result{Outcome: wordle.OutcomeNotInWordList}, nil
	}

	answer := strings.ToLower(rec.Answer)

	// Guess budget already spent: the overflow guess still lands in the
	// record and the loss is booked exactly once, the completed-today
	// check shields every later call.
	if len(rec.Guesses) >= wordle.MaxAttempts {
		rec.Guesses = append(rec.Guesses, guess)
		rec.Losses++
		rec.LastPlayedDate = today
		if err = e.store.Save(ctx, rec); err != nil {
			return wordle.Result{}, err
		}
		return wordle.Result{Outcome: wordle.OutcomeOutOfAttempts, Answer: rec.Answer}, nil
	}

	rec.Guesses = append(rec.Guesses, guess)
	attempt := len(rec.Guesses)

	if guess == answer {
		rec.Wins++
		rec.LastPlayedDate = today
		if err = e.store.Save(ctx, rec); err != nil {
			return wordle.Result{}, err
		}
		return wordle.Result{Outcome: wordle.OutcomeWin, Attempt: attempt}, nil
	}

	marks := Score(guess, answer)

	if attempt >= wordle.MaxAttempts {
		rec.Losses++
		rec.LastPlayedDate = today
		if err = e.store.Save(ctx, rec); err != nil {
			return wordle.Result{}, err
		}
		return wordle.Result{
			Outcome: wordle.OutcomeLoss,
			Attempt: attempt,
			Answer:  rec.Answer,
			Marks:   marks,
		}, nil
	}

	if err = e.store.Save(ctx, rec); err != nil {
		return wordle.Result{}, err
	}
	return wordle.Result{
		Outcome: wordle.OutcomeContinue,
		Attempt: attempt,
		Marks:   marks,
	}, nil
}

func (e *Engine) CompletedToday(ctx context.Context, userID string) (bool, error) {
	rec, err := e.store.GetOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}
	return rec.LastPlayedDate == e.clock.Today(), nil
}

// Snapshot returns the current record for board rendering and stats.
func (e *Engine) Snapshot(ctx context.Context, userID string) (wordle.Record, error) {
	return e.store.GetOrCreate(ctx, userID)
}

func (e *Engine) Stats(ctx context.Context, userID string) (wordle.Stats, error) {
	rec, err := e.store.GetOrCreate(ctx, userID)
	if err != nil {
		return wordle.Stats{}, err
	}
	stats := wordle.Stats{
		UserID: userID,
		Wins:   rec.Wins,
		Losses: rec.Losses,
	}
	if games := rec.Wins + rec.Losses; games > 0 {
		stats.WinPct = rec.Wins * 100 / games
	}
	return stats, nil
}

// Score classifies each guess letter against the answer. A letter that
// appears anywhere in the answer marks Present regardless of how many
// times the answer actually contains it.
func Score(guess, answer string) []wordle.Mark {
	marks := make([]wordle.Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case i < len(answer) && guess[i] == answer[i]:
			marks[i] = wordle.MarkExact
		case strings.IndexByte(answer, guess[i]) >= 0:
			marks[i] = wordle.MarkPresent
		default:
			marks[i] = wordle.MarkAbsent
		}
	}
	return marks
}

func validFormat(guess string) bool {
	if len(guess) != wordle.WordLen {
		return false
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return false
		}
	}
	return true
}

func wonWith(guesses []string, answer string) bool {
	answer = strings.ToLower(answer)
	for _, g := range guesses {
		if strings.ToLower(g) == answer {
			return true
		}
	}
	return false
}
