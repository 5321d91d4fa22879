package wordle

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"gamebot/internal/domain/wordle"
)

type fakeStore struct {
	recs map[string]wordle.Record
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: make(map[string]wordle.Record)}
}

func (s *fakeStore) GetOrCreate(_ context.Context, userID string) (wordle.Record, error) {
	if rec, ok := s.recs[userID]; ok {
		return rec, nil
	}
	rec := wordle.Record{UserID: userID, Guesses: []string{}}
	s.recs[userID] = rec
	return rec, nil
}

func (s *fakeStore) Save(_ context.Context, rec wordle.Record) error {
	s.recs[rec.UserID] = rec
	return nil
}

// fakeWords hands out queued answers so each day's draw is predictable.
type fakeWords struct {
	list    []string
	answers []string
}

func (w *fakeWords) Contains(word string) bool {
	for _, v := range w.list {
		if v == strings.ToLower(word) {
			return true
		}
	}
	return false
}

func (w *fakeWords) Random() string {
	next := w.answers[0]
	if len(w.answers) > 1 {
		w.answers = w.answers[1:]
	}
	return next
}

type fakeClock struct {
	day string
}

func (c *fakeClock) Today() string { return c.day }

func newTestEngine(answers ...string) (*Engine, *fakeStore, *fakeClock) {
	store := newFakeStore()
	clock := &fakeClock{day: "08/31/2026"}
	words := &fakeWords{
		list:    []string{"crane", "candy", "plant", "house", "stone", "light", "world", "bread"},
		answers: answers,
	}
	return NewEngine(store, words, clock, zap.NewNop().Sugar()), store, clock
}

func TestSubmitGuessWin(t *testing.T) {
	ctx := context.Background()
	engine, store, _ := newTestEngine("crane")

	if err := engine.AssignOrRefreshAnswer(ctx, "u1"); err != nil {
		t.Fatalf("AssignOrRefreshAnswer: %v", err)
	}

	result, err := engine.SubmitGuess(ctx, "u1", "CRANE")
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if result.Outcome != wordle.OutcomeWin {
		t.Fatalf("outcome = %s, want %s", result.Outcome, wordle.OutcomeWin)
	}
	if result.Attempt != 1 {
		t.Errorf("attempt = %d, want 1", result.Attempt)
	}

	done, err := engine.CompletedToday(ctx, "u1")
	if err != nil {
		t.Fatalf("CompletedToday: %v", err)
	}
	if !done {
		t.Error("CompletedToday = false after a win")
	}
	if store.recs["u1"].Wins != 1 {
		t.Errorf("wins = %d, want 1", store.recs["u1"].Wins)
	}
}

func TestSubmitGuessInvalidFormat(t *testing.T) {
	ctx := context.Background()
	engine, store, _ := newTestEngine("crane")

	for _, guess := range []string{"cr4ne", "cranes", "car", "cr ne", ""} {
		result, err := engine.SubmitGuess(ctx, "u1", guess)
		if err != nil {
			t.Fatalf("SubmitGuess(%q): %v", guess, err)
		}
		if result.Outcome != wordle.OutcomeInvalidFormat {
			t.Errorf("SubmitGuess(%q) outcome = %s, want %s", guess, result.Outcome, wordle.OutcomeInvalidFormat)
		}
	}
	if got := len(store.recs["u1"].Guesses); got != 0 {
		t.Errorf("guesses recorded = %d, want 0", got)
	}
}

func TestSubmitGuessNotInWordList(t *testing.T) {
	ctx := context.Background()
	engine, store, _ := newTestEngine("crane")

	result, err := engine.SubmitGuess(ctx, "u1", "zzzzz")
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if result.Outcome != wordle.OutcomeNotInWordList {
		t.Errorf("outcome = %s, want %s", result.Outcome, wordle.OutcomeNotInWordList)
	}
	if got := len(store.recs["u1"].Guesses); got != 0 {
		t.Errorf("guesses recorded = %d, want 0", got)
	}
}

func TestSubmitGuessLossAfterSixMisses(t *testing.T) {
	ctx := context.Background()
	engine, store, _ := newTestEngine("crane")

	misses := []string{"candy", "plant", "house", "stone", "light", "world"}
	for i, guess := range misses[:5] {
		result, err := engine.SubmitGuess(ctx, "u1", guess)
		if err != nil {
			t.Fatalf("SubmitGuess #%d: %v", i+1, err)
		}
		if result.Outcome != wordle.OutcomeContinue {
			t.Fatalf("guess #%d outcome = %s, want %s", i+1, result.Outcome, wordle.OutcomeContinue)
		}
		if result.Attempt != i+1 {
			t.Errorf("guess #%d attempt = %d, want %d", i+1, result.Attempt, i+1)
		}
	}

	result, err := engine.SubmitGuess(ctx, "u1", misses[5])
	if err != nil {
		t.Fatalf("SubmitGuess #6: %v", err)
	}
	if result.Outcome != wordle.OutcomeLoss {
		t.Fatalf("guess #6 outcome = %s, want %s", result.Outcome, wordle.OutcomeLoss)
	}
	if result.Answer != "crane" {
		t.Errorf("loss did not reveal the answer, got %q", result.Answer)
	}
	if store.recs["u1"].Losses != 1 {
		t.Errorf("losses = %d, want 1", store.recs["u1"].Losses)
	}

	// the day is spent now
	result, err = engine.SubmitGuess(ctx, "u1", "bread")
	if err != nil {
		t.Fatalf("SubmitGuess #7: %v", err)
	}
	if result.Outcome != wordle.OutcomeAlreadyComplete {
		t.Errorf("guess #7 outcome = %s, want %s", result.Outcome, wordle.OutcomeAlreadyComplete)
	}
	if result.WonToday {
		t.Error("WonToday = true after a loss")
	}
}

func TestSubmitGuessAlreadyCompleteAfterWin(t *testing.T) {
	ctx := context.Background()
	engine, _, _ := newTestEngine("crane")

	if _, err := engine.SubmitGuess(ctx, "u1", "crane"); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}

	result, err := engine.SubmitGuess(ctx, "u1", "candy")
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if result.Outcome != wordle.OutcomeAlreadyComplete {
		t.Fatalf("outcome = %s, want %s", result.Outcome, wordle.OutcomeAlreadyComplete)
	}
	if !result.WonToday {
		t.Error("WonToday = false after a win")
	}
}

func TestAssignOrRefreshAnswerIdempotentWithinDay(t *testing.T) {
	ctx := context.Background()
	engine, store, clock := newTestEngine("crane", "plant")

	if err := engine.AssignOrRefreshAnswer(ctx, "u1"); err != nil {
		t.Fatalf("AssignOrRefreshAnswer: %v", err)
	}
	first := store.recs["u1"].Answer

	if err := engine.AssignOrRefreshAnswer(ctx, "u1"); err != nil {
		t.Fatalf("AssignOrRefreshAnswer: %v", err)
	}
	if store.recs["u1"].Answer != first {
		t.Fatalf("answer changed within the same day: %q -> %q", first, store.recs["u1"].Answer)
	}

	if _, err := engine.SubmitGuess(ctx, "u1", "candy"); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}

	clock.day = "09/01/2026"
	if err := engine.AssignOrRefreshAnswer(ctx, "u1"); err != nil {
		t.Fatalf("AssignOrRefreshAnswer: %v", err)
	}
	rec := store.recs["u1"]
	if rec.Answer != "plant" {
		t.Errorf("next day answer = %q, want %q", rec.Answer, "plant")
	}
	if len(rec.Guesses) != 0 {
		t.Errorf("stale guesses survived the reset: %v", rec.Guesses)
	}
}

func TestSubmitGuessOutOfAttempts(t *testing.T) {
	ctx := context.Background()
	engine, store, clock := newTestEngine("crane")

	// legacy record: budget spent but the day never marked complete
	store.recs["u1"] = wordle.Record{
		UserID:       "u1",
		Answer:       "crane",
		AssignedDate: clock.day,
		Guesses:      []string{"candy", "plant", "house", "stone", "light", "world"},
	}

	result, err := engine.SubmitGuess(ctx, "u1", "bread")
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if result.Outcome != wordle.OutcomeOutOfAttempts {
		t.Fatalf("outcome = %s, want %s", result.Outcome, wordle.OutcomeOutOfAttempts)
	}

	rec := store.recs["u1"]
	if len(rec.Guesses) != 7 {
		t.Errorf("guesses = %d, want 7 (overflow guess still recorded)", len(rec.Guesses))
	}
	if rec.Losses != 1 {
		t.Errorf("losses = %d, want 1", rec.Losses)
	}
	if rec.LastPlayedDate != clock.day {
		t.Errorf("LastPlayedDate = %q, want %q", rec.LastPlayedDate, clock.day)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		guess  string
		answer string
		want   []wordle.Mark
	}{
		{"candy", "crane", []wordle.Mark{wordle.MarkExact, wordle.MarkPresent, wordle.MarkPresent, wordle.MarkAbsent, wordle.MarkAbsent}},
		{"crane", "crane", []wordle.Mark{wordle.MarkExact, wordle.MarkExact, wordle.MarkExact, wordle.MarkExact, wordle.MarkExact}},
		{"world", "crane", []wordle.Mark{wordle.MarkAbsent, wordle.MarkAbsent, wordle.MarkPresent, wordle.MarkAbsent, wordle.MarkAbsent}},
		// repeated guess letters all mark Present, the rule does not
		// count answer occurrences
		{"eerie", "crane", []wordle.Mark{wordle.MarkPresent, wordle.MarkPresent, wordle.MarkPresent, wordle.MarkAbsent, wordle.MarkExact}},
	}

	for _, tt := range tests {
		got := Score(tt.guess, tt.answer)
		if len(got) != len(tt.want) {
			t.Fatalf("Score(%q, %q) returned %d marks, want %d", tt.guess, tt.answer, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Score(%q, %q)[%d] = %d, want %d", tt.guess, tt.answer, i, got[i], tt.want[i])
			}
		}
	}
}

func TestScoreScenarioGuessThenWin(t *testing.T) {
	ctx := context.Background()
	engine, store, _ := newTestEngine("crane")

	result, err := engine.SubmitGuess(ctx, "u1", "candy")
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if result.Outcome != wordle.OutcomeContinue {
		t.Fatalf("outcome = %s, want %s", result.Outcome, wordle.OutcomeContinue)
	}
	if result.Marks[0] != wordle.MarkExact {
		t.Errorf("marks[0] = %d, want Exact", result.Marks[0])
	}

	result, err = engine.SubmitGuess(ctx, "u1", "crane")
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if result.Outcome != wordle.OutcomeWin {
		t.Fatalf("outcome = %s, want %s", result.Outcome, wordle.OutcomeWin)
	}
	if result.Attempt != 2 {
		t.Errorf("attempt = %d, want 2", result.Attempt)
	}
	if store.recs["u1"].Wins != 1 {
		t.Errorf("wins = %d, want 1", store.recs["u1"].Wins)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	engine, store, _ := newTestEngine("crane")

	store.recs["u1"] = wordle.Record{UserID: "u1", Wins: 3, Losses: 1}

	stats, err := engine.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Wins != 3 || stats.Losses != 1 {
		t.Errorf("stats = %+v, want 3 wins 1 loss", stats)
	}
	if stats.WinPct != 75 {
		t.Errorf("win pct = %d, want 75", stats.WinPct)
	}
}
