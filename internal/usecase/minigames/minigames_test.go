package minigames

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"gamebot/internal/domain/leaderboard"
	"gamebot/internal/domain/minigames"
	errs "gamebot/internal/errors"
)

type fakeLedger struct {
	points map[string]int
	games  map[string]int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{points: make(map[string]int), games: make(map[string]int)}
}

func (l *fakeLedger) GetPoints(_ context.Context, userID string) (int, error) {
	return l.points[userID], nil
}

func (l *fakeLedger) ApplyDelta(_ context.Context, userID string, points int, games int) (leaderboard.Record, error) {
	l.points[userID] += points
	l.games[userID] += games
	return leaderboard.Record{
		UserID:      userID,
		Points:      l.points[userID],
		GamesPlayed: l.games[userID],
	}, nil
}

func newTestEngine(ledger Ledger) *Engine {
	return NewEngine(ledger, rand.New(rand.NewSource(1)), zap.NewNop().Sugar())
}

func TestCoinflipUnknownSide(t *testing.T) {
	engine := newTestEngine(newFakeLedger())

	_, err := engine.Coinflip(context.Background(), "u1", "edge", 0)
	if !errors.Is(err, errs.ErrUnknownChoice) {
		t.Fatalf("err = %v, want ErrUnknownChoice", err)
	}
}

func TestCoinflipWagerTooLarge(t *testing.T) {
	ledger := newFakeLedger()
	ledger.points["u1"] = 10
	engine := newTestEngine(ledger)

	result, err := engine.Coinflip(context.Background(), "u1", minigames.SideHeads, 50)
	if !errors.Is(err, errs.ErrWagerTooLarge) {
		t.Fatalf("err = %v, want ErrWagerTooLarge", err)
	}
	if result.Points != 10 {
		t.Errorf("result.Points = %d, want current balance 10", result.Points)
	}
	if ledger.points["u1"] != 10 {
		t.Errorf("balance changed to %d, want untouched 10", ledger.points["u1"])
	}
	if ledger.games["u1"] != 0 {
		t.Errorf("games = %d, want 0", ledger.games["u1"])
	}
}

func TestCoinflipSettlesWager(t *testing.T) {
	ledger := newFakeLedger()
	ledger.points["u1"] = 100
	engine := newTestEngine(ledger)

	result, err := engine.Coinflip(context.Background(), "u1", minigames.SideHeads, 40)
	if err != nil {
		t.Fatalf("Coinflip: %v", err)
	}

	want := 60
	if result.Guessed {
		want = 140
	}
	if ledger.points["u1"] != want {
		t.Errorf("balance = %d, want %d", ledger.points["u1"], want)
	}
	if result.Points != want {
		t.Errorf("result.Points = %d, want %d", result.Points, want)
	}
	if ledger.games["u1"] != 1 {
		t.Errorf("games = %d, want 1", ledger.games["u1"])
	}
	if result.Guessed != (result.Landed == minigames.SideHeads) {
		t.Errorf("Guessed = %v inconsistent with landed side %s", result.Guessed, result.Landed)
	}
}

func TestCoinflipWithoutWagerLeavesLedgerAlone(t *testing.T) {
	ledger := newFakeLedger()
	engine := newTestEngine(ledger)

	if _, err := engine.Coinflip(context.Background(), "u1", minigames.SideTails, 0); err != nil {
		t.Fatalf("Coinflip: %v", err)
	}
	if ledger.points["u1"] != 0 || ledger.games["u1"] != 0 {
		t.Errorf("ledger touched: points=%d games=%d", ledger.points["u1"], ledger.games["u1"])
	}
}

func TestPlayRPSUnknownChoice(t *testing.T) {
	engine := newTestEngine(newFakeLedger())

	_, err := engine.PlayRPS(context.Background(), "u1", "lizard", 0)
	if !errors.Is(err, errs.ErrUnknownChoice) {
		t.Fatalf("err = %v, want ErrUnknownChoice", err)
	}
}

func TestPlayRPSSettlesWager(t *testing.T) {
	ledger := newFakeLedger()
	ledger.points["u1"] = 100
	engine := newTestEngine(ledger)

	result, err := engine.PlayRPS(context.Background(), "u1", minigames.ChoiceRock, 30)
	if err != nil {
		t.Fatalf("PlayRPS: %v", err)
	}

	var wantOutcome minigames.RPSOutcome
	switch result.Bot {
	case minigames.ChoiceScissors:
		wantOutcome = minigames.RPSWin
	case minigames.ChoicePaper:
		wantOutcome = minigames.RPSLoss
	default:
		wantOutcome = minigames.RPSTie
	}
	if result.Outcome != wantOutcome {
		t.Errorf("outcome = %s vs bot %s, want %s", result.Outcome, result.Bot, wantOutcome)
	}

	want := 100
	switch result.Outcome {
	case minigames.RPSWin:
		want = 130
	case minigames.RPSLoss:
		want = 70
	}
	if ledger.points["u1"] != want {
		t.Errorf("balance = %d, want %d", ledger.points["u1"], want)
	}
	if ledger.games["u1"] != 1 {
		t.Errorf("games = %d, want 1 (ties count too)", ledger.games["u1"])
	}
}

func TestPlayRPSWagerTooLarge(t *testing.T) {
	ledger := newFakeLedger()
	ledger.points["u1"] = 5
	engine := newTestEngine(ledger)

	_, err := engine.PlayRPS(context.Background(), "u1", minigames.ChoicePaper, 25)
	if !errors.Is(err, errs.ErrWagerTooLarge) {
		t.Fatalf("err = %v, want ErrWagerTooLarge", err)
	}
	if ledger.games["u1"] != 0 {
		t.Errorf("games = %d, want 0", ledger.games["u1"])
	}
}

func TestBeats(t *testing.T) {
	tests := []struct {
		choice minigames.RPSChoice
		want   minigames.RPSChoice
	}{
		{minigames.ChoiceRock, minigames.ChoiceScissors},
		{minigames.ChoicePaper, minigames.ChoiceRock},
		{minigames.ChoiceScissors, minigames.ChoicePaper},
	}
	for _, tt := range tests {
		if got := beats(tt.choice); got != tt.want {
			t.Errorf("beats(%s) = %s, want %s", tt.choice, got, tt.want)
		}
	}
}
