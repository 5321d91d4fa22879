package minigames

type CoinSide string

const (
	SideHeads CoinSide = "heads"
	SideTails CoinSide = "tails"
)

type CoinflipRequest struct {
	UserID string `json:"user_id"`
	Side   string `json:"side"`
	Wager  int    `json:"wager"`
}

type CoinflipResult struct {
	ChallengeID string   `json:"challenge_id"`
	Landed      CoinSide `json:"landed"`
	Guessed     bool     `json:"guessed"`
	Wager       int      `json:"wager"`
	Points      int      `json:"points"`
}

type RPSChoice string

const (
	ChoiceRock     RPSChoice = "rock"
	ChoicePaper    RPSChoice = "paper"
	ChoiceScissors RPSChoice = "scissors"
)

type RPSOutcome string

const (
	RPSWin  RPSOutcome = "win"
	RPSLoss RPSOutcome = "loss"
	RPSTie  RPSOutcome = "tie"
)

type RPSRequest struct {
	UserID string `json:"user_id"`
	Object string `json:"object"`
	Wager  int    `json:"wager"`
}

type RPSResult struct {
	ChallengeID string     `json:"challenge_id"`
	Player      RPSChoice  `json:"player"`
	Bot         RPSChoice  `json:"bot"`
	Outcome     RPSOutcome `json:"outcome"`
	Wager       int        `json:"wager"`
	Points      int        `json:"points"`
}
