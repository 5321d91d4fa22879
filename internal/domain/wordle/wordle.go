package wordle

const (
	MaxAttempts = 6
	WordLen     = 5
)

type Record struct {
	UserID         string   `json:"user_id" bson:"user_id"`
	Answer         string   `json:"answer" bson:"answer"`
	AssignedDate   string   `json:"assigned_date" bson:"assigned_date"`
	Guesses        []string `json:"guesses" bson:"guesses"`
	LastPlayedDate string   `json:"last_played_date" bson:"last_played_date"`
	Wins           int      `json:"wins" bson:"wins"`
	Losses         int      `json:"losses" bson:"losses"`
}

type Outcome string

const (
	OutcomeAlreadyComplete Outcome = "already_complete"
	OutcomeInvalidFormat   Outcome = "invalid_format"
	OutcomeNotInWordList   Outcome = "not_in_word_list"
	OutcomeOutOfAttempts   Outcome = "out_of_attempts"
	OutcomeWin             Outcome = "win"
	OutcomeLoss            Outcome = "loss"
	OutcomeContinue        Outcome = "continue"
)

type Mark int

const (
	MarkAbsent Mark = iota
	MarkPresent
	MarkExact
)

// Result is what a single guess submission produces. Answer is filled in
// only when the day's game just ended in a loss. WonToday is meaningful
// only for OutcomeAlreadyComplete.
type Result struct {
	Outcome  Outcome `json:"outcome"`
	Attempt  int     `json:"attempt,omitempty"`
	Answer   string  `json:"answer,omitempty"`
	Marks    []Mark  `json:"marks,omitempty"`
	WonToday bool    `json:"won_today,omitempty"`
}

type Stats struct {
	UserID string `json:"user_id"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	WinPct int    `json:"win_pct"`
}
