package errors

import "errors"

var (
	ErrInvalidGuessFormat = errors.New("guess must be a five letter alphabetic word")
	ErrNotInWordList      = errors.New("word is not in the word list")
	ErrAlreadyComplete    = errors.New("daily word already completed")
	ErrRecordNotFound     = errors.New("record was not found")
	ErrEmptyLeaderboard   = errors.New("leaderboard is empty")
	ErrEmptyWordList      = errors.New("word list is empty")
	ErrWagerTooLarge      = errors.New("wager exceeds current points")
	ErrUnknownChoice      = errors.New("unknown choice")
	ErrInternal           = errors.New("internal error")
)
