package wordle

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gamebot/internal/adapters"
	"gamebot/internal/bootstrap"
	"gamebot/internal/domain/wordle"
	"gamebot/internal/httpresponse"
	"gamebot/internal/repository"
	"gamebot/internal/usecase"
	wordleuc "gamebot/internal/usecase/wordle"
	"gamebot/internal/utils"
)

type WordleHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	engine *wordleuc.Engine
}

func NewWordleHandler(cfg bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, words *repository.WordList) *WordleHandler {
	return &WordleHandler{
		cfg: cfg,
		log: log,
		engine: wordleuc.NewEngine(
			repository.NewWordleRepository(cfg, log, mongoAdapter.Database),
			words,
			usecase.SystemClock{},
			log,
		),
	}
}

type GuessRequest struct {
	UserID string `json:"user_id"`
	Guess  string `json:"guess"`
}

type GuessResponse struct {
	Content string        `json:"content"`
	Board   string        `json:"board"`
	Result  wordle.Result `json:"result"`
}

type UserRequest struct {
	UserID string `json:"user_id"`
}

type BoardResponse struct {
	Board string `json:"board"`
}

func (h *WordleHandler) HandleGuess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req GuessRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" || req.Guess == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id and guess are required")
		return
	}

	ctx := r.Context()

	if err := h.engine.AssignOrRefreshAnswer(ctx, req.UserID); err != nil {
		h.log.Errorf("failed to refresh answer for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	result, err := h.engine.SubmitGuess(ctx, req.UserID, req.Guess)
	if err != nil {
		h.log.Errorf("failed to submit guess for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	rec, err := h.engine.Snapshot(ctx, req.UserID)
	if err != nil {
		h.log.Errorf("failed to load board for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, GuessResponse{
		Content: guessContent(req.UserID, req.Guess, result),
		Board:   RenderBoard(rec.Guesses, rec.Answer),
		Result:  result,
	})
}

func (h *WordleHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req UserRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id is required")
		return
	}

	ctx := r.Context()

	if err := h.engine.AssignOrRefreshAnswer(ctx, req.UserID); err != nil {
		h.log.Errorf("failed to refresh answer for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	rec, err := h.engine.Snapshot(ctx, req.UserID)
	if err != nil {
		h.log.Errorf("failed to load board for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, BoardResponse{
		Board: RenderBoard(rec.Guesses, rec.Answer),
	})
}

func (h *WordleHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req UserRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id is required")
		return
	}

	stats, err := h.engine.Stats(r.Context(), req.UserID)
	if err != nil {
		h.log.Errorf("failed to load stats for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, stats)
}

func guessContent(userID, guess string, result wordle.Result) string {
	switch result.Outcome {
	case wordle.OutcomeWin:
		return fmt.Sprintf("✅ Correct! You guessed it in %d tries.", result.Attempt)
	case wordle.OutcomeContinue:
		return fmt.Sprintf("<@%s>'s guess: ❌ \"%s\" is not the word of the day. Try again!", userID, guess)
	case wordle.OutcomeLoss:
		return fmt.Sprintf("Game over — out of tries! The word was \"%s\".", result.Answer)
	case wordle.OutcomeOutOfAttempts:
		return fmt.Sprintf("You've exceeded the amount of guesses you can make! The word was \"%s\".", result.Answer)
	case wordle.OutcomeInvalidFormat:
		return "Wrong Guess Format, try again!"
	case wordle.OutcomeNotInWordList:
		return "Word Not in List!"
	case wordle.OutcomeAlreadyComplete:
		verdict := "lost"
		if result.WonToday {
			verdict = "won"
		}
		return fmt.Sprintf("<@%s>: You've already completed the Wordle today. You %s! Play again tomorrow.", userID, verdict)
	}
	return ""
}
