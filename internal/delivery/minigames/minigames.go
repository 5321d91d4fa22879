package minigames

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"gamebot/internal/bootstrap"
	lbdelivery "gamebot/internal/delivery/leaderboard"
	"gamebot/internal/domain/minigames"
	errs "gamebot/internal/errors"
	"gamebot/internal/httpresponse"
	mguc "gamebot/internal/usecase/minigames"
	"gamebot/internal/utils"
)

type MinigamesHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	engine *mguc.Engine
}

func NewMinigamesHandler(cfg bootstrap.Config, log *zap.SugaredLogger, lbHandler *lbdelivery.LeaderboardHandler) *MinigamesHandler {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &MinigamesHandler{
		cfg:    cfg,
		log:    log,
		engine: mguc.NewEngine(lbHandler.Engine(), rng, log),
	}
}

type GameResponse struct {
	Content string `json:"content"`
	Result  any    `json:"result,omitempty"`
}

func (h *MinigamesHandler) HandleCoinflip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req minigames.CoinflipRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Wager < 0 {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "wager cannot be negative")
		return
	}

	side := minigames.CoinSide(strings.ToLower(req.Side))
	result, err := h.engine.Coinflip(r.Context(), req.UserID, side, req.Wager)
	if errors.Is(err, errs.ErrUnknownChoice) {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "side must be heads or tails")
		return
	}
	if errors.Is(err, errs.ErrWagerTooLarge) {
		httpresponse.WriteResponseWithStatus(w, http.StatusOK, GameResponse{
			Content: fmt.Sprintf("❌ You cannot wager %d points. You currently have %d points.", req.Wager, result.Points),
		})
		return
	}
	if err != nil {
		h.log.Errorf("coinflip failed for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, GameResponse{
		Content: coinflipContent(req.Side, result),
		Result:  result,
	})
}

func (h *MinigamesHandler) HandleRPS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req minigames.RPSRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Wager < 0 {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "wager cannot be negative")
		return
	}

	choice := minigames.RPSChoice(strings.ToLower(req.Object))
	result, err := h.engine.PlayRPS(r.Context(), req.UserID, choice, req.Wager)
	if errors.Is(err, errs.ErrUnknownChoice) {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "object must be rock, paper or scissors")
		return
	}
	if errors.Is(err, errs.ErrWagerTooLarge) {
		httpresponse.WriteResponseWithStatus(w, http.StatusOK, GameResponse{
			Content: fmt.Sprintf("❌ You cannot wager %d points. You currently have %d points.", req.Wager, result.Points),
		})
		return
	}
	if err != nil {
		h.log.Errorf("rps failed for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, GameResponse{
		Content: rpsContent(result),
		Result:  result,
	})
}

func coinflipContent(chosenSide string, result minigames.CoinflipResult) string {
	content := fmt.Sprintf("🪙 The coin landed on **%s**!", result.Landed)
	if result.Guessed {
		content += "\n✅ You guessed correctly!"
	} else {
		content += fmt.Sprintf("\n❌ You guessed %s, but it landed on %s.", chosenSide, result.Landed)
	}
	if result.Wager > 0 {
		if result.Guessed {
			content += fmt.Sprintf("\n💰 You doubled your wager of **%d** points!", result.Wager)
		} else {
			content += fmt.Sprintf("\n💰 You lost **%d** points", result.Wager)
		}
	}
	return content
}

func rpsContent(result minigames.RPSResult) string {
	content := fmt.Sprintf("You played **%s**, the bot played **%s**.", result.Player, result.Bot)
	switch result.Outcome {
	case minigames.RPSWin:
		content += "\n✅ You win!"
		if result.Wager > 0 {
			content += fmt.Sprintf("\n💰 You earned **%d** points!", result.Wager)
		}
	case minigames.RPSLoss:
		content += "\n❌ You lose!"
		if result.Wager > 0 {
			content += fmt.Sprintf("\n💰 You lost **%d** points", result.Wager)
		}
	default:
		content += "\n🤝 It's a tie."
	}
	return content
}
