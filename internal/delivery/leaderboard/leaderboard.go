package leaderboard

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"gamebot/internal/adapters"
	"gamebot/internal/bootstrap"
	"gamebot/internal/domain/leaderboard"
	errs "gamebot/internal/errors"
	"gamebot/internal/httpresponse"
	"gamebot/internal/repository"
	lbuc "gamebot/internal/usecase/leaderboard"
	"gamebot/internal/utils"
)

const defaultTopN = 5

type LeaderboardHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	engine *lbuc.Engine
}

func NewLeaderboardHandler(cfg bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, redisAdapter *adapters.AdapterRedis, roles lbuc.RoleSink) *LeaderboardHandler {
	return &LeaderboardHandler{
		cfg: cfg,
		log: log,
		engine: lbuc.NewEngine(
			repository.NewLeaderboardRepository(cfg, log, redisAdapter.GetClient(), mongoAdapter.Database),
			roles,
			log,
		),
	}
}

// Engine exposes the ledger to the minigame handlers, they settle
// wagers through the same engine that does role sync.
func (h *LeaderboardHandler) Engine() *lbuc.Engine {
	return h.engine
}

type TopResponse struct {
	Content string               `json:"content"`
	Entries []leaderboard.Record `json:"entries"`
}

func (h *LeaderboardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req leaderboard.UpdateRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id is required")
		return
	}

	rec, err := h.engine.ApplyDelta(r.Context(), req.UserID, req.Points, req.Games)
	if err != nil {
		h.log.Errorf("failed to update leaderboard for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, rec)
}

func (h *LeaderboardHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req leaderboard.TopRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	n := req.N
	if n <= 0 {
		n = h.cfg.PageLimitLeaderboard
	}
	if n <= 0 {
		n = defaultTopN
	}

	entries, err := h.engine.TopN(r.Context(), n)
	if errors.Is(err, errs.ErrEmptyLeaderboard) {
		httpresponse.WriteResponseWithStatus(w, http.StatusOK, TopResponse{
			Content: "The leaderboard is empty.",
			Entries: []leaderboard.Record{},
		})
		return
	}
	if err != nil {
		h.log.Errorf("failed to read leaderboard: %v", err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, TopResponse{
		Content: RenderTop(entries),
		Entries: entries,
	})
}

func (h *LeaderboardHandler) HandlePoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req leaderboard.UserRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id is required")
		return
	}

	points, err := h.engine.GetPoints(r.Context(), req.UserID)
	if err != nil {
		h.log.Errorf("failed to read points for %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, leaderboard.Record{
		UserID: req.UserID,
		Points: points,
	})
}

func (h *LeaderboardHandler) HandleRank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req leaderboard.UserRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "user_id is required")
		return
	}

	rnk, err := h.engine.Rank(r.Context(), req.UserID)
	if errors.Is(err, errs.ErrRecordNotFound) {
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound, "user has no leaderboard entry")
		return
	}
	if err != nil {
		h.log.Errorf("failed to rank %s: %v", req.UserID, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, rnk)
}

// RenderTop builds the classic text view: "#1: user - points - games".
func RenderTop(entries []leaderboard.Record) string {
	var b strings.Builder
	b.WriteString("Leaderboard:")
	for i, e := range entries {
		b.WriteString(fmt.Sprintf("\n#%d: %s - %d points - %d games played", i+1, e.UserID, e.Points, e.GamesPlayed))
	}
	return b.String()
}
