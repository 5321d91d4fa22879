package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gamebot/internal/adapters"
	"gamebot/internal/bootstrap"
	lbDelivery "gamebot/internal/delivery/leaderboard"
	mgDelivery "gamebot/internal/delivery/minigames"
	wordleDelivery "gamebot/internal/delivery/wordle"
	"gamebot/internal/discord"
	ownMiddleware "gamebot/internal/middleware"
	"gamebot/internal/repository"
	lbuc "gamebot/internal/usecase/leaderboard"
)

type mainDeliveryHandler struct {
	wordle      *wordleDelivery.WordleHandler
	leaderboard *lbDelivery.LeaderboardHandler
	minigames   *mgDelivery.MinigamesHandler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, *cfg)
	defer databaseAdapters.mongoAdapter.Close(ctx)
	defer databaseAdapters.redisAdapter.Close(ctx)

	wordsFile := cfg.WordsFile
	if wordsFile == "" {
		wordsFile = "data/words.txt"
	}
	words, err := repository.LoadWordList(wordsFile)
	if err != nil {
		logger.Fatal("Failed to load word list", zap.Error(err))
	}
	logger.Infof("Word list loaded: %d words", words.Len())

	roles := initRoleManager(*cfg, logger)
	if roles != nil {
		defer roles.Close()
	}

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger, databaseAdapters, words, roles)
	handlers.Router(r, cfg.IsLocalCors)

	port := cfg.ServerPort
	if port == "" {
		port = ":8080"
	}
	logger.Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Post("/wordle/guess", h.wordle.HandleGuess)
	r.Post("/wordle/board", h.wordle.HandleBoard)
	r.Post("/wordle/stats", h.wordle.HandleStats)
	r.Post("/leaderboard/update", h.leaderboard.HandleUpdate)
	r.Post("/leaderboard/top", h.leaderboard.HandleTop)
	r.Post("/leaderboard/points", h.leaderboard.HandlePoints)
	r.Post("/leaderboard/rank", h.leaderboard.HandleRank)
	r.Post("/coinflip", h.minigames.HandleCoinflip)
	r.Post("/rps", h.minigames.HandleRPS)
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(&cfg, log)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(&cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	log.Info("Database adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}

// initRoleManager returns nil when no token is configured, the ledger
// then runs without role sync.
func initRoleManager(cfg bootstrap.Config, log *zap.SugaredLogger) *discord.RoleManager {
	if cfg.DiscordToken == "" || cfg.GuildID == "" {
		log.Warn("DISCORD_TOKEN or GUILD_ID not set, role sync disabled")
		return nil
	}
	roles, err := discord.NewRoleManager(cfg, log)
	if err != nil {
		log.Error("Failed to connect to Discord, role sync disabled", zap.Error(err))
		return nil
	}
	return roles
}

func initializeDeliveryHandlers(
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	databaseAdapters *dataBaseAdapters,
	words *repository.WordList,
	roles *discord.RoleManager,
) *mainDeliveryHandler {
	var sink lbuc.RoleSink
	if roles != nil {
		sink = roles
	}

	wordleDeliveryHandler := wordleDelivery.NewWordleHandler(cfg, log, databaseAdapters.mongoAdapter, words)
	leaderboardDeliveryHandler := lbDelivery.NewLeaderboardHandler(cfg, log, databaseAdapters.mongoAdapter, databaseAdapters.redisAdapter, sink)
	minigamesDeliveryHandler := mgDelivery.NewMinigamesHandler(cfg, log, leaderboardDeliveryHandler)

	return &mainDeliveryHandler{
		wordle:      wordleDeliveryHandler,
		leaderboard: leaderboardDeliveryHandler,
		minigames:   minigamesDeliveryHandler,
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	time.Sleep(1 * time.Second) // give connections time to close
}
