package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/bot"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/config"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/database"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/engine"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/logger"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/repository"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/service"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Int64("admin_id", cfg.AdminID).
		Str("log_level", cfg.LogLevel).
		Msg("Starting EduTesterBot")

	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	userRepo := repository.NewUserRepository(pool)
	testRepo := repository.NewTestRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	resultRepo := repository.NewResultRepository(pool)

	userService := service.NewUserService(userRepo, rdb, cfg.LangCacheTTL, log)
	testService := service.NewTestService(testRepo, questionRepo, resultRepo, log)

	eng := engine.New(engine.NewSessionStore(), testService, resultRepo, log)

	tgBot, err := bot.New(cfg, userService, testService, eng, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Telegram bot")
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())

	notifier := worker.NewScheduleNotifier(testRepo, userService, rdb, tgBot, cfg.NotifyInterval, log)
	go notifier.Start(workerCtx)

	go tgBot.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	tgBot.Stop()
	workerCancel()
	time.Sleep(2 * time.Second) // let in-flight handlers and the worker finish

	log.Info().Int("live_sessions", eng.Store().Len()).Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
