package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/movie-quiz-bot/internal/config"
	"github.com/aliskhannn/movie-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/movie-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/movie-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/movie-quiz-bot/internal/logger"
	"github.com/aliskhannn/movie-quiz-bot/internal/repository"
	"github.com/aliskhannn/movie-quiz-bot/internal/service"
	"github.com/aliskhannn/movie-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Telegram.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Запустить бота",
		},
		{
			Command:     "quiz",
			Description: "Начать новый раунд",
		},
		{
			Command:     "stats",
			Description: "Моя статистика",
		},
		{
			Command:     "reset",
			Description: "Удалить историю раундов",
		},
		{
			Command:     "help",
			Description: "Помощь",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsJSONPath)
	if err != nil {
		return err
	}
	lg.Info("questions loaded", zap.Int("count", questionRepo.Count()))

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	tr := postgres.NewTransactor(pool)
	userRepo := pgrepo.NewUserRepository(pool)
	resultRepo := pgrepo.NewResultRepository(pool)
	resetRepo := pgrepo.NewResetRepository(pool)

	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(tr, resultRepo, userRepo)
	resetService := service.NewResetService(tr, resetRepo)

	quizStorage := storage.NewQuizStorage()
	scheduler := telegram.NewLoopScheduler()
	presenter := telegram.NewPresenter(bot, cfg.ImagesDir, cfg.PlaceholderImage, lg)

	quizService := service.NewQuizService(
		questionRepo,
		quizStorage,
		presenter,
		scheduler,
		statsService,
		cfg.Quiz.FeedbackDelay,
		lg,
	)

	janitor := service.NewSessionJanitor(quizStorage, cfg.Quiz.SessionTTL, cfg.Quiz.JanitorSchedule, lg)
	go func() {
		if err := janitor.Start(ctx); err != nil {
			lg.Error("session janitor failed", zap.Error(err))
		}
	}()

	handler := telegram.NewHandler(
		bot,
		lg,
		scheduler,
		quizService,
		userService,
		statsService,
		resetService,
	)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	lg.Info("shutdown signal received")
	return nil
}
