package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Handler routes Telegram updates to the services and runs deferred quiz
// tasks on the same goroutine.
type Handler struct {
	bot          botAPI
	logger       *zap.Logger
	scheduler    *LoopScheduler
	quizService  QuizService
	userService  UserService
	statsService StatsService
	resetService ResetService
}

func NewHandler(
	bot botAPI,
	logger *zap.Logger,
	scheduler *LoopScheduler,
	quizService QuizService,
	userService UserService,
	statsService StatsService,
	resetService ResetService,
) *Handler {
	return &Handler{
		bot:          bot,
		logger:       logger,
		scheduler:    scheduler,
		quizService:  quizService,
		userService:  userService,
		statsService: statsService,
		resetService: resetService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()
	defer h.scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		case task := <-h.scheduler.Tasks():
			task()
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	if err := h.userService.EnsureUser(ctx, userID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	if !update.Message.IsCommand() {
		_ = h.send(newPlainMessage(chatID, msgUseButtons))
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.handleStart(userID))(ctx, chatID)

	case "quiz":
		_ = h.withErrorHandling(h.handleQuiz(userID))(ctx, chatID)

	case "stats":
		_ = h.withErrorHandling(h.handleStats(userID))(ctx, chatID)

	case "help":
		_ = h.withErrorHandling(h.handleHelp())(ctx, chatID)

	case "reset":
		_ = h.withErrorHandling(h.handleReset())(ctx, chatID)

	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
