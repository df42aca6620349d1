package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

// botAPI is the part of *tgbotapi.BotAPI the delivery layer uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuizService interface {
	Start(ctx context.Context, chatID, userID int64) error
	SubmitAnswer(ctx context.Context, chatID int64, questionIndex int, given bool) error
	Restart(ctx context.Context, chatID, userID int64) error
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

type StatsService interface {
	GetStats(ctx context.Context, userID int64) (*entities.QuizStats, error)
	GetRecent(ctx context.Context, userID int64) ([]*entities.QuizResult, error)
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}
