package service

import (
	"context"
	"time"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

type QuestionRepository interface {
	GetAll(ctx context.Context) ([]entities.Question, error)
}

// QuizStorage keeps the live quiz session of every chat.
type QuizStorage interface {
	Store(chatID int64, session *entities.QuizSession)
	Get(chatID int64) (*entities.QuizSession, bool)
	Touch(chatID int64)
	Delete(chatID int64)
	EvictIdle(before time.Time) int
	Len() int
}

// Presenter renders quiz events for a chat.
type Presenter interface {
	ShowQuestion(ctx context.Context, chatID int64, ev entities.QuestionChanged) error
	ShowFeedback(ctx context.Context, chatID int64, ev entities.FeedbackShown) error
	ShowResult(ctx context.Context, chatID int64, ev entities.SessionEnded) error
}

// Scheduler runs fn once after d. Implementations must run fn on the same
// goroutine that delivers the other quiz events.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// ResultRecorder stores finished rounds.
type ResultRecorder interface {
	RecordResult(ctx context.Context, result *entities.QuizResult) error
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Exists(ctx context.Context, userID int64) (bool, error)
	MarkPlayed(ctx context.Context, userID int64, playedAt time.Time) error
}

type ResultRepository interface {
	Save(ctx context.Context, result *entities.QuizResult) error
	GetStats(ctx context.Context, userID int64) (*entities.QuizStats, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]*entities.QuizResult, error)
}

type ResetRepository interface {
	ResetUser(ctx context.Context, userID int64) error
}
