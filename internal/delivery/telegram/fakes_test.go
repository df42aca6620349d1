package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

type fakeBot struct {
	mu        sync.Mutex
	sent      []tgbotapi.Chattable
	requests  []tgbotapi.Chattable
	sendErr   error
	updates   chan tgbotapi.Update
	stopped   bool
	messageID int
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		return tgbotapi.Message{}, b.sendErr
	}
	b.sent = append(b.sent, c)
	b.messageID++
	return tgbotapi.Message{MessageID: b.messageID}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
}

func (b *fakeBot) lastSent() tgbotapi.Chattable {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.sent) == 0 {
		return nil
	}
	return b.sent[len(b.sent)-1]
}

func (b *fakeBot) sentCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sent)
}

type answerCall struct {
	chatID int64
	index  int
	given  bool
}

type fakeQuizService struct {
	starts    []int64
	restarts  []int64
	answers   []answerCall
	answerErr error
}

func (s *fakeQuizService) Start(_ context.Context, chatID, _ int64) error {
	s.starts = append(s.starts, chatID)
	return nil
}

func (s *fakeQuizService) SubmitAnswer(_ context.Context, chatID int64, index int, given bool) error {
	s.answers = append(s.answers, answerCall{chatID: chatID, index: index, given: given})
	return s.answerErr
}

func (s *fakeQuizService) Restart(_ context.Context, chatID, _ int64) error {
	s.restarts = append(s.restarts, chatID)
	return nil
}

type fakeUserService struct {
	ensured []int64
}

func (s *fakeUserService) EnsureUser(_ context.Context, userID, _ int64) error {
	s.ensured = append(s.ensured, userID)
	return nil
}

type fakeStatsService struct {
	stats  *entities.QuizStats
	recent []*entities.QuizResult
	err    error
}

func (s *fakeStatsService) GetStats(context.Context, int64) (*entities.QuizStats, error) {
	return s.stats, s.err
}

func (s *fakeStatsService) GetRecent(context.Context, int64) ([]*entities.QuizResult, error) {
	return s.recent, nil
}

type fakeResetService struct {
	reset []int64
}

func (s *fakeResetService) ResetUser(_ context.Context, userID int64) error {
	s.reset = append(s.reset, userID)
	return nil
}

var errSend = errors.New("telegram unavailable")
