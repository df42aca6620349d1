package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

const DefaultFeedbackDelay = time.Second

var ErrSessionNotFound = errors.New("quiz session not found")

// QuizService drives the quiz session of every chat.
//
// All methods, including the scheduled feedback completions, are expected to
// be called from a single goroutine; sessions themselves are not locked.
type QuizService struct {
	questions     QuestionRepository
	storage       QuizStorage
	presenter     Presenter
	scheduler     Scheduler
	recorder      ResultRecorder
	feedbackDelay time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewQuizService(
	questions QuestionRepository,
	storage QuizStorage,
	presenter Presenter,
	scheduler Scheduler,
	recorder ResultRecorder,
	feedbackDelay time.Duration,
	logger *zap.Logger,
) *QuizService {
	if feedbackDelay <= 0 {
		feedbackDelay = DefaultFeedbackDelay
	}

	return &QuizService{
		questions:     questions,
		storage:       storage,
		presenter:     presenter,
		scheduler:     scheduler,
		recorder:      recorder,
		feedbackDelay: feedbackDelay,
		logger:        logger,
		now:           time.Now,
	}
}

// Start begins a new round in the chat, replacing any round in progress.
func (s *QuizService) Start(ctx context.Context, chatID, userID int64) error {
	questions, err := s.questions.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("get questions: %w", err)
	}

	session, err := entities.NewQuizSession(chatID, userID, questions, s.now())
	if err != nil {
		return err
	}

	s.storage.Store(chatID, session)

	s.logger.Debug("quiz session started",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
		zap.Int("total_questions", session.Total()),
	)

	return s.presenter.ShowQuestion(ctx, chatID, session.CurrentQuestion())
}

// SubmitAnswer applies the user's answer to the question at questionIndex.
// Answers for another question, or while a previous answer's feedback is
// pending, are ignored.
func (s *QuizService) SubmitAnswer(ctx context.Context, chatID int64, questionIndex int, given bool) error {
	session, ok := s.storage.Get(chatID)
	if !ok {
		return ErrSessionNotFound
	}
	s.storage.Touch(chatID)

	if questionIndex != session.CurrentIndex {
		s.logger.Debug("answer for a stale question ignored",
			zap.Int64("chat_id", chatID),
			zap.Int("question_index", questionIndex),
			zap.Int("current_index", session.CurrentIndex),
		)
		return nil
	}

	ev, applied := session.SubmitAnswer(given)
	if !applied {
		s.logger.Debug("answer ignored",
			zap.Int64("chat_id", chatID),
			zap.Stringer("state", session.State),
			zap.Bool("input_locked", session.InputLocked),
		)
		return nil
	}

	// Scheduled before rendering so a failed render cannot leave the
	// session locked.
	s.scheduleFeedback(ctx, session)

	if err := s.presenter.ShowFeedback(ctx, chatID, ev); err != nil {
		return fmt.Errorf("show feedback: %w", err)
	}

	return nil
}

func (s *QuizService) scheduleFeedback(ctx context.Context, session *entities.QuizSession) {
	chatID := session.ChatID
	generation := session.Generation

	s.scheduler.AfterFunc(s.feedbackDelay, func() {
		// The chat may have started a new session in the meantime.
		if current, ok := s.storage.Get(chatID); !ok || current != session {
			s.logger.Debug("stale feedback completion dropped", zap.Int64("chat_id", chatID))
			return
		}

		if err := s.CompleteFeedback(ctx, chatID, generation); err != nil {
			s.logger.Error("failed to complete feedback",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
	})
}

// CompleteFeedback ends the feedback of the chat's last answer and moves to
// the next question or to the round result. generation must match the
// session's generation, so completions scheduled before a restart are
// dropped.
func (s *QuizService) CompleteFeedback(ctx context.Context, chatID int64, generation uint64) error {
	session, ok := s.storage.Get(chatID)
	if !ok {
		return nil
	}

	if session.Generation != generation {
		s.logger.Debug("feedback completion from a previous play-through dropped",
			zap.Int64("chat_id", chatID),
			zap.Uint64("generation", generation),
		)
		return nil
	}

	ev, applied := session.CompleteFeedback()
	if !applied {
		s.logger.Debug("feedback completion ignored",
			zap.Int64("chat_id", chatID),
			zap.Stringer("state", session.State),
		)
		return nil
	}

	switch e := ev.(type) {
	case entities.QuestionChanged:
		return s.presenter.ShowQuestion(ctx, chatID, e)

	case entities.SessionEnded:
		s.logger.Info("quiz session finished",
			zap.Int64("chat_id", chatID),
			zap.String("session_id", session.ID.String()),
			zap.Int("correct", e.CorrectCount),
			zap.Int("total", e.Total),
		)
		s.record(ctx, session)
		return s.presenter.ShowResult(ctx, chatID, e)
	}

	return nil
}

// record stores the finished round. Failures are logged and never affect
// the quiz flow.
func (s *QuizService) record(ctx context.Context, session *entities.QuizSession) {
	if s.recorder == nil {
		return
	}

	if err := s.recorder.RecordResult(ctx, session.Result(s.now())); err != nil {
		s.logger.Error("failed to record quiz result",
			zap.Int64("chat_id", session.ChatID),
			zap.String("session_id", session.ID.String()),
			zap.Error(err),
		)
	}
}

// Restart begins the chat's round again from the first question.
// Without a live session it starts a new one.
func (s *QuizService) Restart(ctx context.Context, chatID, userID int64) error {
	session, ok := s.storage.Get(chatID)
	if !ok {
		return s.Start(ctx, chatID, userID)
	}
	s.storage.Touch(chatID)

	ev := session.Restart(s.now())
	session.UserID = userID

	s.logger.Debug("quiz session restarted",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID.String()),
	)

	return s.presenter.ShowQuestion(ctx, chatID, ev)
}
