package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

const recentResultsLimit = 5

// StatsService records finished rounds and reports a user's history.
type StatsService struct {
	tr      Transactor
	results ResultRepository
	users   UserRepository
}

func NewStatsService(tr Transactor, results ResultRepository, users UserRepository) *StatsService {
	return &StatsService{
		tr:      tr,
		results: results,
		users:   users,
	}
}

// RecordResult stores the round and updates the user's last played time
// in one transaction.
func (s *StatsService) RecordResult(ctx context.Context, result *entities.QuizResult) error {
	if result.TotalQuestions <= 0 || result.CorrectAnswers < 0 || result.CorrectAnswers > result.TotalQuestions {
		return fmt.Errorf("record result %d/%d: %w", result.CorrectAnswers, result.TotalQuestions, ErrInvalidResult)
	}

	return s.tr.WithinTx(ctx, func(ctx context.Context) error {
		// Users reaching the quiz through a callback may not have a row yet.
		if _, err := s.users.Save(ctx, entities.NewUser(result.UserID, result.ChatID)); err != nil {
			return err
		}
		if err := s.results.Save(ctx, result); err != nil {
			return err
		}
		return s.users.MarkPlayed(ctx, result.UserID, result.FinishedAt)
	})
}

// GetStats returns aggregated statistics of the user's finished rounds.
func (s *StatsService) GetStats(ctx context.Context, userID int64) (*entities.QuizStats, error) {
	return s.results.GetStats(ctx, userID)
}

// GetRecent returns the user's latest finished rounds, newest first.
func (s *StatsService) GetRecent(ctx context.Context, userID int64) ([]*entities.QuizResult, error) {
	return s.results.ListRecent(ctx, userID, recentResultsLimit)
}
