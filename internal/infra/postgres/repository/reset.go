package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/movie-quiz-bot/internal/infra/postgres"
)

type ResetRepository struct {
	db postgres.DBTX
}

func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

// ResetUser removes the user's round history.
func (s *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	conn := postgres.Conn(ctx, s.db)

	if _, err := conn.Exec(ctx, `DELETE FROM quiz_results WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete quiz_results: %w", err)
	}
	if _, err := conn.Exec(ctx, `UPDATE users SET last_played_at = NULL WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("clear last_played_at: %w", err)
	}

	return nil
}
