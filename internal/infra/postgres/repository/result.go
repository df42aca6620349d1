package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/movie-quiz-bot/internal/infra/postgres"
)

// ResultRepository provides access to finished quiz rounds in the database.
type ResultRepository struct {
	db postgres.DBTX
}

// NewResultRepository creates a new ResultRepository with the provided database pool.
func NewResultRepository(db postgres.DBTX) *ResultRepository {
	return &ResultRepository{db: db}
}

// Save stores a finished round. Saving the same play-through twice is a no-op.
func (r *ResultRepository) Save(ctx context.Context, result *entities.QuizResult) error {
	query := `
		INSERT INTO quiz_results (
			session_id, user_id, chat_id,
			correct_answers, total_questions, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id) DO NOTHING
		RETURNING id
	`

	err := postgres.Conn(ctx, r.db).QueryRow(
		ctx,
		query,
		result.SessionID,
		result.UserID,
		result.ChatID,
		result.CorrectAnswers,
		result.TotalQuestions,
		result.StartedAt,
		result.FinishedAt,
	).Scan(&result.ID)
	if err != nil && !isNoRows(err) {
		return fmt.Errorf("save quiz result: %w", err)
	}

	return nil
}

// GetStats aggregates all finished rounds of a user.
func (r *ResultRepository) GetStats(ctx context.Context, userID int64) (*entities.QuizStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(MAX(correct_answers), 0),
			COALESCE(SUM(correct_answers), 0),
			COALESCE(SUM(total_questions), 0),
			MAX(finished_at)
		FROM quiz_results
		WHERE user_id = $1
	`

	var stats entities.QuizStats
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&stats.GamesPlayed,
		&stats.BestScore,
		&stats.TotalCorrect,
		&stats.TotalQuestions,
		&stats.LastPlayedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get quiz stats: %w", err)
	}

	if stats.GamesPlayed == 0 {
		return &stats, nil
	}

	lastQuery := `
		SELECT correct_answers, total_questions
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY finished_at DESC
		LIMIT 1
	`
	err = postgres.Conn(ctx, r.db).QueryRow(ctx, lastQuery, userID).Scan(&stats.LastScore, &stats.LastTotal)
	if err != nil {
		return nil, fmt.Errorf("get last quiz result: %w", err)
	}

	return &stats, nil
}

// ListRecent returns the user's latest finished rounds, newest first.
func (r *ResultRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*entities.QuizResult, error) {
	query := `
		SELECT id, session_id, user_id, chat_id,
		       correct_answers, total_questions, started_at, finished_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY finished_at DESC
		LIMIT $2
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	var results []*entities.QuizResult
	for rows.Next() {
		var res entities.QuizResult
		if err := rows.Scan(
			&res.ID,
			&res.SessionID,
			&res.UserID,
			&res.ChatID,
			&res.CorrectAnswers,
			&res.TotalQuestions,
			&res.StartedAt,
			&res.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		results = append(results, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz results: %w", err)
	}

	return results, nil
}
