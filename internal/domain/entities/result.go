package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult is the stored outcome of a finished play-through.
type QuizResult struct {
	ID             int64     // unique result ID
	SessionID      uuid.UUID // play-through ID
	UserID         int64     // user who played
	ChatID         int64     // chat the round was played in
	CorrectAnswers int       // number of correct answers
	TotalQuestions int       // number of questions in the round
	StartedAt      time.Time // start of the play-through
	FinishedAt     time.Time // moment the round ended
}

// QuizStats aggregates a user's finished rounds.
type QuizStats struct {
	GamesPlayed    int
	BestScore      int
	LastScore      int
	LastTotal      int
	TotalCorrect   int
	TotalQuestions int
	LastPlayedAt   *time.Time
}

// Accuracy returns the share of correct answers across all rounds, in percent.
func (s QuizStats) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions) * 100
}
