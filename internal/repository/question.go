package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

var (
	ErrRepositoryEmpty = errors.New("question catalogue is empty")
	ErrInvalidQuestion = errors.New("invalid question")
)

// QuestionRepository provides the fixed, ordered list of quiz questions.
// Questions are loaded once from a JSON file and kept in memory.
type QuestionRepository struct {
	questions []entities.Question
}

// NewQuestionRepository loads the question catalogue from path.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	questions, err := loadQuestions(path)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		questions: questions,
	}, nil
}

// GetAll returns a copy of all questions in catalogue order.
func (r *QuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	if len(r.questions) == 0 {
		return nil, ErrRepositoryEmpty
	}

	out := make([]entities.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}

// Count returns the number of questions in the catalogue.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

func loadQuestions(path string) ([]entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Questions []entities.Question `json:"questions"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	if len(wrapper.Questions) == 0 {
		return nil, ErrRepositoryEmpty
	}

	for i, q := range wrapper.Questions {
		if q.ImageRef == "" || q.Prompt == "" {
			return nil, fmt.Errorf("question %d: %w", i+1, ErrInvalidQuestion)
		}
	}

	return wrapper.Questions, nil
}
