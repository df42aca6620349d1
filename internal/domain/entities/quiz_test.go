package entities_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aliskhannn/movie-quiz-bot/internal/domain/entities"
)

const prompt = "Рейтинг этого фильма больше чем 6?"

func movieQuestions() []entities.Question {
	return []entities.Question{
		{ImageRef: "The Godfather", Prompt: prompt, CorrectAnswer: true},
		{ImageRef: "The Dark Knight", Prompt: prompt, CorrectAnswer: true},
		{ImageRef: "Kill Bill", Prompt: prompt, CorrectAnswer: true},
		{ImageRef: "The Avengers", Prompt: prompt, CorrectAnswer: true},
		{ImageRef: "Deadpool", Prompt: prompt, CorrectAnswer: true},
		{ImageRef: "The Green Knight", Prompt: prompt, CorrectAnswer: true},
		{ImageRef: "Old", Prompt: prompt, CorrectAnswer: false},
		{ImageRef: "The Ice Age Adventures of Buck Wild", Prompt: prompt, CorrectAnswer: false},
		{ImageRef: "Tesla", Prompt: prompt, CorrectAnswer: false},
		{ImageRef: "Vivarium", Prompt: prompt, CorrectAnswer: false},
	}
}

func newSession(t *testing.T, questions []entities.Question) *entities.QuizSession {
	t.Helper()
	s, err := entities.NewQuizSession(1, 2, questions, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

// play answers every question and returns the final event.
func play(t *testing.T, s *entities.QuizSession, answers []bool) entities.Event {
	t.Helper()
	var last entities.Event
	for i, a := range answers {
		if _, ok := s.SubmitAnswer(a); !ok {
			t.Fatalf("answer %d was not accepted", i)
		}
		ev, ok := s.CompleteFeedback()
		if !ok {
			t.Fatalf("feedback %d was not completed", i)
		}
		last = ev
	}
	return last
}

func TestNewQuizSession_Empty(t *testing.T) {
	_, err := entities.NewQuizSession(1, 2, nil, time.Now())
	if !errors.Is(err, entities.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestNewQuizSession_InitialState(t *testing.T) {
	s := newSession(t, movieQuestions())

	if s.State != entities.StateAwaitingAnswer {
		t.Errorf("expected awaiting_answer, got %s", s.State)
	}
	if s.CurrentIndex != 0 || s.CorrectCount != 0 || s.InputLocked {
		t.Errorf("unexpected initial state: %+v", s)
	}

	q := s.CurrentQuestion()
	if q.DisplayIndex != "1/10" {
		t.Errorf("expected display index 1/10, got %s", q.DisplayIndex)
	}
	if q.ImageRef != "The Godfather" {
		t.Errorf("expected first movie, got %s", q.ImageRef)
	}
}

func TestNewQuizSession_CopiesQuestions(t *testing.T) {
	questions := movieQuestions()
	s := newSession(t, questions)

	questions[0].ImageRef = "changed"

	if s.Questions[0].ImageRef != "The Godfather" {
		t.Error("expected session questions to be independent of the input slice")
	}
}

func TestSubmitAnswer(t *testing.T) {
	tests := []struct {
		name        string
		given       bool
		wantCorrect bool
		wantCount   int
	}{
		{name: "correct", given: true, wantCorrect: true, wantCount: 1},
		{name: "wrong", given: false, wantCorrect: false, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, movieQuestions())

			ev, ok := s.SubmitAnswer(tt.given)
			if !ok {
				t.Fatal("expected answer to be accepted")
			}
			if ev.IsCorrect != tt.wantCorrect {
				t.Errorf("expected IsCorrect=%v, got %v", tt.wantCorrect, ev.IsCorrect)
			}
			if s.CorrectCount != tt.wantCount {
				t.Errorf("expected correct count %d, got %d", tt.wantCount, s.CorrectCount)
			}
			if !s.InputLocked {
				t.Error("expected input to be locked")
			}
			if s.State != entities.StateShowingFeedback {
				t.Errorf("expected showing_feedback, got %s", s.State)
			}
		})
	}
}

func TestSubmitAnswer_IgnoredWhileLocked(t *testing.T) {
	s := newSession(t, movieQuestions())

	if _, ok := s.SubmitAnswer(true); !ok {
		t.Fatal("expected first answer to be accepted")
	}
	if _, ok := s.SubmitAnswer(false); ok {
		t.Fatal("expected second answer to be ignored")
	}
	if _, ok := s.SubmitAnswer(true); ok {
		t.Fatal("expected third answer to be ignored")
	}

	if s.CorrectCount != 1 {
		t.Errorf("expected correct count 1, got %d", s.CorrectCount)
	}
}

func TestSubmitAnswer_IgnoredWhenLockedInAwaitingState(t *testing.T) {
	s := newSession(t, movieQuestions())
	s.InputLocked = true

	if _, ok := s.SubmitAnswer(true); ok {
		t.Fatal("expected answer to be ignored while the lock is held")
	}
	if s.CorrectCount != 0 || s.State != entities.StateAwaitingAnswer {
		t.Errorf("expected state to be unchanged, got %+v", s)
	}
}

func TestCompleteFeedback_IgnoredOutsideFeedback(t *testing.T) {
	s := newSession(t, movieQuestions())

	if _, ok := s.CompleteFeedback(); ok {
		t.Fatal("expected completion to be ignored while awaiting an answer")
	}
	if s.CurrentIndex != 0 {
		t.Errorf("expected index 0, got %d", s.CurrentIndex)
	}
}

func TestCompleteFeedback_Advances(t *testing.T) {
	s := newSession(t, movieQuestions())
	s.SubmitAnswer(true)

	ev, ok := s.CompleteFeedback()
	if !ok {
		t.Fatal("expected completion to be applied")
	}

	changed, isChanged := ev.(entities.QuestionChanged)
	if !isChanged {
		t.Fatalf("expected QuestionChanged, got %T", ev)
	}
	if changed.Index != 1 || changed.DisplayIndex != "2/10" || changed.ImageRef != "The Dark Knight" {
		t.Errorf("unexpected event: %+v", changed)
	}
	if s.InputLocked || s.State != entities.StateAwaitingAnswer {
		t.Errorf("expected unlocked awaiting state, got %+v", s)
	}
}

func TestCompleteFeedback_LastQuestionFinishes(t *testing.T) {
	questions := []entities.Question{{ImageRef: "only", Prompt: prompt, CorrectAnswer: false}}
	s := newSession(t, questions)

	ev := play(t, s, []bool{false})

	ended, ok := ev.(entities.SessionEnded)
	if !ok {
		t.Fatalf("expected SessionEnded, got %T", ev)
	}
	if ended.Total != 1 || ended.CorrectCount != 1 {
		t.Errorf("unexpected result: %+v", ended)
	}
	if s.State != entities.StateFinished {
		t.Errorf("expected finished, got %s", s.State)
	}

	if _, ok := s.SubmitAnswer(true); ok {
		t.Error("expected answers to be ignored after the round finished")
	}
	if _, ok := s.CompleteFeedback(); ok {
		t.Error("expected completion to be ignored after the round finished")
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name    string
		answers []bool
		want    int
	}{
		{
			name:    "all answers match",
			answers: []bool{true, true, true, true, true, true, false, false, false, false},
			want:    10,
		},
		{
			name:    "always yes",
			answers: []bool{true, true, true, true, true, true, true, true, true, true},
			want:    6,
		},
		{
			name:    "always no",
			answers: []bool{false, false, false, false, false, false, false, false, false, false},
			want:    4,
		},
		{
			name:    "all answers wrong",
			answers: []bool{false, false, false, false, false, false, true, true, true, true},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, movieQuestions())

			ev := play(t, s, tt.answers)

			ended, ok := ev.(entities.SessionEnded)
			if !ok {
				t.Fatalf("expected SessionEnded, got %T", ev)
			}
			if ended.CorrectCount != tt.want {
				t.Errorf("expected %d correct, got %d", tt.want, ended.CorrectCount)
			}
			if ended.Total != 10 {
				t.Errorf("expected total 10, got %d", ended.Total)
			}
		})
	}
}

func TestInvariantsHoldThroughoutRound(t *testing.T) {
	s := newSession(t, movieQuestions())
	answers := []bool{true, false, true, false, true, false, true, false, true, false}

	for _, a := range answers {
		// a second submit while locked must never count
		s.SubmitAnswer(a)
		s.SubmitAnswer(a)

		if s.CorrectCount > s.Answered() {
			t.Fatalf("correct count %d exceeds answered %d", s.CorrectCount, s.Answered())
		}

		s.CompleteFeedback()
		s.CompleteFeedback()

		if s.State != entities.StateFinished && (s.CurrentIndex < 0 || s.CurrentIndex >= s.Total()) {
			t.Fatalf("index %d out of range", s.CurrentIndex)
		}
	}

	if s.State != entities.StateFinished {
		t.Fatalf("expected finished, got %s", s.State)
	}
}

func TestRestart(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *entities.QuizSession)
	}{
		{
			name: "after finish",
			setup: func(s *entities.QuizSession) {
				for range s.Questions {
					s.SubmitAnswer(true)
					s.CompleteFeedback()
				}
			},
		},
		{
			name: "while showing feedback",
			setup: func(s *entities.QuizSession) {
				s.SubmitAnswer(true)
				s.CompleteFeedback()
				s.SubmitAnswer(true)
			},
		},
		{
			name:  "while awaiting answer",
			setup: func(s *entities.QuizSession) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, movieQuestions())
			tt.setup(s)
			oldID := s.ID
			oldGen := s.Generation

			ev := s.Restart(time.Now())

			if s.State != entities.StateAwaitingAnswer {
				t.Errorf("expected awaiting_answer, got %s", s.State)
			}
			if s.CurrentIndex != 0 || s.CorrectCount != 0 || s.InputLocked {
				t.Errorf("expected reset state, got %+v", s)
			}
			if ev.Index != 0 || ev.DisplayIndex != "1/10" {
				t.Errorf("expected first question event, got %+v", ev)
			}
			if s.ID == oldID {
				t.Error("expected a new play-through ID")
			}
			if s.Generation != oldGen+1 {
				t.Errorf("expected generation %d, got %d", oldGen+1, s.Generation)
			}
		})
	}
}

func TestResult(t *testing.T) {
	s := newSession(t, movieQuestions())
	play(t, s, []bool{true, true, true, true, true, true, true, true, true, true})

	finished := time.Now()
	r := s.Result(finished)

	if r.SessionID != s.ID || r.UserID != 2 || r.ChatID != 1 {
		t.Errorf("unexpected identifiers: %+v", r)
	}
	if r.CorrectAnswers != 6 || r.TotalQuestions != 10 {
		t.Errorf("expected 6/10, got %d/%d", r.CorrectAnswers, r.TotalQuestions)
	}
	if !r.FinishedAt.Equal(finished) {
		t.Errorf("expected finished at %v, got %v", finished, r.FinishedAt)
	}
}

func TestQuizStats_Accuracy(t *testing.T) {
	tests := []struct {
		name  string
		stats entities.QuizStats
		want  float64
	}{
		{name: "no games", stats: entities.QuizStats{}, want: 0},
		{name: "half", stats: entities.QuizStats{TotalCorrect: 10, TotalQuestions: 20}, want: 50},
		{name: "all", stats: entities.QuizStats{TotalCorrect: 10, TotalQuestions: 10}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Accuracy(); got != tt.want {
				t.Errorf("expected %.1f, got %.1f", tt.want, got)
			}
		})
	}
}
