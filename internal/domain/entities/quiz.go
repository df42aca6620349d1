package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoQuestions = errors.New("quiz has no questions")

// QuizState is the position of a quiz session in its round.
type QuizState int

const (
	StateAwaitingAnswer  QuizState = iota // a question is shown and input is open
	StateShowingFeedback                  // an answer was accepted, waiting for the feedback delay
	StateFinished                         // the last answer's feedback completed
)

func (s QuizState) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateShowingFeedback:
		return "showing_feedback"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// QuizSession is one chat's play-through of a fixed list of questions.
//
// A session is driven by three transitions: SubmitAnswer, CompleteFeedback
// and Restart. Calls that are not valid in the current state are ignored
// and reported as not applied.
type QuizSession struct {
	ID           uuid.UUID  // play-through ID, renewed on restart
	ChatID       int64      // chat the session is played in
	UserID       int64      // user who started the session
	Questions    []Question // fixed, ordered question set
	CurrentIndex int        // index of the current question
	CorrectCount int        // correct answers so far
	InputLocked  bool       // true while an answer's feedback is pending
	State        QuizState  // current state
	Generation   uint64     // bumped on restart, tags scheduled feedback completions
	StartedAt    time.Time  // start of the current play-through
}

// NewQuizSession creates a session positioned at the first question.
func NewQuizSession(chatID, userID int64, questions []Question, now time.Time) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	return &QuizSession{
		ID:        uuid.New(),
		ChatID:    chatID,
		UserID:    userID,
		Questions: qs,
		State:     StateAwaitingAnswer,
		StartedAt: now,
	}, nil
}

// Total returns the number of questions in the round.
func (s *QuizSession) Total() int {
	return len(s.Questions)
}

// CurrentQuestion describes the question that is currently shown.
func (s *QuizSession) CurrentQuestion() QuestionChanged {
	return newQuestionChanged(s.Questions[s.CurrentIndex], s.CurrentIndex, s.Total())
}

// SubmitAnswer records the given answer for the current question.
// It is applied only while awaiting an answer with input unlocked.
func (s *QuizSession) SubmitAnswer(given bool) (FeedbackShown, bool) {
	if s.State != StateAwaitingAnswer || s.InputLocked {
		return FeedbackShown{}, false
	}

	s.InputLocked = true
	isCorrect := given == s.Questions[s.CurrentIndex].CorrectAnswer
	if isCorrect {
		s.CorrectCount++
	}
	s.State = StateShowingFeedback

	return FeedbackShown{IsCorrect: isCorrect}, true
}

// CompleteFeedback ends the feedback of the last accepted answer.
// It returns QuestionChanged for the next question, or SessionEnded when
// the answered question was the last one.
func (s *QuizSession) CompleteFeedback() (Event, bool) {
	if s.State != StateShowingFeedback {
		return nil, false
	}

	if s.CurrentIndex == s.Total()-1 {
		s.State = StateFinished
		return SessionEnded{CorrectCount: s.CorrectCount, Total: s.Total()}, true
	}

	s.CurrentIndex++
	s.InputLocked = false
	s.State = StateAwaitingAnswer

	return s.CurrentQuestion(), true
}

// Restart begins a new play-through over the same questions.
// It is valid from every state.
func (s *QuizSession) Restart(now time.Time) QuestionChanged {
	s.ID = uuid.New()
	s.CurrentIndex = 0
	s.CorrectCount = 0
	s.InputLocked = false
	s.State = StateAwaitingAnswer
	s.Generation++
	s.StartedAt = now

	return s.CurrentQuestion()
}

// Answered returns how many questions have been answered in this play-through.
func (s *QuizSession) Answered() int {
	if s.State == StateAwaitingAnswer {
		return s.CurrentIndex
	}
	return s.CurrentIndex + 1
}

// Result builds the persisted record of a finished play-through.
func (s *QuizSession) Result(finishedAt time.Time) *QuizResult {
	return &QuizResult{
		SessionID:      s.ID,
		UserID:         s.UserID,
		ChatID:         s.ChatID,
		CorrectAnswers: s.CorrectCount,
		TotalQuestions: s.Total(),
		StartedAt:      s.StartedAt,
		FinishedAt:     finishedAt,
	}
}
