package entities

import "fmt"

// Event is an immutable notification produced by a quiz session transition.
type Event interface {
	quizEvent()
}

// QuestionChanged is emitted when a new question becomes current.
type QuestionChanged struct {
	Index        int    // zero-based question index
	ImageRef     string // poster asset name
	Prompt       string // question text
	DisplayIndex string // "i/total", one-based
}

// FeedbackShown is emitted right after an answer is accepted.
type FeedbackShown struct {
	IsCorrect bool
}

// SessionEnded is emitted when the last question's feedback has completed.
type SessionEnded struct {
	CorrectCount int
	Total        int
}

func (QuestionChanged) quizEvent() {}
func (FeedbackShown) quizEvent()   {}
func (SessionEnded) quizEvent()    {}

func newQuestionChanged(q Question, index, total int) QuestionChanged {
	return QuestionChanged{
		Index:        index,
		ImageRef:     q.ImageRef,
		Prompt:       q.Prompt,
		DisplayIndex: fmt.Sprintf("%d/%d", index+1, total),
	}
}
