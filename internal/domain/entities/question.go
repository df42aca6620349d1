// Package entities contains domain entities used across the application.
package entities

// Question is a single yes/no movie question.
// The set of questions is fixed when a quiz session is created.
type Question struct {
	ImageRef      string `json:"image"`          // poster asset name, without extension
	Prompt        string `json:"text"`           // question text shown under the poster
	CorrectAnswer bool   `json:"correct_answer"` // expected answer
}
