package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz  = "quiz"
	actionReset = "reset"
)

// Quiz sub-actions.
const (
	quizAnswer  = "answer"
	quizRestart = "restart"
	quizStart   = "start"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

const (
	answerYes = "1"
	answerNo  = "0"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// buildQuizAnswerCallback builds callback data for answering the question at index.
func buildQuizAnswerCallback(index int, given bool) string {
	value := answerNo
	if given {
		value = answerYes
	}
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(index), value},
	}.encode()
}

// parseQuizAnswer extracts the question index and the answer from
// quiz:answer:<index>:<1|0>.
func parseQuizAnswer(cd callbackData) (index int, given bool, ok bool) {
	if cd.Action != actionQuiz || cd.param(0) != quizAnswer || len(cd.Params) != 3 {
		return 0, false, false
	}

	index, err := strconv.Atoi(cd.Params[1])
	if err != nil || index < 0 {
		return 0, false, false
	}

	switch cd.Params[2] {
	case answerYes:
		return index, true, true
	case answerNo:
		return index, false, true
	}
	return 0, false, false
}

func buildQuizRestartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizRestart}}.encode()
}

func buildQuizStartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart}}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
