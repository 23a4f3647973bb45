package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz   = "quiz"
	actionReview = "review"
)

// Quiz sub-actions.
const (
	quizStart   = "start"
	quizAnswer  = "answer"
	quizNext    = "next"
	quizRestart = "restart"
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

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizStartCallback builds callback data for starting a quiz.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for picking an option of the question at position.
func buildQuizAnswerCallback(position, option int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(position), strconv.Itoa(option)},
	}.encode()
}

// buildQuizNextCallback builds callback data for leaving the question at position.
func buildQuizNextCallback(position int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, strconv.Itoa(position)},
	}.encode()
}

func buildQuizRestartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizRestart},
	}.encode()
}

// buildReviewCallback builds callback data for opening a review page.
func buildReviewCallback(index int) string {
	return callbackData{
		Action: actionReview,
		Params: []string{strconv.Itoa(index)},
	}.encode()
}
