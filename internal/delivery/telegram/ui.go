package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

// buildStartKeyboard builds keyboard for the start screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏈 Start Quiz", buildQuizStartCallback()),
		),
	)
}

// optionLabel decorates an option once the question has been answered.
func optionLabel(item entities.QuizItem, i int) string {
	text := item.Options[i].Text
	if !item.Answered() {
		return text
	}

	switch {
	case i == item.Correct:
		return "✅ " + text
	case i == *item.Pick:
		return "❌ " + text
	default:
		return "▫️ " + text
	}
}

// buildQuizKeyboard builds keyboard for the current question.
func buildQuizKeyboard(snap service.Snapshot) tgbotapi.InlineKeyboardMarkup {
	item, ok := snap.CurrentItem()
	if !ok {
		return buildStartKeyboard()
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(item.Options)+1)
	for i := range item.Options {
		callbackData := buildQuizAnswerCallback(snap.CurrentIndex, i)
		button := tgbotapi.NewInlineKeyboardButtonData(optionLabel(item, i), callbackData)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	if item.Answered() {
		label := "Next question ▶️"
		if snap.CurrentIndex == snap.Total()-1 {
			label = "See results 🏁"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback(snap.CurrentIndex)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildScoreKeyboard builds review navigation and restart keyboard.
func buildScoreKeyboard(snap service.Snapshot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var nav []tgbotapi.InlineKeyboardButton
	if !snap.IsFirstReview() {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Prev", buildReviewCallback(snap.ReviewIndex-1)))
	}
	if !snap.IsLastReview() {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildReviewCallback(snap.ReviewIndex+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Restart Quiz", buildQuizRestartCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
