// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

const quizTitle = "Minnesota Vikings Quiz"

// Error and info messages.
const (
	msgQuizUnavailable = "Failed to start the quiz. Please try again later."
	msgInternalError   = "Something went wrong. Please try again later."
	msgOutdatedMessage = "This quiz message is outdated. Use the latest one."
	msgUnknownCommand  = "Unknown command. Use /start to open the quiz or /help to see all commands."
	msgHelp            = "🏈 Minnesota Vikings Quiz\n\n" +
		"/start - open the start screen\n" +
		"/quiz - start a new quiz right away\n" +
		"/restart - drop the current quiz and go back to the start screen\n" +
		"/help - show this message\n\n" +
		"Pick an answer with the buttons under each question. After the last question you can review every answer."
)

const (
	progressBarLength = 10
	scoreBarLength    = 10
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// themeIcon returns the header icon for a theme.
func themeIcon(theme service.Theme) string {
	if theme == service.ThemeNight {
		return "🌙"
	}
	return "☀️"
}

func formatHeader(theme service.Theme) string {
	return bold(themeIcon(theme) + " " + quizTitle)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// formatStartScreen formats the start screen (MarkdownV2 safe).
func formatStartScreen(theme service.Theme, totalQuestions int) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s",
		formatHeader(theme),
		md("How well do you know the 1970 Minnesota Vikings?"),
		md(fmt.Sprintf("%d questions, shuffled every time. Press Start when you are ready.", totalQuestions)),
	)
}

// formatQuizScreen formats the current question (MarkdownV2 safe).
func formatQuizScreen(snap service.Snapshot, theme service.Theme) string {
	item, ok := snap.CurrentItem()
	if !ok {
		return formatHeader(theme)
	}

	done := snap.CurrentIndex
	if item.Answered() {
		done++
	}

	var sb strings.Builder
	sb.WriteString(formatHeader(theme))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Question %d of %d", snap.CurrentIndex+1, snap.Total())))
	sb.WriteString("\n")
	sb.WriteString(bold(item.Prompt))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("%s %.0f%%", buildProgressBar(done, snap.Total(), progressBarLength), snap.Progress())))

	if item.Answered() {
		sb.WriteString("\n\n")
		sb.WriteString(formatAnswerFeedback(item.IsCorrect(), item.CorrectText()))
	}

	return sb.String()
}

// formatAnswerFeedback formats feedback for a quiz answer (MarkdownV2 safe).
func formatAnswerFeedback(isCorrect bool, correctAnswer string) string {
	if isCorrect {
		return md("✅ Correct!")
	}
	return fmt.Sprintf(
		"%s\n%s %s",
		md("❌ Incorrect"),
		md("Correct answer:"),
		bold(correctAnswer),
	)
}

// scorePercentage returns the share of correct picks in percent.
func scorePercentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// formatScoreVerdict picks an emoji and a closing line for a result.
func formatScoreVerdict(percentage float64) (string, string) {
	switch {
	case percentage >= 90:
		return "🌟", "Outstanding! Skol!"
	case percentage >= 70:
		return "👍", "Great result!"
	case percentage >= 50:
		return "💪", "Not bad, keep going!"
	default:
		return "📚", "Brush up on the 1970 season and try again!"
	}
}

// formatScoreScreen formats the result and the reviewed item (MarkdownV2 safe).
func formatScoreScreen(snap service.Snapshot, theme service.Theme) string {
	percentage := scorePercentage(snap.Score, snap.Total())
	emoji, verdict := formatScoreVerdict(percentage)

	var sb strings.Builder
	sb.WriteString(formatHeader(theme))
	sb.WriteString("\n\n")
	sb.WriteString(md("🏁 Your score:"))
	sb.WriteString(" ")
	sb.WriteString(bold(fmt.Sprintf("%d/%d (%.0f%%)", snap.Score, snap.Total(), percentage)))
	sb.WriteString("\n")
	sb.WriteString(md(buildProgressBar(snap.Score, snap.Total(), scoreBarLength)))
	sb.WriteString("\n")
	sb.WriteString(md(emoji + " " + verdict))

	item, ok := snap.ReviewItem()
	if !ok {
		return sb.String()
	}

	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Review %d of %d", snap.ReviewIndex+1, snap.Total())))
	sb.WriteString("\n")
	sb.WriteString(bold(item.Prompt))
	sb.WriteString("\n\n")
	sb.WriteString(formatReviewAnswers(item))

	return sb.String()
}

// formatReviewAnswers formats the user's response and the correct answer.
func formatReviewAnswers(item entities.QuizItem) string {
	response := italic("None")
	mark := "❌"
	if picked, ok := item.PickedText(); ok {
		response = bold(picked)
		if item.IsCorrect() {
			mark = "✅"
		}
	}

	return fmt.Sprintf(
		"%s %s\n%s %s",
		md(mark+" Response:"),
		response,
		md("✅ Correct:"),
		bold(item.CorrectText()),
	)
}
