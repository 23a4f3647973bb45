package telegram

import (
	"strings"
	"testing"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

func intPtr(n int) *int { return &n }

func scoreSnapshot(pick *int) service.Snapshot {
	return service.Snapshot{
		Section: entities.SectionScore,
		Items: []entities.QuizItem{{
			Prompt:  "Who coached the 1970 Vikings?",
			Options: []entities.Option{{Text: "Tom Landry"}, {Text: "Bud Grant", Correct: true}},
			Correct: 1,
			Pick:    pick,
		}},
	}
}

func TestBuildProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{name: "empty", current: 0, total: 10, want: "[░░░░░░░░░░]"},
		{name: "half", current: 5, total: 10, want: "[█████░░░░░]"},
		{name: "full", current: 10, total: 10, want: "[██████████]"},
		{name: "overflow", current: 12, total: 10, want: "[██████████]"},
		{name: "no total", current: 0, total: 0, want: "░░░░░░░░░░"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildProgressBar(tt.current, tt.total, 10); got != tt.want {
				t.Errorf("buildProgressBar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatScoreVerdict(t *testing.T) {
	tests := []struct {
		percentage float64
		emoji      string
	}{
		{100, "🌟"},
		{90, "🌟"},
		{70, "👍"},
		{50, "💪"},
		{49.9, "📚"},
	}

	for _, tt := range tests {
		if emoji, _ := formatScoreVerdict(tt.percentage); emoji != tt.emoji {
			t.Errorf("formatScoreVerdict(%v) emoji = %q, want %q", tt.percentage, emoji, tt.emoji)
		}
	}
}

func TestFormatReviewAnswers(t *testing.T) {
	tests := []struct {
		name string
		pick *int
		want []string
	}{
		{name: "no response", pick: nil, want: []string{"❌ Response:", "_None_", "*Bud Grant*"}},
		{name: "wrong response", pick: intPtr(0), want: []string{"❌ Response:", "*Tom Landry*", "*Bud Grant*"}},
		{name: "correct response", pick: intPtr(1), want: []string{"✅ Response:", "*Bud Grant*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatReviewAnswers(scoreSnapshot(tt.pick).Items[0])
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("formatReviewAnswers() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestFormatScreensEscapeMarkdown(t *testing.T) {
	snap := scoreSnapshot(intPtr(1))
	snap.Score = 1

	text := formatScoreScreen(snap, service.ThemeDay)
	if !strings.Contains(text, "1/1 \\(100%\\)") {
		t.Errorf("score should be escaped, got %q", text)
	}
	if !strings.Contains(text, "☀️") {
		t.Errorf("day screen should carry the sun icon, got %q", text)
	}
}

func TestQuizKeyboardAfterAnswer(t *testing.T) {
	snap := scoreSnapshot(intPtr(0))
	snap.Section = entities.SectionQuiz

	kb := buildQuizKeyboard(snap)
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d, want two options plus the next row", len(kb.InlineKeyboard))
	}

	if got := kb.InlineKeyboard[0][0].Text; got != "❌ Tom Landry" {
		t.Errorf("picked option label = %q", got)
	}
	if got := kb.InlineKeyboard[1][0].Text; got != "✅ Bud Grant" {
		t.Errorf("correct option label = %q", got)
	}
	if got := kb.InlineKeyboard[2][0].Text; got != "See results 🏁" {
		t.Errorf("last question should offer results, got %q", got)
	}
}

func TestScoreKeyboardSinglePage(t *testing.T) {
	kb := buildScoreKeyboard(scoreSnapshot(nil))

	if len(kb.InlineKeyboard) != 1 {
		t.Fatalf("rows = %d, want restart only", len(kb.InlineKeyboard))
	}
	if got := *kb.InlineKeyboard[0][0].CallbackData; got != buildQuizRestartCallback() {
		t.Errorf("restart data = %q", got)
	}
}
