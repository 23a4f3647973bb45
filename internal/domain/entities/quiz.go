package entities

// Section is the top-level screen of a quiz session.
type Section string

const (
	SectionStart Section = "start"
	SectionQuiz  Section = "quiz"
	SectionScore Section = "score"
)

// Option is a single answer option of a quiz item.
type Option struct {
	Text    string // option text as shown to the user
	Correct bool   // whether this is the correct option of its question
}

// QuizItem is one session-randomized question with the user's pick.
type QuizItem struct {
	Prompt  string   // question text
	Options []Option // options in session order
	Correct int      // index of the correct option within Options
	Pick    *int     // selected option index, nil until answered
}

// Answered reports whether the user has picked an option.
func (qi QuizItem) Answered() bool {
	return qi.Pick != nil
}

// IsCorrect reports whether the pick matches the correct option.
func (qi QuizItem) IsCorrect() bool {
	return qi.Pick != nil && *qi.Pick == qi.Correct
}

// CorrectText returns the text of the correct option.
func (qi QuizItem) CorrectText() string {
	if qi.Correct < 0 || qi.Correct >= len(qi.Options) {
		return ""
	}
	return qi.Options[qi.Correct].Text
}

// PickedText returns the text of the picked option, if any.
func (qi QuizItem) PickedText() (string, bool) {
	if qi.Pick == nil || *qi.Pick < 0 || *qi.Pick >= len(qi.Options) {
		return "", false
	}
	return qi.Options[*qi.Pick].Text, true
}

// Clone returns a deep copy of the item.
func (qi QuizItem) Clone() QuizItem {
	opts := make([]Option, len(qi.Options))
	copy(opts, qi.Options)

	var pick *int
	if qi.Pick != nil {
		p := *qi.Pick
		pick = &p
	}

	return QuizItem{
		Prompt:  qi.Prompt,
		Options: opts,
		Correct: qi.Correct,
		Pick:    pick,
	}
}
