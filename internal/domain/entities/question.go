// Package entities contains domain entities used across the application.
package entities

// QuestionTemplate is a build-time question definition from the question bank.
// Templates are never mutated at runtime.
type QuestionTemplate struct {
	Prompt  string   `json:"q"` // question text
	Options []string `json:"o"` // answer options in bank order
	Correct int      `json:"a"` // index of the correct option within Options
}

// Clone returns a copy of the template that shares no memory with t.
func (t QuestionTemplate) Clone() QuestionTemplate {
	opts := make([]string, len(t.Options))
	copy(opts, t.Options)
	return QuestionTemplate{
		Prompt:  t.Prompt,
		Options: opts,
		Correct: t.Correct,
	}
}
