package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
)

//go:embed assets/questions.json
var defaultQuestions []byte

// QuestionRepository provides access to the quiz question bank.
// The bank is loaded once and kept in memory.
type QuestionRepository struct {
	questions []entities.QuestionTemplate
}

// NewQuestionRepository loads the question bank from the JSON file at path,
// or the compiled-in bank when path is empty.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	data := defaultQuestions
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read question bank: %w", err)
		}
	}

	questions, err := parseQuestions(data)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		questions: questions,
	}, nil
}

// GetAll returns a copy of all questions in bank order.
func (r *QuestionRepository) GetAll() []entities.QuestionTemplate {
	out := make([]entities.QuestionTemplate, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, q.Clone())
	}
	return out
}

// Count returns the number of questions in the bank.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

func parseQuestions(data []byte) ([]entities.QuestionTemplate, error) {
	var wrapper struct {
		Questions []entities.QuestionTemplate `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	return wrapper.Questions, nil
}
