package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

func TestNewQuestionRepositoryDefault(t *testing.T) {
	repo, err := NewQuestionRepository("")
	if err != nil {
		t.Fatalf("NewQuestionRepository() error = %v", err)
	}

	if repo.Count() != 10 {
		t.Errorf("Count() = %d, want 10", repo.Count())
	}

	if err := service.ValidateBank(repo.GetAll()); err != nil {
		t.Errorf("compiled-in bank is invalid: %v", err)
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	repo, err := NewQuestionRepository("")
	if err != nil {
		t.Fatalf("NewQuestionRepository() error = %v", err)
	}

	first := repo.GetAll()
	first[0].Prompt = "changed"
	first[0].Options[0] = "changed"

	second := repo.GetAll()
	if second[0].Prompt == "changed" || second[0].Options[0] == "changed" {
		t.Error("GetAll() exposes internal state")
	}
}

func TestNewQuestionRepositoryFromFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{
			name:    "valid file",
			content: `{"questions":[{"q":"Q1","o":["a","b"],"a":1},{"q":"Q2","o":["c","d"],"a":0}]}`,
			want:    2,
		},
		{
			name:    "empty list",
			content: `{"questions":[]}`,
			want:    0,
		},
		{
			name:    "malformed json",
			content: `{"questions":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "questions.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			repo, err := NewQuestionRepository(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewQuestionRepository() error = nil, want error")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewQuestionRepository() error = %v", err)
			}
			if repo.Count() != tt.want {
				t.Errorf("Count() = %d, want %d", repo.Count(), tt.want)
			}
		})
	}
}

func TestEmptyBankLoadsButFailsStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(`{"questions":[]}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo, err := NewQuestionRepository(path)
	if err != nil {
		t.Fatalf("NewQuestionRepository() error = %v", err)
	}

	s := service.NewQuizSession(repo.GetAll(), nil)
	err = s.Start()

	var sessErr *service.SessionError
	if !errors.As(err, &sessErr) {
		t.Fatalf("Start() error = %v, want *SessionError", err)
	}
	if sessErr.Question != -1 {
		t.Errorf("SessionError.Question = %d, want -1", sessErr.Question)
	}
}

func TestNewQuestionRepositoryMissingFile(t *testing.T) {
	_, err := NewQuestionRepository(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("NewQuestionRepository() error = %v, want os.ErrNotExist", err)
	}
}

func TestBankWithBadIndexLoadsButFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	content := `{"questions":[{"q":"Q1","o":["a","b"],"a":5}]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo, err := NewQuestionRepository(path)
	if err != nil {
		t.Fatalf("NewQuestionRepository() error = %v", err)
	}

	s := service.NewQuizSession(repo.GetAll(), nil)
	if err := s.Start(); !errors.Is(err, service.ErrInvalidQuestionBank) {
		t.Errorf("Start() error = %v, want ErrInvalidQuestionBank", err)
	}
}
