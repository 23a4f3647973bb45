package storage

import (
	"slices"
	"sync"
	"testing"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

func newSession() *service.QuizSession {
	return service.NewQuizSession([]entities.QuestionTemplate{
		{Prompt: "Q", Options: []string{"a", "b"}, Correct: 0},
	}, nil)
}

func TestGetOrCreate(t *testing.T) {
	s := NewSessionStorage()

	first, created := s.GetOrCreate(1, newSession)
	if !created || first == nil {
		t.Fatalf("GetOrCreate() created = %v, session = %v", created, first)
	}

	second, created := s.GetOrCreate(1, func() *service.QuizSession {
		t.Fatal("create called for an existing chat")
		return nil
	})
	if created || second != first {
		t.Errorf("GetOrCreate() returned a different session for the same chat")
	}

	got, ok := s.Get(1)
	if !ok || got != first {
		t.Errorf("Get() = %v, %v, want stored session", got, ok)
	}

	if _, ok := s.Get(2); ok {
		t.Error("Get() ok = true for unknown chat")
	}
}

func TestSessionID(t *testing.T) {
	s := NewSessionStorage()

	if _, ok := s.SessionID(1); ok {
		t.Error("SessionID() ok = true for unknown chat")
	}

	s.GetOrCreate(1, newSession)
	s.GetOrCreate(2, newSession)

	first, ok := s.SessionID(1)
	if !ok || first == "" {
		t.Fatalf("SessionID() = %q, %v, want a non-empty id", first, ok)
	}

	s.GetOrCreate(1, newSession)
	if again, _ := s.SessionID(1); again != first {
		t.Errorf("SessionID() changed for an existing chat: %q != %q", again, first)
	}

	if second, _ := s.SessionID(2); second == first {
		t.Error("different chats share a session id")
	}
}

func TestMessageID(t *testing.T) {
	s := NewSessionStorage()

	s.SetMessageID(1, 10)
	if _, ok := s.MessageID(1); ok {
		t.Error("SetMessageID() stored an ID for a chat without a session")
	}

	s.GetOrCreate(1, newSession)
	if _, ok := s.MessageID(1); ok {
		t.Error("MessageID() ok = true before SetMessageID()")
	}

	s.SetMessageID(1, 10)
	if id, ok := s.MessageID(1); !ok || id != 10 {
		t.Errorf("MessageID() = %d, %v, want 10, true", id, ok)
	}

	s.SetMessageID(1, 0)
	if _, ok := s.MessageID(1); ok {
		t.Error("MessageID() ok = true after reset to 0")
	}
}

func TestDeleteAndChats(t *testing.T) {
	s := NewSessionStorage()
	s.GetOrCreate(1, newSession)
	s.GetOrCreate(2, newSession)
	s.GetOrCreate(3, newSession)

	s.Delete(2)

	chats := s.Chats()
	slices.Sort(chats)
	if !slices.Equal(chats, []int64{1, 3}) {
		t.Errorf("Chats() = %v, want [1 3]", chats)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewSessionStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			s.GetOrCreate(chatID%5, newSession)
			s.SetMessageID(chatID%5, int(chatID))
			s.MessageID(chatID % 5)
			s.Chats()
		}(int64(i))
	}
	wg.Wait()

	if n := len(s.Chats()); n != 5 {
		t.Errorf("Chats() len = %d, want 5", n)
	}
}
