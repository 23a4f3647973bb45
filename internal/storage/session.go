package storage

import (
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

type chatState struct {
	id        string // random session id for log correlation
	session   *service.QuizSession
	messageID int // id of the message that shows the quiz screen, 0 if none
}

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
type SessionStorage struct {
	mu    sync.RWMutex
	chats map[int64]*chatState
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		chats: make(map[int64]*chatState),
	}
}

// GetOrCreate returns the session of a chat, creating it with create if missing.
// The second result reports whether a new session was created.
func (s *SessionStorage) GetOrCreate(chatID int64, create func() *service.QuizSession) (*service.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.chats[chatID]; ok {
		return st.session, false
	}

	st := &chatState{id: uuid.NewString(), session: create()}
	s.chats[chatID] = st
	return st.session, true
}

// Get retrieves the session of a chat.
func (s *SessionStorage) Get(chatID int64) (*service.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.chats[chatID]
	if !ok {
		return nil, false
	}
	return st.session, true
}

// SessionID returns the id assigned to the chat session on creation.
func (s *SessionStorage) SessionID(chatID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.chats[chatID]
	if !ok {
		return "", false
	}
	return st.id, true
}

// SetMessageID remembers the quiz screen message of a chat. Zero forgets it.
func (s *SessionStorage) SetMessageID(chatID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.chats[chatID]; ok {
		st.messageID = messageID
	}
}

// MessageID returns the quiz screen message of a chat.
func (s *SessionStorage) MessageID(chatID int64) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.chats[chatID]
	if !ok || st.messageID == 0 {
		return 0, false
	}
	return st.messageID, true
}

// Delete removes the session of a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chats, chatID)
}

// Chats returns the IDs of all chats with a session.
func (s *SessionStorage) Chats() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.chats))
	for id := range s.chats {
		ids = append(ids, id)
	}
	return ids
}
