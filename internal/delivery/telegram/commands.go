package telegram

// handleStart shows the start screen in a fresh message.
func (h *Handler) handleStart() HandlerFunc {
	return func(chatID int64) error {
		s, _ := h.session(chatID)
		h.sessions.SetMessageID(chatID, 0)
		s.Restart()
		return nil
	}
}

// handleQuiz starts a new play-through in a fresh message.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(chatID int64) error {
		s, _ := h.session(chatID)
		h.sessions.SetMessageID(chatID, 0)
		return s.Start()
	}
}

// handleRestart drops the current play-through and shows the start screen in place.
func (h *Handler) handleRestart() HandlerFunc {
	return func(chatID int64) error {
		s, _ := h.session(chatID)
		s.Restart()
		return nil
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(chatID int64) error {
		return h.send(newPlainMessage(chatID, msgHelp))
	}
}
