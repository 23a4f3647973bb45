package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
)

var ErrInvalidQuestionBank = errors.New("invalid question bank")

// SessionError reports a question bank that cannot produce a valid session.
type SessionError struct {
	Question int    // index of the offending template, -1 if the bank as a whole is at fault
	Reason   string // human readable cause
}

func (e *SessionError) Error() string {
	if e.Question < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidQuestionBank, e.Reason)
	}
	return fmt.Sprintf("%s: question %d: %s", ErrInvalidQuestionBank, e.Question, e.Reason)
}

func (e *SessionError) Unwrap() error {
	return ErrInvalidQuestionBank
}

// QuizSession is a single play-through of the question bank.
// It is not safe for concurrent use; one event dispatcher owns it.
type QuizSession struct {
	bank      []entities.QuestionTemplate
	rnd       *rand.Rand
	observers []Observer

	items       []entities.QuizItem
	current     int
	score       int
	reviewIndex int
	section     entities.Section
}

// NewQuizSession creates a session over bank in the start section.
// A nil rnd falls back to a time-seeded source.
func NewQuizSession(bank []entities.QuestionTemplate, rnd *rand.Rand) *QuizSession {
	templates := make([]entities.QuestionTemplate, 0, len(bank))
	for _, t := range bank {
		templates = append(templates, t.Clone())
	}

	if rnd == nil {
		rnd = newRand()
	}

	return &QuizSession{
		bank:    templates,
		rnd:     rnd,
		section: entities.SectionStart,
	}
}

// Subscribe registers an observer for state snapshots.
func (s *QuizSession) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Start builds a freshly randomized set of items and enters the quiz section.
// On a malformed bank it returns a *SessionError and leaves the session untouched.
func (s *QuizSession) Start() error {
	items, err := buildItems(s.bank, s.rnd)
	if err != nil {
		return err
	}

	s.items = Shuffle(items, s.rnd)
	s.current = 0
	s.score = 0
	s.reviewIndex = 0
	s.section = entities.SectionQuiz

	s.emit()
	return nil
}

// Answer records the pick for the current question. Calls outside the quiz
// section, on an answered question or with an out of range index are ignored.
func (s *QuizSession) Answer(selected int) {
	if s.section != entities.SectionQuiz || s.current >= len(s.items) {
		return
	}

	item := &s.items[s.current]
	if item.Answered() || selected < 0 || selected >= len(item.Options) {
		return
	}

	pick := selected
	item.Pick = &pick
	if selected == item.Correct {
		s.score++
	}

	s.emit()
}

// Advance moves to the next question, or to the score section after the last one.
// It is ignored until the current question has been answered.
func (s *QuizSession) Advance() {
	if s.section != entities.SectionQuiz || s.current >= len(s.items) {
		return
	}
	if !s.items[s.current].Answered() {
		return
	}

	if s.current+1 < len(s.items) {
		s.current++
	} else {
		s.section = entities.SectionScore
		s.reviewIndex = 0
	}

	s.emit()
}

// ReviewGoto selects the reviewed item, clamped to the item range.
func (s *QuizSession) ReviewGoto(index int) {
	if s.section != entities.SectionScore || len(s.items) == 0 {
		return
	}

	index = max(0, min(index, len(s.items)-1))
	if index == s.reviewIndex {
		return
	}

	s.reviewIndex = index
	s.emit()
}

// ReviewPrev selects the previous reviewed item.
func (s *QuizSession) ReviewPrev() {
	s.ReviewGoto(s.reviewIndex - 1)
}

// ReviewNext selects the next reviewed item.
func (s *QuizSession) ReviewNext() {
	s.ReviewGoto(s.reviewIndex + 1)
}

// Restart discards the play-through and returns to the start section.
func (s *QuizSession) Restart() {
	s.items = nil
	s.current = 0
	s.score = 0
	s.reviewIndex = 0
	s.section = entities.SectionStart

	s.emit()
}

func (s *QuizSession) Section() entities.Section {
	return s.section
}

func (s *QuizSession) CurrentIndex() int {
	return s.current
}

func (s *QuizSession) Score() int {
	return s.score
}

func (s *QuizSession) ReviewIndex() int {
	return s.reviewIndex
}

// Items returns a deep copy of the session items in session order.
func (s *QuizSession) Items() []entities.QuizItem {
	items := make([]entities.QuizItem, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it.Clone())
	}
	return items
}

// Current returns a copy of the current item.
func (s *QuizSession) Current() (entities.QuizItem, bool) {
	if s.section != entities.SectionQuiz || s.current >= len(s.items) {
		return entities.QuizItem{}, false
	}
	return s.items[s.current].Clone(), true
}

// Snapshot returns an immutable copy of the session state.
func (s *QuizSession) Snapshot() Snapshot {
	return Snapshot{
		Section:      s.section,
		Items:        s.Items(),
		CurrentIndex: s.current,
		Score:        s.score,
		ReviewIndex:  s.reviewIndex,
	}
}

func (s *QuizSession) emit() {
	if len(s.observers) == 0 {
		return
	}

	snap := s.Snapshot()
	for _, o := range s.observers {
		o(snap)
	}
}

// ValidateBank checks that every template can be turned into a quiz item.
func ValidateBank(bank []entities.QuestionTemplate) error {
	if len(bank) == 0 {
		return &SessionError{Question: -1, Reason: "no questions"}
	}

	for i, t := range bank {
		switch {
		case t.Prompt == "":
			return &SessionError{Question: i, Reason: "empty prompt"}
		case len(t.Options) == 0:
			return &SessionError{Question: i, Reason: "no options"}
		case t.Correct < 0 || t.Correct >= len(t.Options):
			return &SessionError{
				Question: i,
				Reason:   fmt.Sprintf("correct option %d out of range [0, %d)", t.Correct, len(t.Options)),
			}
		}
	}

	return nil
}

func buildItems(bank []entities.QuestionTemplate, rnd *rand.Rand) ([]entities.QuizItem, error) {
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}

	items := make([]entities.QuizItem, 0, len(bank))
	for i, t := range bank {
		opts := make([]entities.Option, 0, len(t.Options))
		for j, text := range t.Options {
			opts = append(opts, entities.Option{Text: text, Correct: j == t.Correct})
		}

		opts = Shuffle(opts, rnd)

		correct := -1
		for j, o := range opts {
			if o.Correct {
				correct = j
				break
			}
		}
		if correct < 0 {
			return nil, &SessionError{Question: i, Reason: "correct option lost"}
		}

		items = append(items, entities.QuizItem{
			Prompt:  t.Prompt,
			Options: opts,
			Correct: correct,
		})
	}

	return items, nil
}
