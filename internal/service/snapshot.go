package service

import "github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"

// Observer receives a snapshot after every operation that changed the session.
type Observer func(Snapshot)

// Snapshot is an immutable copy of a quiz session state.
type Snapshot struct {
	Section      entities.Section
	Items        []entities.QuizItem
	CurrentIndex int // index of the current question in the quiz section
	Score        int // number of correct picks so far
	ReviewIndex  int // index of the reviewed item in the score section
}

// Total returns the number of items in the session.
func (s Snapshot) Total() int {
	return len(s.Items)
}

// CurrentItem returns the item at CurrentIndex.
func (s Snapshot) CurrentItem() (entities.QuizItem, bool) {
	return s.itemAt(s.CurrentIndex)
}

// ReviewItem returns the item at ReviewIndex.
func (s Snapshot) ReviewItem() (entities.QuizItem, bool) {
	return s.itemAt(s.ReviewIndex)
}

// Answered returns the number of items with a pick.
func (s Snapshot) Answered() int {
	n := 0
	for _, it := range s.Items {
		if it.Answered() {
			n++
		}
	}
	return n
}

// Progress returns quiz completion in percent. The current question counts
// as done once it has been answered.
func (s Snapshot) Progress() float64 {
	if len(s.Items) == 0 {
		return 0
	}

	done := s.CurrentIndex
	if it, ok := s.CurrentItem(); ok && it.Answered() {
		done++
	}

	return float64(done) / float64(len(s.Items)) * 100
}

// IsFirstReview reports whether the reviewed item is the first one.
func (s Snapshot) IsFirstReview() bool {
	return s.ReviewIndex <= 0
}

// IsLastReview reports whether the reviewed item is the last one.
func (s Snapshot) IsLastReview() bool {
	return s.ReviewIndex >= len(s.Items)-1
}

func (s Snapshot) itemAt(i int) (entities.QuizItem, bool) {
	if i < 0 || i >= len(s.Items) {
		return entities.QuizItem{}, false
	}
	return s.Items[i], true
}
