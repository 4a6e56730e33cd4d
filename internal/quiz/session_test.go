package quiz_test

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// fixedSession builds a two-question session with a known presentation order
// so cursor behavior is deterministic.
func fixedSession() *quiz.Session {
	return &quiz.Session{
		ID:     "s1",
		Lesson: "sample",
		Questions: []quiz.SessionQuestion{
			{Type: quiz.TypeMCQ, Question: "Capital of France?", Choices: []string{"Paris", "Rome"}, Answer: 0},
			{Type: quiz.TypeIdentify, Question: "Systems language with a crab mascot?", AnswerText: "rust"},
		},
		Order:   []int{0, 1},
		Answers: make([]*string, 2),
		Status:  quiz.StatusInProgress,
	}
}

func TestSessionNavigationBounds(t *testing.T) {
	s := fixedSession()
	s.Prev()
	if s.Pos != 0 {
		t.Fatalf("prev at first question moved to %d", s.Pos)
	}
	s.Next()
	if s.Pos != 1 {
		t.Fatalf("next did not advance, pos=%d", s.Pos)
	}
	s.Next()
	if s.Pos != 1 {
		t.Fatalf("next at last question moved to %d", s.Pos)
	}
	s.Prev()
	if s.Pos != 0 {
		t.Fatalf("prev did not retreat, pos=%d", s.Pos)
	}
}

func TestRecordLastWriteWins(t *testing.T) {
	s := fixedSession()
	s.Record(0, "1")
	s.Record(0, "0")
	if s.Answers[0] == nil || *s.Answers[0] != "0" {
		t.Fatalf("answer = %v, want last write 0", s.Answers[0])
	}
	// out-of-range positions are ignored
	s.Record(-1, "x")
	s.Record(5, "x")
}

func TestCurrentPrefillsRecordedAnswer(t *testing.T) {
	s := fixedSession()
	s.Record(0, "1")
	s.Next()
	s.Prev()
	view := s.Current()
	if view.Answer == nil || *view.Answer != "1" {
		t.Fatalf("revisit answer = %v, want 1", view.Answer)
	}
	if view.Position != 1 || view.Total != 2 {
		t.Fatalf("position %d/%d", view.Position, view.Total)
	}
	if view.HasPrev || !view.HasNext {
		t.Fatalf("has_prev=%v has_next=%v at first question", view.HasPrev, view.HasNext)
	}
}

func TestCurrentViewOmitsChoicesForIdentify(t *testing.T) {
	s := fixedSession()
	s.Next()
	view := s.Current()
	if view.Type != quiz.TypeIdentify || view.Choices != nil {
		t.Fatalf("view = %+v", view)
	}
	if !view.HasPrev || view.HasNext {
		t.Fatalf("has_prev=%v has_next=%v at last question", view.HasPrev, view.HasNext)
	}
}

func TestRecordCurrentNilLeavesSlot(t *testing.T) {
	s := fixedSession()
	s.Record(0, "0")
	s.RecordCurrent(nil)
	if s.Answers[0] == nil || *s.Answers[0] != "0" {
		t.Fatalf("nil record changed slot to %v", s.Answers[0])
	}
	v := "1"
	s.RecordCurrent(&v)
	if *s.Answers[0] != "1" {
		t.Fatalf("record current did not overwrite, got %v", *s.Answers[0])
	}
}
