// Package bank loads and validates the lesson question bank. The bank is a
// single JSON document mapping lesson names to question lists; it is read
// once at startup and immutable afterwards. All shape validation happens
// here so the session core can assume well-formed questions.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// LessonInfo is the listing entry for one lesson.
type LessonInfo struct {
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

type document struct {
	Lessons quiz.LessonSet `json:"lessons"`
}

// Bank is the loaded, validated lesson set.
type Bank struct {
	lessons quiz.LessonSet
	names   []string
}

// Load reads and parses the bank document at path. Any failure here is a
// data-load failure: fatal for the process, surfaced to the operator.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse bank %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a bank document.
func Parse(data []byte) (*Bank, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Lessons) == 0 {
		return nil, fmt.Errorf("bank has no lessons")
	}
	v := validator.New()
	for name, questions := range doc.Lessons {
		if len(questions) == 0 {
			return nil, fmt.Errorf("lesson %q has no questions", name)
		}
		for i, q := range questions {
			if err := validateQuestion(v, q); err != nil {
				return nil, fmt.Errorf("lesson %q question %d: %w", name, i, err)
			}
		}
	}
	names := make([]string, 0, len(doc.Lessons))
	for name := range doc.Lessons {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Bank{lessons: doc.Lessons, names: names}, nil
}

func validateQuestion(v *validator.Validate, q quiz.RawQuestion) error {
	if err := v.Struct(q); err != nil {
		return err
	}
	switch q.Type {
	case quiz.TypeMCQ:
		if len(q.Choices) < 2 {
			return fmt.Errorf("mcq needs at least 2 choices, got %d", len(q.Choices))
		}
		var idx int
		if err := json.Unmarshal(q.Answer, &idx); err != nil {
			return fmt.Errorf("mcq answer must be a choice index: %w", err)
		}
		if idx < 0 || idx >= len(q.Choices) {
			return fmt.Errorf("mcq answer index %d out of range [0,%d)", idx, len(q.Choices))
		}
	case quiz.TypeTrueFalse:
		var b bool
		if json.Unmarshal(q.Answer, &b) == nil {
			return nil
		}
		var s string
		if err := json.Unmarshal(q.Answer, &s); err != nil || (s != "true" && s != "false") {
			return fmt.Errorf("tf answer must be a boolean or \"true\"/\"false\"")
		}
	case quiz.TypeIdentify:
		var s string
		if err := json.Unmarshal(q.Answer, &s); err != nil {
			return fmt.Errorf("id answer must be text: %w", err)
		}
		if s == "" {
			return fmt.Errorf("id answer must not be empty")
		}
	}
	return nil
}

// Lessons lists the lessons by name, sorted, with question counts.
func (b *Bank) Lessons() []LessonInfo {
	out := make([]LessonInfo, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, LessonInfo{Name: name, Questions: len(b.lessons[name])})
	}
	return out
}

// Lesson returns the question list for name. The slice aliases the bank;
// callers must not mutate it (session building copies what it needs).
func (b *Bank) Lesson(name string) ([]quiz.RawQuestion, bool) {
	qs, ok := b.lessons[name]
	return qs, ok
}
