package quiz

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInvalidSelection is returned when a session is requested for an empty
// or unknown lesson. Callers are expected to validate lesson selection first;
// the builder fails fast rather than producing a degenerate session.
var ErrInvalidSelection = errors.New("invalid lesson selection")

// BuildSession assembles a fresh session over the given lesson. Every raw
// question is normalized, mcq choices are shuffled per config, and the
// presentation order is drawn as a uniform permutation of the question
// indices, independent of any choice shuffling. Answer slots start out
// unanswered and the cursor at the first position. Rebuilding for the same
// lesson (a retry) draws fresh shuffles.
func BuildSession(lesson string, raws []RawQuestion, cfg Config) (*Session, error) {
	if len(raws) == 0 {
		return nil, ErrInvalidSelection
	}
	questions := make([]SessionQuestion, len(raws))
	for i, raw := range raws {
		q := Normalize(raw, cfg.FoldTrueFalse)
		if q.Type == TypeMCQ {
			q.Choices, q.Answer = ShuffleChoices(q.Choices, q.Answer, cfg.ShuffleChoices)
		}
		q.OriginalIndex = i
		questions[i] = q
	}
	return &Session{
		Lesson:    lesson,
		Config:    cfg,
		Questions: questions,
		Order:     rand.Perm(len(questions)),
		Answers:   make([]*string, len(questions)),
		Pos:       0,
		Status:    StatusInProgress,
		CreatedAt: time.Now().Unix(),
	}, nil
}
