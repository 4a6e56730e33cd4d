package quiz

import (
	"math"
	"strconv"
	"strings"
)

// NoAnswerDisplay is the placeholder shown for an unanswered question.
const NoAnswerDisplay = "(no answer)"

// Score walks the session in presentation order and produces a verdict per
// question plus the aggregate summary. mcq/tf answers are compared by choice
// index; id answers by trimmed, case-folded text equality (no partial credit,
// no fuzzy matching). Unanswered questions score as incorrect, never as an
// error. The correct-answer display is always computed, even for correct
// verdicts. Score does not mutate the session, so repeated calls on an
// unmodified session yield identical summaries.
func Score(s *Session) ResultSummary {
	total := len(s.Questions)
	details := make([]ResultDetail, 0, total)
	correctCount := 0

	for i := 0; i < total; i++ {
		q := s.Questions[s.Order[i]]
		user := s.Answers[i]

		var correct bool
		var userDisplay, correctDisplay string

		switch q.Type {
		case TypeIdentify:
			correctDisplay = q.AnswerText
			if user == nil || *user == "" {
				userDisplay = NoAnswerDisplay
			} else {
				userDisplay = *user
				correct = foldText(*user) == foldText(q.AnswerText)
			}
		default: // mcq, tf
			choices := q.ChoiceList()
			correctDisplay = choices[q.Answer]
			if user == nil {
				userDisplay = NoAnswerDisplay
			} else if idx, err := strconv.Atoi(*user); err == nil && idx >= 0 && idx < len(choices) {
				userDisplay = choices[idx]
				correct = idx == q.Answer
			} else {
				userDisplay = *user
			}
		}

		if correct {
			correctCount++
		}
		details = append(details, ResultDetail{
			Index:         i + 1,
			Question:      q.Question,
			Type:          q.Type,
			Correct:       correct,
			User:          userDisplay,
			CorrectAnswer: correctDisplay,
		})
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(correctCount) / float64(total) * 100))
	}
	return ResultSummary{
		Lesson:  s.Lesson,
		Correct: correctCount,
		Total:   total,
		Percent: percent,
		Details: details,
	}
}

func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
