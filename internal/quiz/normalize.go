package quiz

// Normalize converts a raw bank question into its session-ready form.
// With foldTrueFalse set, a tf question becomes a two-choice mcq
// (True at index 0, False at index 1) so it can be shuffled and rendered
// like any other mcq. Choices are copied, never aliased, so shuffling a
// session can't mutate the bank.
func Normalize(raw RawQuestion, foldTrueFalse bool) SessionQuestion {
	switch raw.Type {
	case TypeTrueFalse:
		answer := 1
		if raw.AnswerBool() {
			answer = 0
		}
		if foldTrueFalse {
			return SessionQuestion{
				Type:     TypeMCQ,
				Question: raw.Question,
				Choices:  []string{"True", "False"},
				Answer:   answer,
			}
		}
		return SessionQuestion{
			Type:     TypeTrueFalse,
			Question: raw.Question,
			Answer:   answer,
		}
	case TypeIdentify:
		return SessionQuestion{
			Type:       TypeIdentify,
			Question:   raw.Question,
			AnswerText: raw.AnswerText(),
		}
	default: // mcq
		return SessionQuestion{
			Type:     TypeMCQ,
			Question: raw.Question,
			Choices:  append([]string(nil), raw.Choices...),
			Answer:   raw.AnswerIndex(),
		}
	}
}
