package quiz

// Record overwrites the answer slot at the given presentation position.
// Last write wins; out-of-range positions are ignored. Clients call this on
// every answer-selection change, so navigating away never loses an
// in-progress answer.
func (s *Session) Record(pos int, value string) {
	if pos < 0 || pos >= len(s.Answers) {
		return
	}
	v := value
	s.Answers[pos] = &v
}

// RecordCurrent records value at the cursor position. A nil value leaves the
// slot as-is, so navigation without an in-flight answer is a pure cursor move.
func (s *Session) RecordCurrent(value *string) {
	if value != nil {
		s.Record(s.Pos, *value)
	}
}

// Next advances the cursor. Staying put at the last question is the boundary
// policy, not an error.
func (s *Session) Next() {
	if s.Pos < len(s.Questions)-1 {
		s.Pos++
	}
}

// Prev moves the cursor back, staying put at the first question.
func (s *Session) Prev() {
	if s.Pos > 0 {
		s.Pos--
	}
}

// Current returns the render view for the cursor position: the question at
// the presentation-order index for Pos plus the previously recorded answer.
func (s *Session) Current() QuestionView {
	q := s.Questions[s.Order[s.Pos]]
	view := QuestionView{
		SessionID: s.ID,
		Position:  s.Pos + 1,
		Total:     len(s.Questions),
		Type:      q.Type,
		Question:  q.Question,
		Answer:    s.Answers[s.Pos],
		HasPrev:   s.Pos > 0,
		HasNext:   s.Pos < len(s.Questions)-1,
	}
	if q.Type != TypeIdentify {
		view.Choices = q.ChoiceList()
	}
	return view
}
