package quiz

import "encoding/json"

// Question types as they appear in the bank document.
const (
	TypeMCQ       = "mcq"
	TypeTrueFalse = "tf"
	TypeIdentify  = "id"
)

// Session lifecycle states.
const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

// RawQuestion is one question as stored in the bank document. Answer is
// type-dependent: an index into Choices for mcq, a boolean (or the strings
// "true"/"false") for tf, the expected text for id. The bank loader validates
// shape at load time; everything downstream assumes well-formed input.
type RawQuestion struct {
	Type     string          `json:"type" validate:"required,oneof=mcq tf id"`
	Question string          `json:"question" validate:"required"`
	Choices  []string        `json:"choices,omitempty"`
	Answer   json.RawMessage `json:"answer"`
}

// AnswerIndex decodes the mcq answer index. Zero on non-mcq input.
func (q RawQuestion) AnswerIndex() int {
	var i int
	_ = json.Unmarshal(q.Answer, &i)
	return i
}

// AnswerBool decodes the tf answer, accepting both the JSON boolean and the
// string forms "true"/"false".
func (q RawQuestion) AnswerBool() bool {
	var b bool
	if err := json.Unmarshal(q.Answer, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(q.Answer, &s); err == nil {
		return s == "true"
	}
	return false
}

// AnswerText decodes the id answer text.
func (q RawQuestion) AnswerText() string {
	var s string
	_ = json.Unmarshal(q.Answer, &s)
	return s
}

// LessonSet maps a lesson name to its ordered question list.
type LessonSet map[string][]RawQuestion

// SessionQuestion is the normalized, session-ready form of a question.
// For mcq, Choices/Answer reflect any choice shuffling applied at build time.
// For tf the two choices are implicit (True, False) with Answer 0 or 1.
// OriginalIndex points back at the question's position in the source lesson;
// it is carried for traceability only.
type SessionQuestion struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Choices       []string `json:"choices,omitempty"`
	Answer        int      `json:"answer"`
	AnswerText    string   `json:"answer_text,omitempty"`
	OriginalIndex int      `json:"original_index"`
}

// ChoiceList returns the displayed choices: the shuffled mcq choices, or the
// implicit True/False pair for an unfolded tf question. Nil for id.
func (q SessionQuestion) ChoiceList() []string {
	if q.Type == TypeTrueFalse {
		return []string{"True", "False"}
	}
	return q.Choices
}

// Config carries the per-session randomization flags.
type Config struct {
	ShuffleChoices bool `json:"shuffle_choices"`
	FoldTrueFalse  bool `json:"fold_true_false"`
}

// Session is one attempt at a lesson. Questions is fixed at build time.
// Order is the presentation order, a permutation of [0, len(Questions)).
// Answers holds one slot per presentation position: nil means unanswered,
// otherwise the decimal choice index for mcq/tf or the free text for id.
type Session struct {
	ID        string            `json:"id"`
	Lesson    string            `json:"lesson"`
	Config    Config            `json:"config"`
	Questions []SessionQuestion `json:"questions"`
	Order     []int             `json:"order"`
	Answers   []*string         `json:"answers"`
	Pos       int               `json:"pos"`
	Status    string            `json:"status"`
	Summary   *ResultSummary    `json:"summary,omitempty"`
	CreatedAt int64             `json:"created_at"`
}

// QuestionView is the render contract for one presentation position.
// Answer is the previously recorded value, if any, so a client can pre-fill
// the prior selection on revisit. The answer key is never included.
type QuestionView struct {
	SessionID string   `json:"session_id"`
	Position  int      `json:"position"` // 1-based
	Total     int      `json:"total"`
	Type      string   `json:"type"`
	Question  string   `json:"question"`
	Choices   []string `json:"choices,omitempty"`
	Answer    *string  `json:"answer,omitempty"`
	HasPrev   bool     `json:"has_prev"`
	HasNext   bool     `json:"has_next"`
}

// ResultDetail is the verdict for one question, in presentation order.
// User and CorrectAnswer are display strings; CorrectAnswer is always
// computed even when the verdict is correct.
type ResultDetail struct {
	Index         int    `json:"index"` // 1-based presentation position
	Question      string `json:"question"`
	Type          string `json:"type"`
	Correct       bool   `json:"correct"`
	User          string `json:"user"`
	CorrectAnswer string `json:"correct_answer"`
}

// ResultSummary is the scored outcome of a session.
type ResultSummary struct {
	Lesson  string         `json:"lesson"`
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
	Percent int            `json:"percent"`
	Details []ResultDetail `json:"details"`
}
