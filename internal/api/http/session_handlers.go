package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/quiz"

	"github.com/go-chi/chi/v5"
)

// CreateSessionHandler builds a fresh session for a lesson. The request may
// override the configured shuffle defaults. Posting again for the same
// lesson is a retry: a new session with fresh shuffles, the old one simply
// goes unused.
func CreateSessionHandler(b *bank.Bank, store quiz.Store, defaults quiz.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Lesson         string `json:"lesson"`
			ShuffleChoices *bool  `json:"shuffle_choices"`
			FoldTrueFalse  *bool  `json:"fold_true_false"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Lesson == "" {
			http.Error(w, "lesson required", 400)
			return
		}
		raws, ok := b.Lesson(req.Lesson)
		if !ok {
			http.Error(w, "lesson not found", 404)
			return
		}
		cfg := defaults
		if req.ShuffleChoices != nil {
			cfg.ShuffleChoices = *req.ShuffleChoices
		}
		if req.FoldTrueFalse != nil {
			cfg.FoldTrueFalse = *req.FoldTrueFalse
		}
		s, err := quiz.BuildSession(req.Lesson, raws, cfg)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		s.ID = uuid.NewString()
		if err := store.PutSession(s); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			SessionID string            `json:"session_id"`
			Lesson    string            `json:"lesson"`
			Total     int               `json:"total"`
			Current   quiz.QuestionView `json:"current"`
		}{SessionID: s.ID, Lesson: s.Lesson, Total: len(s.Questions), Current: s.Current()})
	}
}

func CurrentQuestionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		view, err := store.Current(id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// RecordAnswerHandler overwrites the answer at the current position. Clients
// call it on every selection change, so moving on without an explicit save
// never loses the in-progress answer.
func RecordAnswerHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var req struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		view, err := store.RecordAnswer(id, req.Value)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// NavigateHandler moves the cursor by delta (+1 next, -1 prev), committing
// an in-flight answer first when the request carries one. Hitting either
// boundary stays put rather than erroring.
func NavigateHandler(store quiz.Store, delta int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		value, ok := decodeOptionalValue(w, r)
		if !ok {
			return
		}
		view, err := store.Navigate(id, delta, value)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// SubmitSessionHandler commits the in-flight answer (if any) and scores the
// session. Submitting again without further changes returns an identical
// summary.
func SubmitSessionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		value, ok := decodeOptionalValue(w, r)
		if !ok {
			return
		}
		sum, err := store.Submit(id, value)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sum)
	}
}

func GetResultHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		sum, err := store.Result(id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sum)
	}
}

// DeleteSessionHandler abandons a session (back to lesson selection).
func DeleteSessionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		if err := store.Delete(id); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeOptionalValue reads an optional {"value": ...} body. An empty body is
// fine; malformed JSON is a 400 and reports false.
func decodeOptionalValue(w http.ResponseWriter, r *http.Request) (*string, bool) {
	var req struct {
		Value *string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", 400)
		return nil, false
	}
	return req.Value, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, quiz.ErrSessionNotFound) {
		http.Error(w, err.Error(), 404)
		return
	}
	http.Error(w, err.Error(), 400)
}
