package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/quizdeck/quizdeck/internal/api/http"
	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

const testBank = `{
  "lessons": {
    "Capitals": [
      {"type": "mcq", "question": "Capital of France?", "choices": ["Paris", "Rome"], "answer": 0},
      {"type": "id", "question": "Systems language with a crab mascot?", "answer": "rust"}
    ]
  }
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	b, err := bank.Parse([]byte(testBank))
	if err != nil {
		t.Fatal(err)
	}
	store := quiz.NewMemoryStore()
	defaults := quiz.Config{ShuffleChoices: false, FoldTrueFalse: true}

	r := chi.NewRouter()
	r.Get("/lessons", api.ListLessonsHandler(b))
	r.Post("/sessions", api.CreateSessionHandler(b, store, defaults))
	r.Route("/sessions/{sessionID}", func(sr chi.Router) {
		sr.Get("/current", api.CurrentQuestionHandler(store))
		sr.Post("/answer", api.RecordAnswerHandler(store))
		sr.Post("/next", api.NavigateHandler(store, 1))
		sr.Post("/prev", api.NavigateHandler(store, -1))
		sr.Post("/submit", api.SubmitSessionHandler(store))
		sr.Get("/result", api.GetResultHandler(store))
		sr.Delete("/", api.DeleteSessionHandler(store))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestListLessons(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/lessons")
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Lessons []bank.LessonInfo `json:"lessons"`
	}
	decode(t, resp, &body)
	if len(body.Lessons) != 1 || body.Lessons[0].Name != "Capitals" || body.Lessons[0].Questions != 2 {
		t.Fatalf("lessons = %+v", body.Lessons)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/sessions", `{"lesson": ""}`)
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Fatalf("empty lesson status = %d", resp.StatusCode)
	}
	resp = postJSON(t, srv.URL+"/sessions", `{"lesson": "Nope"}`)
	resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Fatalf("unknown lesson status = %d", resp.StatusCode)
	}
}

func TestQuizFlow(t *testing.T) {
	srv := newTestServer(t)

	var created struct {
		SessionID string            `json:"session_id"`
		Total     int               `json:"total"`
		Current   quiz.QuestionView `json:"current"`
	}
	decode(t, postJSON(t, srv.URL+"/sessions", `{"lesson": "Capitals"}`), &created)
	if created.SessionID == "" || created.Total != 2 {
		t.Fatalf("created = %+v", created)
	}
	if created.Current.Position != 1 {
		t.Fatalf("first view = %+v", created.Current)
	}

	base := srv.URL + "/sessions/" + created.SessionID

	// walk both questions, answering as we go; the presentation order is
	// random, so answer by question type
	answerFor := func(view quiz.QuestionView) string {
		if view.Type == quiz.TypeIdentify {
			return " Rust "
		}
		return "0" // shuffling disabled, Paris stays at index 0
	}

	view := created.Current
	var next quiz.QuestionView
	decode(t, postJSON(t, base+"/next", `{"value": "`+answerFor(view)+`"}`), &next)
	if next.Position != 2 || next.HasNext {
		t.Fatalf("after next: %+v", next)
	}

	// next at the last question stays put
	var same quiz.QuestionView
	decode(t, postJSON(t, base+"/next", `{}`), &same)
	if same.Position != 2 {
		t.Fatalf("boundary next moved: %+v", same)
	}

	var sum quiz.ResultSummary
	decode(t, postJSON(t, base+"/submit", `{"value": "`+answerFor(next)+`"}`), &sum)
	if sum.Correct != 2 || sum.Percent != 100 {
		t.Fatalf("summary = %+v", sum)
	}

	// result is retrievable afterwards
	resp, err := http.Get(base + "/result")
	if err != nil {
		t.Fatal(err)
	}
	var again quiz.ResultSummary
	decode(t, resp, &again)
	if again.Correct != 2 {
		t.Fatalf("stored result = %+v", again)
	}

	// abandon
	req, _ := http.NewRequest(http.MethodDelete, base, nil)
	dresp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	dresp.Body.Close()
	if dresp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", dresp.StatusCode)
	}
	gresp, err := http.Get(base + "/current")
	if err != nil {
		t.Fatal(err)
	}
	gresp.Body.Close()
	if gresp.StatusCode != 404 {
		t.Fatalf("current after delete = %d", gresp.StatusCode)
	}
}

func TestCurrentNeverLeaksAnswerKey(t *testing.T) {
	srv := newTestServer(t)
	var created struct {
		SessionID string `json:"session_id"`
	}
	decode(t, postJSON(t, srv.URL+"/sessions", `{"lesson": "Capitals"}`), &created)

	resp, err := http.Get(srv.URL + "/sessions/" + created.SessionID + "/current")
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]interface{}
	decode(t, resp, &raw)
	for _, key := range []string{"answer_text", "correct", "correct_answer"} {
		if _, ok := raw[key]; ok {
			t.Fatalf("view leaks %q: %v", key, raw)
		}
	}
}
