package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizdeck/quizdeck/internal/bank"
)

// ListLessonsHandler returns the lesson names and question counts so a
// client can populate its lesson selector.
func ListLessonsHandler(b *bank.Bank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Lessons []bank.LessonInfo `json:"lessons"`
		}{Lessons: b.Lessons()})
	}
}
