package quiz

import (
	"errors"
	"sync"
)

// ErrSessionNotFound is returned for operations on an unknown or discarded
// session id.
var ErrSessionNotFound = errors.New("session not found")

// Store mediates all session mutation. Sessions are user-paced and mutated
// serially per attempt; implementations only need to keep concurrent requests
// for different sessions from tripping over shared structures.
//
// Navigation and submit accept an optional in-flight answer so the client's
// current selection is committed before the cursor moves or scoring runs,
// mirroring a UI that saves on navigation.
type Store interface {
	PutSession(s *Session) error
	GetSession(id string) (*Session, error)
	Current(id string) (QuestionView, error)
	RecordAnswer(id, value string) (QuestionView, error)
	Navigate(id string, delta int, value *string) (QuestionView, error)
	Submit(id string, value *string) (ResultSummary, error)
	Result(id string) (ResultSummary, error)
	Delete(id string) error
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemoryStore returns the default in-process store. Sessions live until
// deleted; abandoning one is just dropping its id.
func NewMemoryStore() Store {
	return &memoryStore{sessions: map[string]*Session{}}
}

func (m *memoryStore) PutSession(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memoryStore) GetSession(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *memoryStore) Current(id string) (QuestionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return QuestionView{}, ErrSessionNotFound
	}
	return s.Current(), nil
}

func (m *memoryStore) RecordAnswer(id, value string) (QuestionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return QuestionView{}, ErrSessionNotFound
	}
	s.Record(s.Pos, value)
	return s.Current(), nil
}

func (m *memoryStore) Navigate(id string, delta int, value *string) (QuestionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return QuestionView{}, ErrSessionNotFound
	}
	s.RecordCurrent(value)
	if delta > 0 {
		s.Next()
	} else if delta < 0 {
		s.Prev()
	}
	return s.Current(), nil
}

func (m *memoryStore) Submit(id string, value *string) (ResultSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ResultSummary{}, ErrSessionNotFound
	}
	s.RecordCurrent(value)
	sum := Score(s)
	s.Status = StatusSubmitted
	s.Summary = &sum
	return sum, nil
}

func (m *memoryStore) Result(id string) (ResultSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ResultSummary{}, ErrSessionNotFound
	}
	if s.Summary == nil {
		return ResultSummary{}, errors.New("session not submitted")
	}
	return *s.Summary, nil
}

func (m *memoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}
