package quiz

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore keeps sessions in a sessions table, one JSON-encoded session per
// row, so multiple service instances can share attempts. Works against both
// sqlite and postgres through database/sql.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutSession(sess *Session) error {
	body, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO sessions (id,lesson,status,session_json,created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET lesson=EXCLUDED.lesson, status=EXCLUDED.status, session_json=EXCLUDED.session_json`,
		sess.ID, sess.Lesson, sess.Status, string(body), time.Now().Unix())
	return err
}

func (s *SQLStore) GetSession(id string) (*Session, error) {
	row := s.db.QueryRow(`SELECT session_json FROM sessions WHERE id=$1`, id)
	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(body), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SQLStore) save(sess *Session) error {
	body, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	var submittedAt *int64
	if sess.Status == StatusSubmitted {
		now := time.Now().Unix()
		submittedAt = &now
	}
	_, err = s.db.Exec(`UPDATE sessions SET status=$1, session_json=$2, submitted_at=COALESCE(submitted_at,$3) WHERE id=$4`,
		sess.Status, string(body), submittedAt, sess.ID)
	return err
}

func (s *SQLStore) Current(id string) (QuestionView, error) {
	sess, err := s.GetSession(id)
	if err != nil {
		return QuestionView{}, err
	}
	return sess.Current(), nil
}

func (s *SQLStore) RecordAnswer(id, value string) (QuestionView, error) {
	sess, err := s.GetSession(id)
	if err != nil {
		return QuestionView{}, err
	}
	sess.Record(sess.Pos, value)
	if err := s.save(sess); err != nil {
		return QuestionView{}, err
	}
	return sess.Current(), nil
}

func (s *SQLStore) Navigate(id string, delta int, value *string) (QuestionView, error) {
	sess, err := s.GetSession(id)
	if err != nil {
		return QuestionView{}, err
	}
	sess.RecordCurrent(value)
	if delta > 0 {
		sess.Next()
	} else if delta < 0 {
		sess.Prev()
	}
	if err := s.save(sess); err != nil {
		return QuestionView{}, err
	}
	return sess.Current(), nil
}

func (s *SQLStore) Submit(id string, value *string) (ResultSummary, error) {
	sess, err := s.GetSession(id)
	if err != nil {
		return ResultSummary{}, err
	}
	sess.RecordCurrent(value)
	sum := Score(sess)
	sess.Status = StatusSubmitted
	sess.Summary = &sum
	if err := s.save(sess); err != nil {
		return ResultSummary{}, err
	}
	return sum, nil
}

func (s *SQLStore) Result(id string) (ResultSummary, error) {
	sess, err := s.GetSession(id)
	if err != nil {
		return ResultSummary{}, err
	}
	if sess.Summary == nil {
		return ResultSummary{}, errors.New("session not submitted")
	}
	return *sess.Summary, nil
}

func (s *SQLStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
