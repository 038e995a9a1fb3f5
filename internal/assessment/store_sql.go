package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SQLStore persists to sqlite or postgres via database/sql.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) PutTestType(ctx context.Context, t TestType) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO test_types (id,name,description,active) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, description=EXCLUDED.description, active=EXCLUDED.active`,
		t.ID, t.Name, t.Description, t.Active)
	return err
}

func (s *SQLStore) ListTestTypes(ctx context.Context) ([]TestType, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,description,active FROM test_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TestType
	for rows.Next() {
		var t TestType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Active); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutQuestion(ctx context.Context, q Question) error {
	oj, err := json.Marshal(q.Options)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO questions (id,test_type_id,text,type,category,subcategory,options_json,weight,active,ord)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (id) DO UPDATE SET text=EXCLUDED.text, type=EXCLUDED.type, category=EXCLUDED.category,
		   subcategory=EXCLUDED.subcategory, options_json=EXCLUDED.options_json, weight=EXCLUDED.weight,
		   active=EXCLUDED.active, ord=EXCLUDED.ord`,
		q.ID, q.TestTypeID, q.Text, string(q.Type), q.Category, q.Subcategory, string(oj), q.Weight, q.Active, q.Order)
	return err
}

func (s *SQLStore) ListQuestions(ctx context.Context, testTypeID string) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,test_type_id,text,type,category,subcategory,options_json,weight,active,ord
		 FROM questions WHERE test_type_id=$1 AND active=TRUE ORDER BY ord`, testTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Question
	for rows.Next() {
		var q Question
		var typ, oj string
		if err := rows.Scan(&q.ID, &q.TestTypeID, &q.Text, &typ, &q.Category, &q.Subcategory, &oj, &q.Weight, &q.Active, &q.Order); err != nil {
			return nil, err
		}
		q.Type = QuestionType(typ)
		if oj != "" {
			if err := json.Unmarshal([]byte(oj), &q.Options); err != nil {
				return nil, err
			}
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateSession(ctx context.Context, userID string, testTypes []string) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    SessionInProgress,
		TestTypes: append([]string(nil), testTypes...),
		StartedAt: time.Now().Unix(),
	}
	tj, err := json.Marshal(sess.TestTypes)
	if err != nil {
		return Session{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id,user_id,status,test_types_json,current_index,started_at)
		 VALUES ($1,$2,$3,$4,0,$5)`,
		sess.ID, sess.UserID, sess.Status, string(tj), sess.StartedAt)
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) GetSession(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,user_id,status,test_types_json,current_index,started_at,COALESCE(completed_at,0)
		 FROM sessions WHERE id=$1`, id)
	var sess Session
	var tj string
	if err := row.Scan(&sess.ID, &sess.UserID, &sess.Status, &tj, &sess.CurrentIndex, &sess.StartedAt, &sess.CompletedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(tj), &sess.TestTypes); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) UpdateSession(ctx context.Context, sess Session) error {
	var completed interface{}
	if sess.CompletedAt > 0 {
		completed = sess.CompletedAt
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status=$1, current_index=$2, completed_at=$3 WHERE id=$4`,
		sess.Status, sess.CurrentIndex, completed, sess.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) SaveResponses(ctx context.Context, sessionID string, responses []UserResponse) error {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status == SessionCompleted {
		return ErrSessionCompleted
	}
	// One transaction per batch: either every response lands or none do.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, r := range responses {
		vj, err := json.Marshal(r.Value)
		if err != nil {
			return err
		}
		created := r.CreatedAt
		if created == 0 {
			created = now
		}
		// last write wins per question per session
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO responses (session_id,question_id,value_json,response_time_ms,created_at)
			 VALUES ($1,$2,$3,$4,$5)
			 ON CONFLICT (session_id,question_id) DO UPDATE SET value_json=EXCLUDED.value_json,
			   response_time_ms=EXCLUDED.response_time_ms, created_at=EXCLUDED.created_at`,
			sessionID, r.QuestionID, string(vj), r.ResponseTimeMs, created); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLStore) ListResponses(ctx context.Context, sessionID string) ([]UserResponse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id,question_id,value_json,response_time_ms,created_at
		 FROM responses WHERE session_id=$1 ORDER BY question_id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UserResponse
	for rows.Next() {
		var r UserResponse
		var vj string
		if err := rows.Scan(&r.SessionID, &r.QuestionID, &vj, &r.ResponseTimeMs, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(vj), &r.Value); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (id,session_id,test_type,scores_json,breakdown_json,recommendations_json,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		r.ID, r.SessionID, r.TestType, r.ScoresJSON, r.BreakdownJSON, r.RecommendationsJSON, r.CreatedAt)
	return err
}

func (s *SQLStore) ListResults(ctx context.Context, sessionID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,session_id,test_type,scores_json,breakdown_json,recommendations_json,created_at
		 FROM results WHERE session_id=$1 ORDER BY created_at`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.SessionID, &r.TestType, &r.ScoresJSON, &r.BreakdownJSON, &r.RecommendationsJSON, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
