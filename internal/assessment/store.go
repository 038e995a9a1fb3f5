package assessment

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrSessionCompleted = errors.New("session already completed")
)

// Store persists assessment content, sessions, responses and results.
type Store interface {
	PutTestType(ctx context.Context, t TestType) error
	ListTestTypes(ctx context.Context) ([]TestType, error)

	PutQuestion(ctx context.Context, q Question) error
	ListQuestions(ctx context.Context, testTypeID string) ([]Question, error)

	CreateSession(ctx context.Context, userID string, testTypes []string) (Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
	UpdateSession(ctx context.Context, s Session) error

	SaveResponses(ctx context.Context, sessionID string, responses []UserResponse) error
	ListResponses(ctx context.Context, sessionID string) ([]UserResponse, error)

	PutResult(ctx context.Context, r Result) error
	ListResults(ctx context.Context, sessionID string) ([]Result, error)
}

type memoryStore struct {
	mu        sync.RWMutex
	testTypes map[string]TestType
	questions map[string]Question
	sessions  map[string]Session
	responses map[string]map[string]UserResponse // sessionID -> questionID -> response
	results   map[string][]Result                // sessionID -> results
}

// NewInMemoryStore is used by tests and offline single-process runs.
func NewInMemoryStore() Store {
	return &memoryStore{
		testTypes: map[string]TestType{},
		questions: map[string]Question{},
		sessions:  map[string]Session{},
		responses: map[string]map[string]UserResponse{},
		results:   map[string][]Result{},
	}
}

func (m *memoryStore) PutTestType(_ context.Context, t TestType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.testTypes[t.ID] = t
	return nil
}

func (m *memoryStore) ListTestTypes(_ context.Context) ([]TestType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TestType, 0, len(m.testTypes))
	for _, t := range m.testTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) PutQuestion(_ context.Context, q Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions[q.ID] = q
	return nil
}

func (m *memoryStore) ListQuestions(_ context.Context, testTypeID string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Question
	for _, q := range m.questions {
		if q.TestTypeID == testTypeID && q.Active {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memoryStore) CreateSession(_ context.Context, userID string, testTypes []string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    SessionInProgress,
		TestTypes: append([]string(nil), testTypes...),
		StartedAt: time.Now().Unix(),
	}
	m.sessions[s.ID] = s
	m.responses[s.ID] = map[string]UserResponse{}
	return s, nil
}

func (m *memoryStore) GetSession(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) UpdateSession(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; !ok {
		return ErrNotFound
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memoryStore) SaveResponses(_ context.Context, sessionID string, responses []UserResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	if s.Status == SessionCompleted {
		return ErrSessionCompleted
	}
	byQ := m.responses[sessionID]
	now := time.Now().Unix()
	for _, r := range responses {
		r.SessionID = sessionID
		if r.CreatedAt == 0 {
			r.CreatedAt = now
		}
		byQ[r.QuestionID] = r // last write wins
	}
	return nil
}

func (m *memoryStore) ListResponses(_ context.Context, sessionID string) ([]UserResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	byQ, ok := m.responses[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]UserResponse, 0, len(byQ))
	for _, r := range byQ {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

func (m *memoryStore) PutResult(_ context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[r.SessionID] = append(m.results[r.SessionID], r)
	return nil
}

func (m *memoryStore) ListResults(_ context.Context, sessionID string) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Result(nil), m.results[sessionID]...), nil
}
