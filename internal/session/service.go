// Package session sequences assessment instruments within one user
// session and persists scoring outcomes. All I/O happens here; the
// scoring pipeline itself stays pure.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/eventlog"
	"github.com/venev-g/psychoassess/internal/norms"
	"github.com/venev-g/psychoassess/internal/recommend"
	"github.com/venev-g/psychoassess/internal/scoring"
	"github.com/venev-g/psychoassess/internal/strategies"
)

var (
	ErrUnknownTestType  = errors.New("unknown test type")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrSessionCompleted = assessment.ErrSessionCompleted
)

// EventSink decouples the service from the eventlog implementation; nil
// sinks are allowed (tests, offline runs without a DB).
type EventSink interface {
	Append(ctx context.Context, e eventlog.Event) error
}

// Service drives sessions end to end.
type Service struct {
	store   assessment.Store
	norms   *norms.Engine
	rec     *recommend.Engine
	events  EventSink
	battery []string
}

// New wires a service. battery is the default instrument sequence used
// when callers do not pick their own.
func New(store assessment.Store, normsEngine *norms.Engine, recEngine *recommend.Engine, events EventSink, battery []string) *Service {
	return &Service{
		store:   store,
		norms:   normsEngine,
		rec:     recEngine,
		events:  events,
		battery: battery,
	}
}

// Start creates a session over the requested instruments (default
// battery when none given). Every slug must have a registered strategy.
func (s *Service) Start(ctx context.Context, userID string, testTypes []string) (assessment.Session, error) {
	if len(testTypes) == 0 {
		testTypes = s.battery
	}
	for _, slug := range testTypes {
		if _, ok := strategies.Lookup(slug); !ok {
			return assessment.Session{}, fmt.Errorf("%w: %s", ErrUnknownTestType, slug)
		}
	}
	sess, err := s.store.CreateSession(ctx, userID, testTypes)
	if err != nil {
		return assessment.Session{}, err
	}
	s.emit(ctx, eventlog.SessionStarted, sess.ID, map[string]interface{}{"user_id": userID, "test_types": testTypes})
	return sess, nil
}

// CurrentQuestions returns the active questions of the instrument the
// session is currently on.
func (s *Service) CurrentQuestions(ctx context.Context, sessionID string) ([]assessment.Question, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	slug, ok := sess.CurrentTestType()
	if !ok {
		return nil, nil
	}
	return s.store.ListQuestions(ctx, slug)
}

// SaveResponses validates each response against its question via the
// current instrument's strategy and persists the valid set. A single
// invalid response rejects the whole batch so the caller can fix it.
func (s *Service) SaveResponses(ctx context.Context, sessionID string, responses []assessment.UserResponse) error {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	slug, ok := sess.CurrentTestType()
	if !ok {
		return ErrSessionCompleted
	}
	strat, ok := strategies.Lookup(slug)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTestType, slug)
	}
	questions, err := s.store.ListQuestions(ctx, slug)
	if err != nil {
		return err
	}
	byID := make(map[string]assessment.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok {
			return fmt.Errorf("%w: question %s not in current instrument", ErrInvalidResponse, r.QuestionID)
		}
		if !strat.ValidateResponse(q, r.Value) {
			return fmt.Errorf("%w: question %s", ErrInvalidResponse, r.QuestionID)
		}
	}
	return s.store.SaveResponses(ctx, sessionID, responses)
}

// InstrumentOutcome is the full scored output for one instrument.
type InstrumentOutcome struct {
	TestType        string                     `json:"test_type"`
	Scores          strategies.ProcessResult   `json:"scores"`
	Breakdown       scoring.ScoreBreakdown     `json:"breakdown"`
	Normalized      map[string]norms.Result    `json:"normalized,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	SessionStatus   string                     `json:"session_status"`
}

// CompleteInstrument scores the session's current instrument, persists
// the result, and advances to the next instrument (or completes the
// session). Partial response sets are scored as-is.
func (s *Service) CompleteInstrument(ctx context.Context, sessionID string, recCtx *recommend.Context) (InstrumentOutcome, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return InstrumentOutcome{}, err
	}
	slug, ok := sess.CurrentTestType()
	if !ok {
		return InstrumentOutcome{}, ErrSessionCompleted
	}
	strat, ok := strategies.Lookup(slug)
	if !ok {
		return InstrumentOutcome{}, fmt.Errorf("%w: %s", ErrUnknownTestType, slug)
	}

	questions, err := s.store.ListQuestions(ctx, slug)
	if err != nil {
		return InstrumentOutcome{}, err
	}
	all, err := s.store.ListResponses(ctx, sessionID)
	if err != nil {
		return InstrumentOutcome{}, err
	}
	byID := make(map[string]bool, len(questions))
	for _, q := range questions {
		byID[q.ID] = true
	}
	var responses []assessment.UserResponse
	for _, r := range all {
		if byID[r.QuestionID] {
			responses = append(responses, r)
		}
	}

	// Instrument pipeline: dimension scores + recommendations.
	proc := strategies.Process(strat, responses, questions)

	// Per-category percentage breakdown feeds the general recommender.
	calc, err := scoring.NewCalculator(scoring.Config{
		Algorithm:     scoring.WeightedSum,
		Normalization: scoring.NormPercentage,
	})
	if err != nil {
		return InstrumentOutcome{}, err
	}
	breakdown := calc.Calculate(responses, questions)

	// Reference-normalized view of each category, when norms exist. The
	// reference tables are on the percentage scale, so they compare
	// against the percentage-mode score, not the raw sum.
	var normalized map[string]norms.Result
	if s.norms != nil {
		normalized = make(map[string]norms.Result, len(breakdown.Categories))
		for cat, cs := range breakdown.Categories {
			normalized[cat] = s.norms.Normalize(cs.Normalized, cat, norms.Options{Method: norms.Percentile})
		}
	}

	recs := s.rec.Generate(breakdown, slug, recCtx)

	outcome := InstrumentOutcome{
		TestType:        slug,
		Scores:          proc,
		Breakdown:       breakdown,
		Normalized:      normalized,
		Recommendations: recs,
	}
	if err := s.persist(ctx, &sess, outcome); err != nil {
		return InstrumentOutcome{}, err
	}
	outcome.SessionStatus = sess.Status
	return outcome, nil
}

func (s *Service) persist(ctx context.Context, sess *assessment.Session, o InstrumentOutcome) error {
	scoresJSON, err := json.Marshal(o.Scores)
	if err != nil {
		return err
	}
	breakdownJSON, err := json.Marshal(o.Breakdown)
	if err != nil {
		return err
	}
	recsJSON, err := json.Marshal(struct {
		Instrument strategies.Recommendations `json:"instrument"`
		General    []recommend.Recommendation `json:"general"`
	}{o.Scores.Recommendations, o.Recommendations})
	if err != nil {
		return err
	}
	res := assessment.Result{
		ID:                  uuid.NewString(),
		SessionID:           sess.ID,
		TestType:            o.TestType,
		ScoresJSON:          string(scoresJSON),
		BreakdownJSON:       string(breakdownJSON),
		RecommendationsJSON: string(recsJSON),
		CreatedAt:           time.Now().Unix(),
	}
	if err := s.store.PutResult(ctx, res); err != nil {
		return err
	}
	s.emit(ctx, eventlog.InstrumentScored, sess.ID, map[string]interface{}{"test_type": o.TestType, "total": o.Breakdown.TotalScore})

	sess.CurrentIndex++
	if sess.CurrentIndex >= len(sess.TestTypes) {
		sess.Status = assessment.SessionCompleted
		sess.CompletedAt = time.Now().Unix()
		s.emit(ctx, eventlog.SessionCompleted, sess.ID, nil)
	}
	return s.store.UpdateSession(ctx, *sess)
}

// Results lists every persisted result for the session.
func (s *Service) Results(ctx context.Context, sessionID string) ([]assessment.Result, error) {
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.store.ListResults(ctx, sessionID)
}

func (s *Service) emit(ctx context.Context, typ, key string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	payload := "{}"
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			payload = string(b)
		}
	}
	// Event logging is best effort and never fails a scoring run.
	_ = s.events.Append(ctx, eventlog.Event{Type: typ, Key: key, DataJSON: payload})
}
