package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/eventlog"
	"github.com/venev-g/psychoassess/internal/norms"
	"github.com/venev-g/psychoassess/internal/recommend"
	_ "github.com/venev-g/psychoassess/internal/strategies/dominantintelligence"
	_ "github.com/venev-g/psychoassess/internal/strategies/personality"
	_ "github.com/venev-g/psychoassess/internal/strategies/vark"
)

type fakeSink struct{ events []eventlog.Event }

func (f *fakeSink) Append(_ context.Context, e eventlog.Event) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeSink) types() []string {
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Type
	}
	return out
}

func newService(t *testing.T, battery []string) (*Service, assessment.Store, *fakeSink) {
	t.Helper()
	store := assessment.NewInMemoryStore()
	sink := &fakeSink{}
	svc := New(store, norms.DefaultEngine(), recommend.NewEngine(), sink, battery)
	return svc, store, sink
}

func seedIntelligenceQuestions(t *testing.T, store assessment.Store) {
	t.Helper()
	ctx := context.Background()
	cats := map[string]string{
		"q1": "logical-mathematical",
		"q2": "spatial",
		"q3": "linguistic",
	}
	for id, cat := range cats {
		err := store.PutQuestion(ctx, assessment.Question{
			ID:         id,
			TestTypeID: "dominant-intelligence",
			Text:       "q " + id,
			Type:       assessment.RatingScale,
			Category:   cat,
			Weight:     1.0,
			Active:     true,
		})
		if err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}
}

func TestStart_RejectsUnknownInstrument(t *testing.T) {
	svc, _, _ := newService(t, nil)
	_, err := svc.Start(context.Background(), "u1", []string{"tarot"})
	if !errors.Is(err, ErrUnknownTestType) {
		t.Fatalf("err = %v, want ErrUnknownTestType", err)
	}
}

func TestStart_DefaultBatteryAndEvent(t *testing.T) {
	svc, _, sink := newService(t, []string{"dominant-intelligence", "vark"})
	sess, err := svc.Start(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(sess.TestTypes) != 2 || sess.TestTypes[0] != "dominant-intelligence" {
		t.Errorf("test types = %v, want default battery", sess.TestTypes)
	}
	if sess.Status != assessment.SessionInProgress {
		t.Errorf("status = %q, want in_progress", sess.Status)
	}
	if got := sink.types(); len(got) != 1 || got[0] != eventlog.SessionStarted {
		t.Errorf("events = %v, want [SessionStarted]", got)
	}
}

func TestSaveResponses_RejectsInvalidBatch(t *testing.T) {
	svc, store, _ := newService(t, []string{"dominant-intelligence"})
	seedIntelligenceQuestions(t, store)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "u1", nil)

	err := svc.SaveResponses(ctx, sess.ID, []assessment.UserResponse{
		{SessionID: sess.ID, QuestionID: "q1", Value: 5.0},
		{SessionID: sess.ID, QuestionID: "q2", Value: 9.0}, // out of the 1-5 range
	})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	saved, _ := store.ListResponses(ctx, sess.ID)
	if len(saved) != 0 {
		t.Errorf("saved %d responses, want 0: an invalid batch must not be partially applied", len(saved))
	}
}

func TestSaveResponses_RejectsForeignQuestion(t *testing.T) {
	svc, store, _ := newService(t, []string{"dominant-intelligence"})
	seedIntelligenceQuestions(t, store)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "u1", nil)

	err := svc.SaveResponses(ctx, sess.ID, []assessment.UserResponse{
		{SessionID: sess.ID, QuestionID: "nope", Value: 3.0},
	})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestCompleteInstrument_AdvancesAndPersists(t *testing.T) {
	svc, store, sink := newService(t, []string{"dominant-intelligence", "vark"})
	seedIntelligenceQuestions(t, store)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "u1", nil)

	err := svc.SaveResponses(ctx, sess.ID, []assessment.UserResponse{
		{SessionID: sess.ID, QuestionID: "q1", Value: 5.0},
		{SessionID: sess.ID, QuestionID: "q2", Value: 3.0},
		{SessionID: sess.ID, QuestionID: "q3", Value: 4.0},
	})
	if err != nil {
		t.Fatalf("SaveResponses: %v", err)
	}

	out, err := svc.CompleteInstrument(ctx, sess.ID, nil)
	if err != nil {
		t.Fatalf("CompleteInstrument: %v", err)
	}
	if out.TestType != "dominant-intelligence" {
		t.Errorf("test type = %q", out.TestType)
	}
	if out.SessionStatus != assessment.SessionInProgress {
		t.Errorf("session status = %q, want in_progress with one instrument left", out.SessionStatus)
	}
	if out.Scores.NormalizedScores["logicalMathematical"] != 42 {
		t.Errorf("logicalMathematical = %v, want 42", out.Scores.NormalizedScores["logicalMathematical"])
	}
	if out.Scores.Recommendations.PrimaryIntelligence == nil {
		t.Error("expected a primary intelligence in the instrument recommendations")
	}

	after, _ := store.GetSession(ctx, sess.ID)
	if after.CurrentIndex != 1 {
		t.Errorf("current index = %d, want 1", after.CurrentIndex)
	}

	results, err := svc.Results(ctx, sess.ID)
	if err != nil || len(results) != 1 {
		t.Fatalf("results = %v (err %v), want exactly one", results, err)
	}
	var persisted struct {
		Instrument struct {
			PrimaryIntelligence *struct {
				Type string `json:"type"`
			} `json:"primaryIntelligence"`
		} `json:"instrument"`
	}
	if err := json.Unmarshal([]byte(results[0].RecommendationsJSON), &persisted); err != nil {
		t.Fatalf("recommendations json: %v", err)
	}
	if persisted.Instrument.PrimaryIntelligence == nil ||
		persisted.Instrument.PrimaryIntelligence.Type != "logicalMathematical" {
		t.Errorf("persisted primary = %+v, want logicalMathematical", persisted.Instrument.PrimaryIntelligence)
	}

	want := []string{eventlog.SessionStarted, eventlog.InstrumentScored}
	if got := sink.types(); len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestCompleteInstrument_FinalInstrumentCompletesSession(t *testing.T) {
	svc, store, sink := newService(t, []string{"dominant-intelligence"})
	seedIntelligenceQuestions(t, store)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "u1", nil)

	_ = svc.SaveResponses(ctx, sess.ID, []assessment.UserResponse{
		{SessionID: sess.ID, QuestionID: "q1", Value: 4.0},
	})
	out, err := svc.CompleteInstrument(ctx, sess.ID, nil)
	if err != nil {
		t.Fatalf("CompleteInstrument: %v", err)
	}
	if out.SessionStatus != assessment.SessionCompleted {
		t.Errorf("session status = %q, want completed", out.SessionStatus)
	}

	// The session is done: no further saves or completions.
	if err := svc.SaveResponses(ctx, sess.ID, nil); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("SaveResponses after completion = %v, want ErrSessionCompleted", err)
	}
	if _, err := svc.CompleteInstrument(ctx, sess.ID, nil); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("CompleteInstrument after completion = %v, want ErrSessionCompleted", err)
	}

	got := sink.types()
	if len(got) != 3 || got[2] != eventlog.SessionCompleted {
		t.Errorf("events = %v, want SessionCompleted last", got)
	}

	after, _ := store.GetSession(ctx, sess.ID)
	if after.CompletedAt == 0 {
		t.Error("completed_at not set")
	}
}

func TestCompleteInstrument_FullMarksNormalizeHigh(t *testing.T) {
	svc, store, _ := newService(t, []string{"dominant-intelligence"})
	ctx := context.Background()
	err := store.PutQuestion(ctx, assessment.Question{
		ID:         "q1",
		TestTypeID: "dominant-intelligence",
		Text:       "q q1",
		Type:       assessment.RatingScale,
		Category:   "logical-mathematical",
		Weight:     1.0,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("seed question: %v", err)
	}
	sess, _ := svc.Start(ctx, "u1", nil)

	// Maximum rating on every item: the percentage-scale score is 100,
	// which must land at the top of the reference population, not be
	// compared as a raw sum of 5.
	err = svc.SaveResponses(ctx, sess.ID, []assessment.UserResponse{
		{SessionID: sess.ID, QuestionID: "q1", Value: 5.0},
	})
	if err != nil {
		t.Fatalf("SaveResponses: %v", err)
	}
	out, err := svc.CompleteInstrument(ctx, sess.ID, nil)
	if err != nil {
		t.Fatalf("CompleteInstrument: %v", err)
	}

	cs := out.Breakdown.Categories["logical-mathematical"]
	if cs.RawScore != 5 || cs.Normalized != 100 {
		t.Fatalf("breakdown raw=%v normalized=%v, want 5 and 100", cs.RawScore, cs.Normalized)
	}
	nr, ok := out.Normalized["logical-mathematical"]
	if !ok {
		t.Fatal("expected a normalized view for logical-mathematical")
	}
	if nr.Percentile != 95 {
		t.Errorf("percentile = %v, want 95 (top of the reference table)", nr.Percentile)
	}
	if nr.Interpretation != "Very High (Top 9%)" {
		t.Errorf("interpretation = %q, want Very High (Top 9%%)", nr.Interpretation)
	}
}

func TestCompleteInstrument_EmptyResponses(t *testing.T) {
	svc, store, _ := newService(t, []string{"dominant-intelligence"})
	seedIntelligenceQuestions(t, store)
	ctx := context.Background()
	sess, _ := svc.Start(ctx, "u1", nil)

	out, err := svc.CompleteInstrument(ctx, sess.ID, nil)
	if err != nil {
		t.Fatalf("CompleteInstrument with no responses: %v", err)
	}
	for dim, v := range out.Scores.NormalizedScores {
		if v != 0 {
			t.Errorf("normalized[%s] = %v, want 0", dim, v)
		}
	}
	if out.Breakdown.Metadata.ResponseCount != 0 {
		t.Errorf("response count = %d, want 0", out.Breakdown.Metadata.ResponseCount)
	}
}

func TestResults_UnknownSession(t *testing.T) {
	svc, _, _ := newService(t, nil)
	if _, err := svc.Results(context.Background(), "missing"); !errors.Is(err, assessment.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
