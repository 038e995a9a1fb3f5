package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/venev-g/psychoassess/internal/assessment"
)

func q(id, category string, typ assessment.QuestionType, weight float64, options ...assessment.Option) assessment.Question {
	return assessment.Question{
		ID:         id,
		TestTypeID: "tt",
		Text:       "q " + id,
		Type:       typ,
		Category:   category,
		Options:    options,
		Weight:     weight,
		Active:     true,
	}
}

func resp(qid string, value interface{}) assessment.UserResponse {
	return assessment.UserResponse{SessionID: "s1", QuestionID: qid, Value: value}
}

func mustCalculator(t *testing.T, cfg Config) *Calculator {
	t.Helper()
	c, err := NewCalculator(cfg)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return c
}

func TestNewCalculator_RejectsBadConfig(t *testing.T) {
	if _, err := NewCalculator(Config{Algorithm: "bogus"}); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if _, err := NewCalculator(Config{Normalization: "bogus"}); err == nil {
		t.Fatal("expected error for unknown normalization")
	}
}

func TestCalculate_OrderIndependent(t *testing.T) {
	questions := []assessment.Question{
		q("q1", "a", assessment.RatingScale, 1),
		q("q2", "b", assessment.RatingScale, 2),
		q("q3", "a", assessment.YesNo, 1),
	}
	responses := []assessment.UserResponse{
		resp("q1", 4.0),
		resp("q2", 3.0),
		resp("q3", true),
	}
	reversed := []assessment.UserResponse{responses[2], responses[1], responses[0]}

	c := mustCalculator(t, Config{Algorithm: WeightedSum, Normalization: NormNone})
	a := c.Calculate(responses, questions)
	b := c.Calculate(reversed, questions)
	if !reflect.DeepEqual(a.Categories, b.Categories) {
		t.Fatalf("order changed result: %+v vs %+v", a.Categories, b.Categories)
	}
	if a.Categories["a"].RawScore != 5 { // 4*1 + 1*1
		t.Errorf("category a raw = %v, want 5", a.Categories["a"].RawScore)
	}
	if a.Categories["b"].RawScore != 6 { // 3*2
		t.Errorf("category b raw = %v, want 6", a.Categories["b"].RawScore)
	}
}

func TestCalculate_SkipsUnknownAndMalformed(t *testing.T) {
	questions := []assessment.Question{q("q1", "a", assessment.RatingScale, 1)}
	responses := []assessment.UserResponse{
		resp("missing", 5.0),      // unknown question
		resp("q1", "not-numeric"), // malformed: contributes 0
	}
	c := mustCalculator(t, Config{})
	b := c.Calculate(responses, questions)
	if b.Categories["a"].RawScore != 0 {
		t.Errorf("raw = %v, want 0", b.Categories["a"].RawScore)
	}
}

func TestCalculate_ContributionsPerType(t *testing.T) {
	mc := q("mc", "a", assessment.MultipleChoice, 1,
		assessment.Option{Text: "low", Value: 1.0},
		assessment.Option{Text: "high", Value: 3.0})
	ms := q("ms", "a", assessment.MultiSelect, 1,
		assessment.Option{Text: "x", Value: "x"},
		assessment.Option{Text: "y", Value: "y"},
		assessment.Option{Text: "z", Value: "z"})
	sl := q("sl", "a", assessment.Slider, 1)
	rk := q("rk", "a", assessment.Ranking, 1,
		assessment.Option{Text: "first", Value: "f"},
		assessment.Option{Text: "second", Value: "s"},
		assessment.Option{Text: "third", Value: "t"})

	cases := []struct {
		name  string
		q     assessment.Question
		value interface{}
		want  float64
	}{
		{"mc matches option value", mc, 3.0, 3},
		{"mc no match", mc, 9.0, 0},
		{"multiselect counts items", ms, []interface{}{"x", "z"}, 2},
		{"slider scales to unit", sl, 80.0, 0.8},
		{"ranking scores top choice position", rk, []interface{}{"f", "s", "t"}, 3},
		{"ranking later option scores lower", rk, []interface{}{"t"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contribution(tc.q, tc.value); got != tc.want {
				t.Errorf("Contribution = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculate_PercentageBounds(t *testing.T) {
	questions := []assessment.Question{
		q("q1", "a", assessment.RatingScale, 1),
		q("q2", "a", assessment.RatingScale, 1),
	}
	c := mustCalculator(t, Config{Normalization: NormPercentage})

	full := c.Calculate([]assessment.UserResponse{resp("q1", 5.0), resp("q2", 5.0)}, questions)
	if full.Categories["a"].Normalized != 100 {
		t.Errorf("all-max normalized = %v, want 100", full.Categories["a"].Normalized)
	}

	half := c.Calculate([]assessment.UserResponse{resp("q1", 5.0)}, questions)
	if got := half.Categories["a"].Normalized; got != 50 {
		t.Errorf("half normalized = %v, want 50", got)
	}
	if half.Categories["a"].Normalized < 0 {
		t.Error("normalized must be non-negative")
	}
}

func TestCalculate_ZScoreZeroVariance(t *testing.T) {
	questions := []assessment.Question{
		q("q1", "a", assessment.RatingScale, 1),
		q("q2", "b", assessment.RatingScale, 1),
	}
	responses := []assessment.UserResponse{resp("q1", 3.0), resp("q2", 3.0)}
	c := mustCalculator(t, Config{Normalization: NormZScore})
	b := c.Calculate(responses, questions)
	for cat, cs := range b.Categories {
		if cs.Normalized != 0 {
			t.Errorf("category %s z = %v, want 0 for zero variance", cat, cs.Normalized)
		}
	}
}

func TestCalculate_PercentileRanksRun(t *testing.T) {
	questions := []assessment.Question{
		q("q1", "a", assessment.RatingScale, 1),
		q("q2", "b", assessment.RatingScale, 1),
		q("q3", "c", assessment.RatingScale, 1),
	}
	responses := []assessment.UserResponse{resp("q1", 1.0), resp("q2", 3.0), resp("q3", 5.0)}
	c := mustCalculator(t, Config{Normalization: NormPercentile})
	b := c.Calculate(responses, questions)
	if b.Categories["a"].Normalized != 0 || b.Categories["b"].Normalized != 50 || b.Categories["c"].Normalized != 100 {
		t.Errorf("percentiles = %v/%v/%v, want 0/50/100",
			b.Categories["a"].Normalized, b.Categories["b"].Normalized, b.Categories["c"].Normalized)
	}
}

func TestCalculate_EmptyResponses(t *testing.T) {
	questions := []assessment.Question{
		q("q1", "a", assessment.RatingScale, 1),
		q("q2", "b", assessment.RatingScale, 1),
	}
	c := mustCalculator(t, Config{Normalization: NormPercentage})
	b := c.Calculate(nil, questions)
	if b.Metadata.ResponseCount != 0 {
		t.Errorf("response count = %d, want 0", b.Metadata.ResponseCount)
	}
	if b.Metadata.CompletionRate != 0 {
		t.Errorf("completion rate = %v, want 0", b.Metadata.CompletionRate)
	}
	for cat, cs := range b.Categories {
		if cs.Normalized != 0 {
			t.Errorf("category %s normalized = %v, want 0", cat, cs.Normalized)
		}
	}
}

func TestCalculate_Metadata(t *testing.T) {
	questions := []assessment.Question{
		q("q1", "a", assessment.RatingScale, 1),
		q("q2", "a", assessment.RatingScale, 1),
		q("q3", "a", assessment.RatingScale, 1),
		q("q4", "a", assessment.RatingScale, 1),
	}
	responses := []assessment.UserResponse{
		{SessionID: "s", QuestionID: "q1", Value: 5.0, ResponseTimeMs: 1000},
		{SessionID: "s", QuestionID: "q2", Value: 4.0, ResponseTimeMs: 3000},
		{SessionID: "s", QuestionID: "q3", Value: 3.0},
	}
	c := mustCalculator(t, Config{})
	b := c.Calculate(responses, questions)
	if b.Metadata.CompletionRate != 75 {
		t.Errorf("completion rate = %v, want 75", b.Metadata.CompletionRate)
	}
	if b.Metadata.AverageResponseTimeMs == nil || *b.Metadata.AverageResponseTimeMs != 2000 {
		t.Errorf("avg response time = %v, want 2000", b.Metadata.AverageResponseTimeMs)
	}
}

func TestCalculate_AverageScoreTotal(t *testing.T) {
	questions := []assessment.Question{
		q("q1", "a", assessment.RatingScale, 1),
		q("q2", "b", assessment.RatingScale, 1),
	}
	responses := []assessment.UserResponse{resp("q1", 2.0), resp("q2", 4.0)}
	c := mustCalculator(t, Config{Algorithm: AverageScore, Normalization: NormNone})
	b := c.Calculate(responses, questions)
	if math.Abs(b.TotalScore-3) > 1e-9 {
		t.Errorf("total = %v, want 3 (mean of 2 and 4)", b.TotalScore)
	}
}

func TestCalculate_CategoryWeightOverride(t *testing.T) {
	questions := []assessment.Question{q("q1", "a", assessment.RatingScale, 2)}
	responses := []assessment.UserResponse{resp("q1", 3.0)}
	c := mustCalculator(t, Config{Weights: map[string]float64{"a": 10}})
	b := c.Calculate(responses, questions)
	if b.Categories["a"].RawScore != 30 {
		t.Errorf("raw = %v, want 30 (override beats question weight)", b.Categories["a"].RawScore)
	}
}
