package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/venev-g/psychoassess/internal/assessment"
)

// Algorithm selects how category scores are accumulated and aggregated.
type Algorithm string

const (
	WeightedSum    Algorithm = "weighted_sum"
	AverageScore   Algorithm = "average_score"
	FrequencyCount Algorithm = "frequency_count"
	PercentileRank Algorithm = "percentile_rank"
)

// Normalization selects the post-accumulation transform applied to each
// category's raw score.
type Normalization string

const (
	NormNone       Normalization = "none"
	NormPercentage Normalization = "percentage"
	NormZScore     Normalization = "z_score"
	NormPercentile Normalization = "percentile"
)

// Config is fixed at construction time.
type Config struct {
	Algorithm     Algorithm
	Normalization Normalization
	// Weights overrides question weights per category (optional).
	Weights map[string]float64
	// Categories restricts scoring to an explicit set (optional); when
	// empty, every distinct question category is scored.
	Categories []string
}

// CalculatedScore is one category's output.
type CalculatedScore struct {
	Category   string   `json:"category"`
	RawScore   float64  `json:"raw_score"`
	Normalized float64  `json:"normalized_score"`
	Percentile *float64 `json:"percentile,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Metadata describes one scoring run.
type Metadata struct {
	Algorithm             Algorithm `json:"algorithm"`
	QuestionCount         int       `json:"question_count"`
	ResponseCount         int       `json:"response_count"`
	CompletionRate        float64   `json:"completion_rate"`
	AverageResponseTimeMs *float64  `json:"average_response_time_ms,omitempty"`
}

// ScoreBreakdown is the full result of scoring one instrument.
type ScoreBreakdown struct {
	TotalScore float64                    `json:"total_score"`
	Categories map[string]CalculatedScore `json:"categories"`
	Metadata   Metadata                   `json:"metadata"`
}

// Calculator turns (question, response) pairs into a ScoreBreakdown.
// Pure: no I/O, safe for concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator validates the configuration. Invalid enum values are
// programmer errors and are rejected here, never during scoring.
func NewCalculator(cfg Config) (*Calculator, error) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = WeightedSum
	}
	if cfg.Normalization == "" {
		cfg.Normalization = NormNone
	}
	switch cfg.Algorithm {
	case WeightedSum, AverageScore, FrequencyCount, PercentileRank:
	default:
		return nil, fmt.Errorf("scoring: unknown algorithm %q", cfg.Algorithm)
	}
	switch cfg.Normalization {
	case NormNone, NormPercentage, NormZScore, NormPercentile:
	default:
		return nil, fmt.Errorf("scoring: unknown normalization %q", cfg.Normalization)
	}
	return &Calculator{cfg: cfg}, nil
}

// Calculate scores the supplied responses against the supplied questions.
// Responses referencing unknown questions are skipped, not errors;
// partial assessments are an expected case.
func (c *Calculator) Calculate(responses []assessment.UserResponse, questions []assessment.Question) ScoreBreakdown {
	byID := make(map[string]assessment.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	categories := c.cfg.Categories
	if len(categories) == 0 {
		seen := map[string]bool{}
		for _, q := range questions {
			if q.Category != "" && !seen[q.Category] {
				seen[q.Category] = true
				categories = append(categories, q.Category)
			}
		}
		sort.Strings(categories)
	}

	scores := make(map[string]CalculatedScore, len(categories))
	for _, cat := range categories {
		scores[cat] = CalculatedScore{Category: cat}
	}

	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok {
			continue
		}
		cs, ok := scores[q.Category]
		if !ok {
			continue // category not in the active set
		}
		cs.RawScore += Contribution(q, r.Value) * c.effectiveWeight(q)
		scores[q.Category] = cs
	}

	c.normalize(scores, questions)

	total := 0.0
	for _, cs := range scores {
		total += cs.Normalized
	}
	if c.cfg.Algorithm == AverageScore && len(scores) > 0 {
		total /= float64(len(scores))
	}

	return ScoreBreakdown{
		TotalScore: total,
		Categories: scores,
		Metadata:   c.metadata(responses, questions),
	}
}

func (c *Calculator) effectiveWeight(q assessment.Question) float64 {
	if w, ok := c.cfg.Weights[q.Category]; ok {
		return w
	}
	return q.EffectiveWeight()
}

func (c *Calculator) normalize(scores map[string]CalculatedScore, questions []assessment.Question) {
	switch c.cfg.Normalization {
	case NormNone:
		for cat, cs := range scores {
			cs.Normalized = cs.RawScore
			scores[cat] = cs
		}
	case NormPercentage:
		maxByCat := map[string]float64{}
		for _, q := range questions {
			maxByCat[q.Category] += MaxContribution(q) * c.effectiveWeight(q)
		}
		for cat, cs := range scores {
			if max := maxByCat[cat]; max > 0 {
				cs.Normalized = math.Round(cs.RawScore / max * 100)
			}
			scores[cat] = cs
		}
	case NormZScore:
		mean, std := meanStd(rawValues(scores))
		for cat, cs := range scores {
			if std > 0 {
				cs.Normalized = (cs.RawScore - mean) / std
			}
			scores[cat] = cs
		}
	case NormPercentile:
		raws := rawValues(scores)
		sort.Float64s(raws)
		for cat, cs := range scores {
			cs.Normalized = percentileOf(cs.RawScore, raws)
			scores[cat] = cs
		}
	}
}

func (c *Calculator) metadata(responses []assessment.UserResponse, questions []assessment.Question) Metadata {
	m := Metadata{
		Algorithm:     c.cfg.Algorithm,
		QuestionCount: len(questions),
		ResponseCount: len(responses),
	}
	if m.QuestionCount > 0 {
		m.CompletionRate = math.Round(float64(m.ResponseCount) / float64(m.QuestionCount) * 100)
	}
	sum, n := 0.0, 0
	for _, r := range responses {
		if r.ResponseTimeMs > 0 {
			sum += float64(r.ResponseTimeMs)
			n++
		}
	}
	if n > 0 {
		avg := sum / float64(n)
		m.AverageResponseTimeMs = &avg
	}
	return m
}

// Contribution extracts the numeric contribution of a response value for
// a question's type. Malformed values contribute 0.
func Contribution(q assessment.Question, value interface{}) float64 {
	switch q.Type {
	case assessment.RatingScale:
		v, _ := ToFloat(value)
		return v
	case assessment.YesNo:
		if b, ok := value.(bool); ok && b {
			return 1
		}
		return 0
	case assessment.MultipleChoice:
		if idx := OptionIndex(q.Options, value); idx >= 0 {
			v, _ := ToFloat(q.Options[idx].Value)
			return v
		}
		return 0
	case assessment.MultiSelect:
		return float64(len(ToSlice(value)))
	case assessment.Ranking:
		// Score the top-ranked choice by its position in the authored
		// option order (earlier options are more indicative). Bounded
		// by the option count.
		items := ToSlice(value)
		if len(items) == 0 {
			items = []interface{}{value}
		}
		if idx := OptionIndex(q.Options, items[0]); idx >= 0 {
			return float64(len(q.Options) - idx)
		}
		return 0
	case assessment.Slider:
		v, _ := ToFloat(value)
		return v / 100
	default:
		return 0
	}
}

// MaxContribution is the highest contribution a single response to q can
// produce, used by percentage normalization.
func MaxContribution(q assessment.Question) float64 {
	switch q.Type {
	case assessment.RatingScale:
		return 5
	case assessment.YesNo:
		return 1
	case assessment.MultipleChoice:
		max := 0.0
		for _, o := range q.Options {
			if v, ok := ToFloat(o.Value); ok && v > max {
				max = v
			}
		}
		return max
	case assessment.MultiSelect, assessment.Ranking:
		return float64(len(q.Options))
	default: // slider and unrecognized types
		return 1
	}
}

// ToFloat coerces numeric response values. JSON decoding yields float64;
// in-process callers may pass ints.
func ToFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// ToSlice flattens array-valued responses.
func ToSlice(v interface{}) []interface{} {
	switch t := v.(type) {
	case []interface{}:
		return t
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// OptionIndex finds the option whose value equals v, or -1.
func OptionIndex(options []assessment.Option, v interface{}) int {
	for i, o := range options {
		if ValueEqual(o.Value, v) {
			return i
		}
	}
	return -1
}

// ValueEqual compares option/response values, treating numeric types as
// interchangeable.
func ValueEqual(a, b interface{}) bool {
	if fa, ok := ToFloat(a); ok {
		if fb, ok := ToFloat(b); ok {
			return fa == fb
		}
		return false
	}
	sa, ok := a.(string)
	if !ok {
		return false
	}
	sb, ok := b.(string)
	return ok && sa == sb
}

func rawValues(scores map[string]CalculatedScore) []float64 {
	out := make([]float64, 0, len(scores))
	for _, cs := range scores {
		out = append(out, cs.RawScore)
	}
	return out
}

func meanStd(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	varSum := 0.0
	for _, v := range vals {
		varSum += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(varSum / float64(len(vals)))
}

// percentileOf ranks raw among the sorted run values, first-match on ties.
func percentileOf(raw float64, sorted []float64) float64 {
	n := len(sorted)
	if n <= 1 {
		return 50
	}
	idx := 0
	for i, v := range sorted {
		if v >= raw {
			idx = i
			break
		}
	}
	return math.Round(float64(idx) / float64(n-1) * 100)
}
