package strategies

import (
	"math"
	"sort"
	"strings"

	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/scoring"
)

// Strategy is one assessment instrument: it maps question categories to
// its internal dimensions, extracts per-response contributions, and
// turns final scores into an instrument-specific recommendation bundle.
// Implementations are stateless and safe for concurrent use.
type Strategy interface {
	Slug() string
	// Dimensions lists the instrument's fixed dimension keys.
	Dimensions() []string
	// CalculateScores accumulates weighted contributions per dimension.
	CalculateScores(responses []assessment.UserResponse, questions []assessment.Question) map[string]float64
	// GenerateRecommendations interprets final (normalized) scores.
	GenerateRecommendations(scores map[string]float64) Recommendations
	// ValidateResponse type-checks a response against the question's
	// declared type; returns false instead of erroring on mismatch.
	ValidateResponse(q assessment.Question, value interface{}) bool
}

// Profile describes one dimension in a recommendation bundle.
type Profile struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// DimensionSuggestions carries development advice for one low-scoring
// dimension.
type DimensionSuggestions struct {
	Dimension   string   `json:"dimension"`
	Suggestions []string `json:"suggestions"`
}

// Recommendations is the structured bundle every strategy produces.
// Which primary field is set depends on the instrument.
type Recommendations struct {
	PrimaryIntelligence *Profile               `json:"primaryIntelligence,omitempty"`
	PrimaryStyle        *Profile               `json:"primaryStyle,omitempty"`
	CombinedStyle       *Profile               `json:"combinedStyle,omitempty"`
	PrimaryModality     *Profile               `json:"primaryModality,omitempty"`
	Secondary           []Profile              `json:"secondary,omitempty"`
	Careers             []string               `json:"careers,omitempty"`
	StudyStrategies     []string               `json:"studyStrategies,omitempty"`
	Development         []DimensionSuggestions `json:"development,omitempty"`
}

// ProcessResult is the outcome of a full ProcessAssessment run.
type ProcessResult struct {
	RawScores        map[string]float64 `json:"raw_scores"`
	NormalizedScores map[string]float64 `json:"normalized_scores"`
	Recommendations  Recommendations    `json:"recommendations"`
}

// Process runs the common pipeline: accumulate raw dimension scores,
// normalize each dimension to its share of the total as a rounded
// percentage (0 when the total is 0), then generate recommendations
// from the normalized scores.
func Process(s Strategy, responses []assessment.UserResponse, questions []assessment.Question) ProcessResult {
	raw := s.CalculateScores(responses, questions)
	norm := ShareOfTotal(raw)
	return ProcessResult{
		RawScores:        raw,
		NormalizedScores: norm,
		Recommendations:  s.GenerateRecommendations(norm),
	}
}

// ShareOfTotal converts dimension scores to rounded percentages of the
// grand total.
func ShareOfTotal(scores map[string]float64) map[string]float64 {
	total := 0.0
	for _, v := range scores {
		total += v
	}
	out := make(map[string]float64, len(scores))
	for k, v := range scores {
		if total > 0 {
			out[k] = math.Round(v / total * 100)
		} else {
			out[k] = 0
		}
	}
	return out
}

// Accumulate folds responses into dimension totals using a category
// mapper and the calculator's per-type contribution extraction. Shared
// by the intelligence and personality strategies; VARK overrides
// extraction because its option tags drive dimension attribution.
func Accumulate(dimensions []string, mapCategory func(string) (string, bool),
	responses []assessment.UserResponse, questions []assessment.Question) map[string]float64 {

	scores := make(map[string]float64, len(dimensions))
	for _, d := range dimensions {
		scores[d] = 0
	}
	byID := make(map[string]assessment.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok {
			continue
		}
		dim, ok := mapCategory(q.Category)
		if !ok {
			continue // unmapped categories are ignored
		}
		scores[dim] += scoring.Contribution(q, r.Value) * q.EffectiveWeight()
	}
	return scores
}

// MapCategory resolves a free-text question category against a synonym
// table, case-insensitively.
func MapCategory(synonyms map[string]string, category string) (string, bool) {
	dim, ok := synonyms[strings.ToLower(strings.TrimSpace(category))]
	return dim, ok
}

// RankedDimension pairs a dimension key with its score for sorting.
type RankedDimension struct {
	Key   string
	Score float64
}

// Rank sorts dimensions descending by score with a stable key tiebreak.
func Rank(scores map[string]float64) []RankedDimension {
	out := make([]RankedDimension, 0, len(scores))
	for k, v := range scores {
		out = append(out, RankedDimension{Key: k, Score: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ValidateRating accepts numeric values within [min, max].
func ValidateRating(value interface{}, min, max float64) bool {
	v, ok := scoring.ToFloat(value)
	return ok && v >= min && v <= max
}

// ValidateChoice accepts values matching one of the question's options.
func ValidateChoice(q assessment.Question, value interface{}) bool {
	return scoring.OptionIndex(q.Options, value) >= 0
}

// ValidateMultiSelect accepts non-empty arrays whose every element is a
// declared option.
func ValidateMultiSelect(q assessment.Question, value interface{}) bool {
	items := scoring.ToSlice(value)
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if scoring.OptionIndex(q.Options, it) < 0 {
			return false
		}
	}
	return true
}
