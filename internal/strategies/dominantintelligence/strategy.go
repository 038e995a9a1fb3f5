// Package dominantintelligence scores the Multiple-Intelligence
// instrument across Gardner's eight intelligences.
package dominantintelligence

import (
	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/strategies"
)

const Slug = "dominant-intelligence"

func init() { strategies.Register(strategy{}) }

var dimensions = []string{
	"linguistic",
	"logicalMathematical",
	"spatial",
	"bodilyKinesthetic",
	"musical",
	"interpersonal",
	"intrapersonal",
	"naturalistic",
}

// categorySynonyms maps free-text question categories (lowercased) to
// dimension keys.
var categorySynonyms = map[string]string{
	"linguistic":           "linguistic",
	"verbal-linguistic":    "linguistic",
	"verbal":               "linguistic",
	"language":             "linguistic",
	"logical-mathematical": "logicalMathematical",
	"logical mathematical": "logicalMathematical",
	"logical":              "logicalMathematical",
	"mathematical":         "logicalMathematical",
	"spatial":              "spatial",
	"visual-spatial":       "spatial",
	"bodily-kinesthetic":   "bodilyKinesthetic",
	"kinesthetic":          "bodilyKinesthetic",
	"bodily":               "bodilyKinesthetic",
	"musical":              "musical",
	"musical-rhythmic":     "musical",
	"interpersonal":        "interpersonal",
	"social":               "interpersonal",
	"intrapersonal":        "intrapersonal",
	"self":                 "intrapersonal",
	"naturalistic":         "naturalistic",
	"naturalist":           "naturalistic",
	"nature":               "naturalistic",
}

type strategy struct{}

func (strategy) Slug() string         { return Slug }
func (strategy) Dimensions() []string { return dimensions }

func (strategy) CalculateScores(responses []assessment.UserResponse, questions []assessment.Question) map[string]float64 {
	return strategies.Accumulate(dimensions, func(cat string) (string, bool) {
		return strategies.MapCategory(categorySynonyms, cat)
	}, responses, questions)
}

func (strategy) ValidateResponse(q assessment.Question, value interface{}) bool {
	switch q.Type {
	case assessment.RatingScale:
		return strategies.ValidateRating(value, 1, 5)
	case assessment.YesNo:
		_, ok := value.(bool)
		return ok
	case assessment.MultipleChoice:
		return strategies.ValidateChoice(q, value)
	case assessment.MultiSelect, assessment.Ranking:
		return strategies.ValidateMultiSelect(q, value)
	case assessment.Slider:
		return strategies.ValidateRating(value, 0, 100)
	default:
		return false
	}
}

func (strategy) GenerateRecommendations(scores map[string]float64) strategies.Recommendations {
	ranked := strategies.Rank(scores)
	if len(ranked) == 0 {
		return strategies.Recommendations{}
	}

	rec := strategies.Recommendations{}
	top := ranked[0]
	if c, ok := content[top.Key]; ok {
		rec.PrimaryIntelligence = &strategies.Profile{
			Type:        top.Key,
			Name:        c.Name,
			Score:       top.Score,
			Description: c.Description,
		}
		rec.Careers = append(rec.Careers, c.Careers...)
		rec.StudyStrategies = append(rec.StudyStrategies, c.StudyStrategies...)
	}

	for _, r := range ranked[1:min(3, len(ranked))] {
		if c, ok := content[r.Key]; ok {
			rec.Secondary = append(rec.Secondary, strategies.Profile{
				Type:        r.Key,
				Name:        c.Name,
				Score:       r.Score,
				Description: c.Description,
			})
		}
	}

	// Development suggestions for the two lowest-scoring intelligences.
	for i := len(ranked) - 1; i >= 0 && i >= len(ranked)-2; i-- {
		if c, ok := content[ranked[i].Key]; ok {
			rec.Development = append(rec.Development, strategies.DimensionSuggestions{
				Dimension:   ranked[i].Key,
				Suggestions: c.Development,
			})
		}
	}
	return rec
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
