// Package personality scores the DISC-style personality-pattern
// instrument across four behavioral dimensions.
package personality

import (
	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/strategies"
)

const Slug = "personality-pattern"

// combinedThreshold: a second dimension scoring within this fraction of
// the top one produces a combined two-dimension profile.
const combinedThreshold = 0.8

func init() { strategies.Register(strategy{}) }

var dimensions = []string{"dominance", "influence", "steadiness", "conscientiousness"}

var categorySynonyms = map[string]string{
	"dominance":         "dominance",
	"dominant":          "dominance",
	"d":                 "dominance",
	"drive":             "dominance",
	"influence":         "influence",
	"influential":       "influence",
	"i":                 "influence",
	"inspiring":         "influence",
	"steadiness":        "steadiness",
	"steady":            "steadiness",
	"s":                 "steadiness",
	"supportive":        "steadiness",
	"conscientiousness": "conscientiousness",
	"conscientious":     "conscientiousness",
	"c":                 "conscientiousness",
	"compliance":        "conscientiousness",
	"cautious":          "conscientiousness",
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
		// DISC items use a 1-4 forced-choice scale.
		return strategies.ValidateRating(value, 1, 4)
	case assessment.YesNo:
		_, ok := value.(bool)
		return ok
	case assessment.MultipleChoice:
		return strategies.ValidateChoice(q, value)
	case assessment.MultiSelect, assessment.Ranking:
		return strategies.ValidateMultiSelect(q, value)
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
		rec.PrimaryStyle = &strategies.Profile{
			Type:        top.Key,
			Name:        c.Name,
			Score:       top.Score,
			Description: c.Description,
		}
		rec.Careers = append(rec.Careers, c.Careers...)
		rec.StudyStrategies = append(rec.StudyStrategies, c.WorkStrategies...)
	}

	// Combined two-dimension profile when the runner-up is close enough.
	if len(ranked) > 1 && top.Score > 0 && ranked[1].Score >= top.Score*combinedThreshold {
		second := ranked[1]
		if c, ok := combinedContent[top.Key+"+"+second.Key]; ok {
			rec.CombinedStyle = &strategies.Profile{
				Type:        top.Key + "+" + second.Key,
				Name:        c.Name,
				Score:       second.Score,
				Description: c.Description,
			}
		}
	}

	for _, r := range ranked[1:] {
		if c, ok := content[r.Key]; ok {
			rec.Secondary = append(rec.Secondary, strategies.Profile{
				Type:        r.Key,
				Name:        c.Name,
				Score:       r.Score,
				Description: c.Description,
			})
		}
	}

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
