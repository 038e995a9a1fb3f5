// Package vark scores the VARK learning-style instrument. Unlike the
// other instruments, choice questions attribute scores through each
// selected option's own category tag, so one response can contribute to
// several modalities at once.
package vark

import (
	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/scoring"
	"github.com/venev-g/psychoassess/internal/strategies"
)

const Slug = "vark"

func init() { strategies.Register(strategy{}) }

var dimensions = []string{"visual", "auditory", "readingWriting", "kinesthetic"}

// optionTags maps per-option category tags (lowercased) to modality keys.
var optionTags = map[string]string{
	"v":               "visual",
	"visual":          "visual",
	"a":               "auditory",
	"aural":           "auditory",
	"auditory":        "auditory",
	"r":               "readingWriting",
	"read":            "readingWriting",
	"reading":         "readingWriting",
	"read_write":      "readingWriting",
	"reading_writing": "readingWriting",
	"reading-writing": "readingWriting",
	"k":               "kinesthetic",
	"kinesthetic":     "kinesthetic",
}

type strategy struct{}

func (strategy) Slug() string         { return Slug }
func (strategy) Dimensions() []string { return dimensions }

func (strategy) CalculateScores(responses []assessment.UserResponse, questions []assessment.Question) map[string]float64 {
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
		switch q.Type {
		case assessment.MultipleChoice, assessment.MultiSelect, assessment.Ranking:
			// Each selected option increments its own modality.
			items := scoring.ToSlice(r.Value)
			if items == nil {
				items = []interface{}{r.Value}
			}
			for _, it := range items {
				idx := scoring.OptionIndex(q.Options, it)
				if idx < 0 {
					continue
				}
				if dim, ok := strategies.MapCategory(optionTags, q.Options[idx].Category); ok {
					scores[dim] += q.EffectiveWeight()
				}
			}
		default:
			// Rating and slider items fall back to the question's own
			// category, like the other instruments.
			if dim, ok := strategies.MapCategory(optionTags, q.Category); ok {
				scores[dim] += scoring.Contribution(q, r.Value) * q.EffectiveWeight()
			}
		}
	}
	return scores
}

func (strategy) ValidateResponse(q assessment.Question, value interface{}) bool {
	switch q.Type {
	case assessment.MultipleChoice:
		return strategies.ValidateChoice(q, value)
	case assessment.MultiSelect, assessment.Ranking:
		return strategies.ValidateMultiSelect(q, value)
	case assessment.RatingScale:
		return strategies.ValidateRating(value, 1, 5)
	case assessment.Slider:
		return strategies.ValidateRating(value, 0, 100)
	case assessment.YesNo:
		_, ok := value.(bool)
		return ok
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
		rec.PrimaryModality = &strategies.Profile{
			Type:        top.Key,
			Name:        c.Name,
			Score:       top.Score,
			Description: c.Description,
		}
		rec.StudyStrategies = append(rec.StudyStrategies, c.StudyStrategies...)
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
