package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/venev-g/psychoassess/internal/scoring"
)

// Type classifies a recommendation.
type Type string

const (
	Career      Type = "career"
	Learning    Type = "learning"
	Development Type = "development"
	Strength    Type = "strength"
	Improvement Type = "improvement"
)

// Priority orders recommendations for presentation.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Difficulty tags how demanding a recommendation is to act on.
type Difficulty string

const (
	Easy        Difficulty = "easy"
	Moderate    Difficulty = "moderate"
	Challenging Difficulty = "challenging"
)

// Resource points at supporting material.
type Resource struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	URL           string `json:"url,omitempty"`
	Author        string `json:"author,omitempty"`
	Description   string `json:"description,omitempty"`
	EstimatedTime string `json:"estimated_time,omitempty"`
}

// Recommendation is one generated suggestion. Generated fresh per
// scoring run; never persisted as canonical state here.
type Recommendation struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	ActionItems []string   `json:"action_items,omitempty"`
	Resources   []Resource `json:"resources,omitempty"`
	Timeframe   string     `json:"timeframe,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
}

// Context carries optional caller preferences that filter the output.
type Context struct {
	// TimeAvailability "limited" drops challenging-difficulty items.
	TimeAvailability string `json:"time_availability,omitempty"`
	// CareerFocus keeps only career recommendations mentioning it.
	CareerFocus string `json:"career_focus,omitempty"`
}

// maxRecommendations caps one generation run.
const maxRecommendations = 12

// Engine derives typed recommendations from a score breakdown. The
// knowledge base and career matrix are built once and never mutated, so
// Generate is safe for concurrent use.
type Engine struct {
	kb      map[string]map[string]categoryContent
	careers []careerProfile
}

// NewEngine builds an engine with the built-in knowledge base.
func NewEngine() *Engine {
	return &Engine{kb: knowledgeBase, careers: careerMatrix}
}

// Generate inspects the breakdown for statistical strengths and
// development areas and emits a prioritized, deduplicated list. Missing
// knowledge-base entries yield a partial list, never an error. Inputs
// are not mutated.
func (e *Engine) Generate(b scoring.ScoreBreakdown, assessmentType string, ctx *Context) []Recommendation {
	if len(b.Categories) == 0 {
		return nil
	}

	mean := 0.0
	for _, cs := range b.Categories {
		mean += cs.Normalized
	}
	mean /= float64(len(b.Categories))

	strengths := pick(b, func(v float64) bool { return v >= maxF(70, mean+15) }, true, 3)
	weaknesses := pick(b, func(v float64) bool { return v <= minF(40, mean-15) }, false, 2)

	var out []Recommendation
	for _, cat := range strengths {
		c, ok := e.content(assessmentType, cat)
		if !ok {
			continue
		}
		if len(c.Careers) > 0 {
			out = append(out, Recommendation{
				ID:          uuid.NewString(),
				Type:        Career,
				Title:       fmt.Sprintf("Careers that build on %s", c.Name),
				Description: fmt.Sprintf("Your %s score is a clear strength. Well-matched careers: %s.", c.Name, strings.Join(c.Careers, ", ")),
				Priority:    High,
				Category:    cat,
				ActionItems: c.CareerActions,
				Resources:   c.Resources,
				Difficulty:  Moderate,
			})
		}
		out = append(out, Recommendation{
			ID:          uuid.NewString(),
			Type:        Strength,
			Title:       fmt.Sprintf("Advance your %s", c.Name),
			Description: fmt.Sprintf("You already score highly in %s; targeted practice can turn it into a differentiator.", c.Name),
			Priority:    Medium,
			Category:    cat,
			ActionItems: c.StrengthActions,
			Difficulty:  Challenging,
			Timeframe:   "3-6 months",
		})
	}

	for _, cat := range weaknesses {
		c, ok := e.content(assessmentType, cat)
		if !ok {
			continue
		}
		out = append(out, Recommendation{
			ID:          uuid.NewString(),
			Type:        Development,
			Title:       fmt.Sprintf("Build foundational %s skills", c.Name),
			Description: fmt.Sprintf("Your %s score trails the rest of your profile; small regular practice moves it fastest.", c.Name),
			Priority:    High,
			Category:    cat,
			ActionItems: c.DevelopmentActions,
			Difficulty:  Easy,
			Timeframe:   "1-3 months",
		})
	}

	if assessmentType == "vark" {
		out = append(out, e.learningStyles(b)...)
	}
	if assessmentType == "dominant-intelligence" {
		if r, ok := e.careerMatches(b); ok {
			out = append(out, r)
		}
	}

	out = dedupe(out)
	out = applyContext(out, ctx)
	sortRecommendations(out)
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

// learningStyles emits learning recommendations for the two strongest
// VARK modalities.
func (e *Engine) learningStyles(b scoring.ScoreBreakdown) []Recommendation {
	ranked := rankCategories(b, true)
	var out []Recommendation
	for i, cat := range ranked {
		if i >= 2 {
			break
		}
		c, ok := e.content("vark", cat)
		if !ok {
			continue
		}
		prio := High
		if i == 1 {
			prio = Medium
		}
		out = append(out, Recommendation{
			ID:          uuid.NewString(),
			Type:        Learning,
			Title:       fmt.Sprintf("Study the %s way", c.Name),
			Description: fmt.Sprintf("%s is among your strongest learning modalities; align your study habits with it.", c.Name),
			Priority:    prio,
			Category:    cat,
			ActionItems: c.StudyStrategies,
			Difficulty:  Easy,
		})
	}
	return out
}

// careerMatches scores the static career matrix against the user's
// intelligence profile and reports matches of 60 or better, top five.
func (e *Engine) careerMatches(b scoring.ScoreBreakdown) (Recommendation, bool) {
	type match struct {
		name  string
		score float64
	}
	var matches []match
	for _, cp := range e.careers {
		sum, wsum := 0.0, 0.0
		for cat, w := range cp.Weights {
			cs, ok := b.Categories[cat]
			if !ok {
				continue
			}
			sum += cs.Normalized * w
			wsum += w
		}
		if wsum == 0 {
			continue
		}
		if s := sum / wsum; s >= 60 {
			matches = append(matches, match{name: cp.Name, score: s})
		}
	}
	if len(matches) == 0 {
		return Recommendation{}, false
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].name < matches[j].name
	})
	if len(matches) > 5 {
		matches = matches[:5]
	}
	names := make([]string, len(matches))
	actions := make([]string, 0, len(matches))
	for i, m := range matches {
		names[i] = m.name
		actions = append(actions, fmt.Sprintf("Research a day in the life of a %s (match %.0f%%)", m.name, m.score))
	}
	return Recommendation{
		ID:          uuid.NewString(),
		Type:        Career,
		Title:       "Career paths matching your intelligence profile",
		Description: "Best overall fits across your profile: " + strings.Join(names, ", ") + ".",
		Priority:    High,
		Category:    "profile",
		ActionItems: actions,
		Difficulty:  Moderate,
	}, true
}

func (e *Engine) content(assessmentType, category string) (categoryContent, bool) {
	byCat, ok := e.kb[assessmentType]
	if !ok {
		return categoryContent{}, false
	}
	c, ok := byCat[strings.ToLower(category)]
	return c, ok
}

func pick(b scoring.ScoreBreakdown, keep func(float64) bool, desc bool, limit int) []string {
	cats := rankCategories(b, desc)
	var out []string
	for _, cat := range cats {
		if keep(b.Categories[cat].Normalized) {
			out = append(out, cat)
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

func rankCategories(b scoring.ScoreBreakdown, desc bool) []string {
	cats := make([]string, 0, len(b.Categories))
	for cat := range b.Categories {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		vi, vj := b.Categories[cats[i]].Normalized, b.Categories[cats[j]].Normalized
		if vi != vj {
			if desc {
				return vi > vj
			}
			return vi < vj
		}
		return cats[i] < cats[j]
	})
	return cats
}

func dedupe(recs []Recommendation) []Recommendation {
	seen := map[string]bool{}
	out := recs[:0]
	for _, r := range recs {
		k := string(r.Type) + "|" + r.Category + "|" + r.Title
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

func applyContext(recs []Recommendation, ctx *Context) []Recommendation {
	if ctx == nil {
		return recs
	}
	out := recs[:0]
	for _, r := range recs {
		if ctx.TimeAvailability == "limited" && r.Difficulty == Challenging {
			continue
		}
		if ctx.CareerFocus != "" && r.Type == Career &&
			!strings.Contains(strings.ToLower(r.Description), strings.ToLower(ctx.CareerFocus)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

var priorityRank = map[Priority]int{High: 0, Medium: 1, Low: 2}
var typeRank = map[Type]int{Career: 0, Development: 1, Learning: 2, Strength: 3, Improvement: 4}

func sortRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if priorityRank[recs[i].Priority] != priorityRank[recs[j].Priority] {
			return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
		}
		return typeRank[recs[i].Type] < typeRank[recs[j].Type]
	})
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
