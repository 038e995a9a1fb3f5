package norms

import (
	"fmt"
	"math"
	"sort"
)

// Method selects the standardization applied to a raw score.
type Method string

const (
	Percentage Method = "percentage"
	ZScore     Method = "z_score"
	Percentile Method = "percentile"
	Sten       Method = "sten"
	TScore     Method = "t_score"
)

// Options qualifies a normalization request. Population, AgeGroup and
// Gender are optional refinements; when the requested sub-table does not
// exist the engine falls back to the category-level table.
type Options struct {
	Method     Method
	Population string
	AgeGroup   string
	Gender     string
}

// GroupStats is the statistical shape shared by category tables and
// their age/gender sub-tables. Percentiles maps percentile rank (0-100)
// to the raw score at that rank and must be monotonically increasing in
// raw score.
type GroupStats struct {
	Mean        float64         `json:"mean"`
	StdDev      float64         `json:"std_dev"`
	SampleSize  int             `json:"sample_size"`
	Percentiles map[int]float64 `json:"percentiles,omitempty"`
}

// NormativeData is the reference table for one category.
type NormativeData struct {
	Category     string                `json:"category"`
	Population   string                `json:"population"`
	SampleSize   int                   `json:"sample_size"`
	Mean         float64               `json:"mean"`
	StdDev       float64               `json:"std_dev"`
	Percentiles  map[int]float64       `json:"percentiles,omitempty"`
	AgeGroups    map[string]GroupStats `json:"age_groups,omitempty"`
	GenderGroups map[string]GroupStats `json:"gender_groups,omitempty"`
}

// Interval is a two-sided confidence interval.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Result is a best-effort normalization outcome; always populated, even
// when no reference data exists for the category.
type Result struct {
	RawScore           float64   `json:"raw_score"`
	NormalizedScore    float64   `json:"normalized_score"`
	Percentile         float64   `json:"percentile"`
	Method             Method    `json:"method"`
	Interpretation     string    `json:"interpretation"`
	ComparisonGroup    string    `json:"comparison_group"`
	ConfidenceInterval *Interval `json:"confidence_interval,omitempty"`
}

// Engine normalizes raw scores against injected reference tables.
// Tables are added before first use and never mutated afterwards, so
// Normalize is safe for concurrent use.
type Engine struct {
	data     map[string]NormativeData
	maxScore map[string]float64
}

// NewEngine returns an engine with no reference data; Normalize degrades
// to the bounded-percentage heuristic until tables are added.
func NewEngine() *Engine {
	return &Engine{
		data:     map[string]NormativeData{},
		maxScore: map[string]float64{},
	}
}

// AddNormativeData registers a reference table. A population-qualified
// key is kept alongside the bare category key so callers can request a
// specific norming population.
func (e *Engine) AddNormativeData(d NormativeData) {
	e.data[d.Category] = d
	if d.Population != "" {
		e.data[d.Population+":"+d.Category] = d
	}
}

// SetMaxScore configures the per-category maximum used by the percentage
// method. Categories without an entry assume 100.
func (e *Engine) SetMaxScore(category string, max float64) {
	if max > 0 {
		e.maxScore[category] = max
	}
}

// AvailableCategories lists every category with registered data.
func (e *Engine) AvailableCategories() []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range e.data {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Normalize converts a raw score into the requested standardized score.
// Never errors: with no reference data it returns the clamped-percentage
// heuristic against an estimated general population.
func (e *Engine) Normalize(raw float64, category string, opts Options) Result {
	stats, label, ok := e.resolve(category, opts)
	if !ok {
		return fallbackResult(raw, opts.Method)
	}

	res := Result{
		RawScore:        raw,
		Method:          opts.Method,
		ComparisonGroup: label,
	}

	z := 0.0
	if stats.StdDev > 0 {
		z = (raw - stats.Mean) / stats.StdDev
	}
	res.Percentile = e.percentileFor(raw, z, stats)

	switch opts.Method {
	case Percentage:
		max := e.maxScore[category]
		if max <= 0 {
			max = 100
		}
		res.NormalizedScore = math.Round(raw / max * 100)
		res.Interpretation = interpretPercentile(res.Percentile)
	case ZScore:
		res.NormalizedScore = round2(z)
		res.Interpretation = interpretZ(z)
		if stats.SampleSize > 0 {
			margin := 1.96 / math.Sqrt(float64(stats.SampleSize))
			res.ConfidenceInterval = &Interval{Lower: round2(z - margin), Upper: round2(z + margin)}
		}
	case Percentile:
		res.NormalizedScore = res.Percentile
		res.Interpretation = interpretPercentile(res.Percentile)
	case Sten:
		sten := math.Round(z*2 + 5.5)
		if sten < 1 {
			sten = 1
		}
		if sten > 10 {
			sten = 10
		}
		res.NormalizedScore = sten
		res.Interpretation = interpretSten(int(sten))
	case TScore:
		res.NormalizedScore = math.Round(z*10 + 50)
		res.Interpretation = interpretT(res.NormalizedScore)
	default:
		res.NormalizedScore = raw
		res.Interpretation = interpretPercentile(res.Percentile)
	}
	return res
}

// resolve finds reference stats for the category, descending into
// age/gender sub-tables when requested and present.
func (e *Engine) resolve(category string, opts Options) (GroupStats, string, bool) {
	d, ok := e.data[opts.Population+":"+category]
	if !ok {
		d, ok = e.data[category]
	}
	if !ok {
		return GroupStats{}, "", false
	}

	pop := d.Population
	if pop == "" {
		pop = "General Population"
	}

	if opts.AgeGroup != "" {
		if g, ok := d.AgeGroups[opts.AgeGroup]; ok {
			label := fmt.Sprintf("%s, ages %s (n=%d)", pop, opts.AgeGroup, g.SampleSize)
			return g, label, true
		}
	}
	if opts.Gender != "" {
		if g, ok := d.GenderGroups[opts.Gender]; ok {
			label := fmt.Sprintf("%s, %s (n=%d)", pop, opts.Gender, g.SampleSize)
			return g, label, true
		}
	}
	return GroupStats{
		Mean:        d.Mean,
		StdDev:      d.StdDev,
		SampleSize:  d.SampleSize,
		Percentiles: d.Percentiles,
	}, fmt.Sprintf("%s (n=%d)", pop, d.SampleSize), true
}

// percentileFor prefers the reference percentile table, interpolating
// between the bracketing entries; with no table it approximates via the
// normal CDF of the z-score.
func (e *Engine) percentileFor(raw, z float64, stats GroupStats) float64 {
	if len(stats.Percentiles) == 0 {
		return clampF(normalCDF(z)*100, 0.1, 99.9)
	}
	ranks := make([]int, 0, len(stats.Percentiles))
	for p := range stats.Percentiles {
		ranks = append(ranks, p)
	}
	sort.Ints(ranks)

	prevRank, prevScore := ranks[0], stats.Percentiles[ranks[0]]
	if raw <= prevScore {
		return float64(prevRank)
	}
	for _, rank := range ranks[1:] {
		score := stats.Percentiles[rank]
		if raw <= score {
			if score == prevScore {
				return float64(rank)
			}
			frac := (raw - prevScore) / (score - prevScore)
			return float64(prevRank) + frac*float64(rank-prevRank)
		}
		prevRank, prevScore = rank, score
	}
	return float64(prevRank)
}

// fallbackResult is the bounded-percentage heuristic used when no
// reference data exists for a category.
func fallbackResult(raw float64, method Method) Result {
	v := clampF(raw, 0, 100)
	return Result{
		RawScore:        raw,
		NormalizedScore: v,
		Percentile:      v,
		Method:          method,
		Interpretation:  interpretFallback(v),
		ComparisonGroup: "General Population (Estimated)",
	}
}

// normalCDF approximates the standard normal CDF (Abramowitz & Stegun
// 26.2.17 via the complementary error function).
func normalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
