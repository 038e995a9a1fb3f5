package norms

import (
	"math"
	"testing"
)

func testEngine() *Engine {
	e := NewEngine()
	e.AddNormativeData(NormativeData{
		Category:   "spatial",
		Population: "General Adult",
		SampleSize: 400,
		Mean:       50,
		StdDev:     10,
		Percentiles: map[int]float64{
			10: 37, 25: 43, 50: 50, 75: 57, 90: 63,
		},
		AgeGroups: map[string]GroupStats{
			"18-25": {Mean: 55, StdDev: 10, SampleSize: 120},
		},
		GenderGroups: map[string]GroupStats{
			"female": {Mean: 52, StdDev: 9, SampleSize: 200},
		},
	})
	return e
}

func TestNormalize_FallbackWithoutData(t *testing.T) {
	e := NewEngine()
	res := e.Normalize(55, "unknown-category", Options{Method: Percentage})
	if res.NormalizedScore != 55 {
		t.Errorf("normalized = %v, want 55", res.NormalizedScore)
	}
	if res.Percentile != 55 {
		t.Errorf("percentile = %v, want 55", res.Percentile)
	}
	if res.Interpretation != "Average" {
		t.Errorf("interpretation = %q, want Average", res.Interpretation)
	}
	if res.ComparisonGroup != "General Population (Estimated)" {
		t.Errorf("comparison group = %q", res.ComparisonGroup)
	}
}

func TestNormalize_FallbackClamps(t *testing.T) {
	e := NewEngine()
	if res := e.Normalize(250, "x", Options{Method: Percentile}); res.NormalizedScore != 100 {
		t.Errorf("normalized = %v, want clamp to 100", res.NormalizedScore)
	}
	if res := e.Normalize(-10, "x", Options{Method: Percentile}); res.NormalizedScore != 0 {
		t.Errorf("normalized = %v, want clamp to 0", res.NormalizedScore)
	}
}

func TestNormalize_ZScore(t *testing.T) {
	e := testEngine()
	res := e.Normalize(65, "spatial", Options{Method: ZScore})
	if res.NormalizedScore != 1.5 {
		t.Errorf("z = %v, want 1.5", res.NormalizedScore)
	}
	if res.Interpretation != "Very High (+1.5 SD)" {
		t.Errorf("interpretation = %q", res.Interpretation)
	}
	if res.ConfidenceInterval == nil {
		t.Fatal("expected confidence interval")
	}
	margin := 1.96 / math.Sqrt(400)
	if got := res.ConfidenceInterval.Upper - res.ConfidenceInterval.Lower; math.Abs(got-2*round2(margin)) > 0.02 {
		t.Errorf("interval width = %v, want ~%v", got, 2*margin)
	}
}

func TestNormalize_StenClamp(t *testing.T) {
	e := testEngine()
	for _, raw := range []float64{-1000, -50, 0, 50, 120, 1000} {
		res := e.Normalize(raw, "spatial", Options{Method: Sten})
		s := res.NormalizedScore
		if s < 1 || s > 10 || s != math.Trunc(s) {
			t.Errorf("sten(%v) = %v, want integer in [1,10]", raw, s)
		}
	}
	if res := e.Normalize(1000, "spatial", Options{Method: Sten}); res.NormalizedScore != 10 {
		t.Errorf("extreme high sten = %v, want 10", res.NormalizedScore)
	}
	if res := e.Normalize(-1000, "spatial", Options{Method: Sten}); res.NormalizedScore != 1 {
		t.Errorf("extreme low sten = %v, want 1", res.NormalizedScore)
	}
}

func TestNormalize_TScore(t *testing.T) {
	e := testEngine()
	res := e.Normalize(70, "spatial", Options{Method: TScore})
	if res.NormalizedScore != 70 { // z=2 -> 2*10+50
		t.Errorf("t = %v, want 70", res.NormalizedScore)
	}
	if res.Interpretation != "Very High" {
		t.Errorf("interpretation = %q", res.Interpretation)
	}
}

func TestNormalize_PercentileInterpolation(t *testing.T) {
	e := testEngine()
	// 53.5 sits halfway between p50 (50) and p75 (57).
	res := e.Normalize(53.5, "spatial", Options{Method: Percentile})
	if math.Abs(res.Percentile-62.5) > 0.01 {
		t.Errorf("percentile = %v, want 62.5", res.Percentile)
	}
	if res.NormalizedScore != res.Percentile {
		t.Errorf("normalized (%v) should equal percentile (%v)", res.NormalizedScore, res.Percentile)
	}
}

func TestNormalize_PercentileBelowTable(t *testing.T) {
	e := testEngine()
	res := e.Normalize(10, "spatial", Options{Method: Percentile})
	if res.Percentile != 10 { // lowest table entry
		t.Errorf("percentile = %v, want 10", res.Percentile)
	}
}

func TestNormalize_CDFApproximationBounds(t *testing.T) {
	e := NewEngine()
	e.AddNormativeData(NormativeData{
		Category: "notable", Population: "Pop", SampleSize: 100, Mean: 0, StdDev: 1,
	})
	lo := e.Normalize(-100, "notable", Options{Method: Percentile})
	hi := e.Normalize(100, "notable", Options{Method: Percentile})
	if lo.Percentile != 0.1 {
		t.Errorf("low percentile = %v, want floor 0.1", lo.Percentile)
	}
	if hi.Percentile != 99.9 {
		t.Errorf("high percentile = %v, want cap 99.9", hi.Percentile)
	}
	mid := e.Normalize(0, "notable", Options{Method: Percentile})
	if math.Abs(mid.Percentile-50) > 0.5 {
		t.Errorf("mid percentile = %v, want ~50", mid.Percentile)
	}
}

func TestNormalize_AgeAndGenderGroups(t *testing.T) {
	e := testEngine()
	res := e.Normalize(65, "spatial", Options{Method: ZScore, AgeGroup: "18-25"})
	if res.NormalizedScore != 1 { // (65-55)/10
		t.Errorf("age-group z = %v, want 1", res.NormalizedScore)
	}
	if res.ComparisonGroup != "General Adult, ages 18-25 (n=120)" {
		t.Errorf("comparison group = %q", res.ComparisonGroup)
	}

	res = e.Normalize(61, "spatial", Options{Method: ZScore, Gender: "female"})
	if res.NormalizedScore != 1 { // (61-52)/9
		t.Errorf("gender-group z = %v, want 1", res.NormalizedScore)
	}

	// Unknown sub-group falls back to the category table.
	res = e.Normalize(60, "spatial", Options{Method: ZScore, AgeGroup: "90+"})
	if res.NormalizedScore != 1 { // (60-50)/10
		t.Errorf("fallback z = %v, want 1", res.NormalizedScore)
	}
}

func TestNormalize_PopulationQualifiedLookup(t *testing.T) {
	e := testEngine()
	res := e.Normalize(60, "spatial", Options{Method: ZScore, Population: "General Adult"})
	if res.NormalizedScore != 1 {
		t.Errorf("z = %v, want 1", res.NormalizedScore)
	}
}

func TestAvailableCategories(t *testing.T) {
	e := testEngine()
	cats := e.AvailableCategories()
	if len(cats) != 1 || cats[0] != "spatial" {
		t.Errorf("categories = %v, want [spatial]", cats)
	}
}
