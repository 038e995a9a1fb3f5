package norms

// DefaultEngine returns an engine preloaded with the built-in adult
// reference tables. Raw scores here are on the calculator's percentage
// scale, so every category maxes at 100.
func DefaultEngine() *Engine {
	e := NewEngine()
	for _, d := range defaultTables {
		e.AddNormativeData(d)
	}
	return e
}

// defaultTables hold illustrative norming samples. Replace with real
// standardization data when a norming study is available.
var defaultTables = []NormativeData{
	{
		Category:   "logical-mathematical",
		Population: "General Adult",
		SampleSize: 1200,
		Mean:       58,
		StdDev:     16,
		Percentiles: map[int]float64{
			5: 30, 25: 47, 50: 58, 75: 69, 95: 84,
		},
		AgeGroups: map[string]GroupStats{
			"18-25": {Mean: 61, StdDev: 15, SampleSize: 340},
			"26-40": {Mean: 58, StdDev: 16, SampleSize: 520},
			"41+":   {Mean: 55, StdDev: 17, SampleSize: 340},
		},
	},
	{
		Category:   "linguistic",
		Population: "General Adult",
		SampleSize: 1200,
		Mean:       62,
		StdDev:     14,
		Percentiles: map[int]float64{
			5: 38, 25: 53, 50: 62, 75: 72, 95: 85,
		},
	},
	{
		Category:   "spatial",
		Population: "General Adult",
		SampleSize: 1200,
		Mean:       55,
		StdDev:     18,
		Percentiles: map[int]float64{
			5: 26, 25: 43, 50: 55, 75: 68, 95: 85,
		},
	},
	{
		Category:   "interpersonal",
		Population: "General Adult",
		SampleSize: 1200,
		Mean:       64,
		StdDev:     13,
		GenderGroups: map[string]GroupStats{
			"female": {Mean: 66, StdDev: 12, SampleSize: 610},
			"male":   {Mean: 62, StdDev: 14, SampleSize: 590},
		},
	},
}
