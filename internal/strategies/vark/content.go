package vark

type modalityContent struct {
	Name            string
	Description     string
	StudyStrategies []string
	Development     []string
}

var content = map[string]modalityContent{
	"visual": {
		Name:        "Visual",
		Description: "You learn best from what you can see: diagrams, charts, maps, color and spatial layout carry more meaning than words alone.",
		StudyStrategies: []string{
			"Convert notes into diagrams, flowcharts and mind maps",
			"Use color coding and highlighting systematically",
			"Replace lists with timelines, graphs and symbols",
			"Sit where you can see the speaker and the board",
		},
		Development: []string{
			"Sketch one concept per study session from memory",
			"Practice reading charts from unfamiliar domains",
		},
	},
	"auditory": {
		Name:        "Auditory",
		Description: "You learn best from what you hear and say: lectures, discussion and talking ideas through lock material in.",
		StudyStrategies: []string{
			"Record lectures and replay them while commuting",
			"Read notes aloud and explain topics to others",
			"Join discussion groups and ask questions",
			"Use rhythm and verbal repetition for memorization",
		},
		Development: []string{
			"Summarize a chapter aloud without looking at it",
			"Listen to subject-matter podcasts and retell the argument",
		},
	},
	"readingWriting": {
		Name:        "Reading/Writing",
		Description: "You learn best through text: reading thoroughly and rewriting material in your own words is how ideas stick.",
		StudyStrategies: []string{
			"Rewrite notes repeatedly, condensing each pass",
			"Turn diagrams and charts into written descriptions",
			"Make and use written lists, glossaries and definitions",
			"Answer practice questions in full written sentences",
		},
		Development: []string{
			"Keep a learning log with written summaries",
			"Practice converting visual material into prose",
		},
	},
	"kinesthetic": {
		Name:        "Kinesthetic",
		Description: "You learn best by doing: real examples, practice, simulation and all-senses experience beat abstract description.",
		StudyStrategies: []string{
			"Use labs, field trips and hands-on practice first",
			"Study in short bursts with movement between them",
			"Build physical models or act processes out",
			"Anchor abstractions in concrete, real-life examples",
		},
		Development: []string{
			"Recreate worked examples from scratch by hand",
			"Teach a skill to someone by demonstration",
		},
	},
}
