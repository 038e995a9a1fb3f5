package dominantintelligence

// Static per-dimension domain content. Loaded once; never mutated.

type dimensionContent struct {
	Name            string
	Description     string
	Careers         []string
	StudyStrategies []string
	Development     []string
}

var content = map[string]dimensionContent{
	"linguistic": {
		Name:        "Linguistic Intelligence",
		Description: "Sensitivity to spoken and written language: you learn through words, express ideas fluently, and pick up languages easily.",
		Careers:     []string{"Writer", "Journalist", "Lawyer", "Teacher", "Editor", "Translator"},
		StudyStrategies: []string{
			"Rewrite notes in your own words",
			"Explain concepts aloud or teach them to someone else",
			"Use mnemonics, rhymes and word associations",
		},
		Development: []string{
			"Keep a daily journal",
			"Read outside your usual genres and summarize what you read",
			"Practice presenting ideas to small groups",
		},
	},
	"logicalMathematical": {
		Name:        "Logical-Mathematical Intelligence",
		Description: "Capacity to analyze problems logically, work with numbers and investigate issues scientifically.",
		Careers:     []string{"Engineer", "Data Scientist", "Accountant", "Software Developer", "Researcher", "Actuary"},
		StudyStrategies: []string{
			"Organize material into outlines, tables and flowcharts",
			"Look for patterns and cause-effect relationships",
			"Work through practice problems before reading solutions",
		},
		Development: []string{
			"Play strategy and logic games regularly",
			"Practice estimating quantities before calculating them",
			"Break everyday decisions into explicit pros and cons",
		},
	},
	"spatial": {
		Name:        "Spatial Intelligence",
		Description: "Ability to think in images and visualize accurately: you reason well with maps, charts, diagrams and mental models.",
		Careers:     []string{"Architect", "Graphic Designer", "Pilot", "Surgeon", "Urban Planner", "Photographer"},
		StudyStrategies: []string{
			"Convert text into diagrams, mind maps and sketches",
			"Use color coding to organize notes",
			"Visualize processes step by step before executing them",
		},
		Development: []string{
			"Sketch objects and scenes from memory",
			"Navigate new places without turn-by-turn directions",
			"Assemble models or puzzles that require mental rotation",
		},
	},
	"bodilyKinesthetic": {
		Name:        "Bodily-Kinesthetic Intelligence",
		Description: "Skill in using the body to solve problems or create: you learn by doing, building and moving.",
		Careers:     []string{"Physical Therapist", "Athlete", "Surgeon", "Carpenter", "Choreographer", "Mechanic"},
		StudyStrategies: []string{
			"Take active breaks and study while walking",
			"Build physical or hands-on models of concepts",
			"Use gestures and movement when memorizing",
		},
		Development: []string{
			"Learn a craft that requires fine motor control",
			"Act out processes instead of only reading about them",
			"Take up a sport or dance style new to you",
		},
	},
	"musical": {
		Name:        "Musical Intelligence",
		Description: "Sensitivity to rhythm, pitch and tone: you recognize and reproduce musical patterns with ease.",
		Careers:     []string{"Musician", "Sound Engineer", "Music Teacher", "Composer", "Audio Producer", "Speech Therapist"},
		StudyStrategies: []string{
			"Set key facts to rhythms or melodies",
			"Study with consistent background music and recall with the same",
			"Read material aloud with varied intonation",
		},
		Development: []string{
			"Learn basic notation or an instrument",
			"Practice identifying instruments within songs",
			"Clap out rhythmic patterns of increasing complexity",
		},
	},
	"interpersonal": {
		Name:        "Interpersonal Intelligence",
		Description: "Capacity to understand the intentions, motivations and desires of other people and to work effectively with them.",
		Careers:     []string{"Counselor", "Sales Manager", "HR Specialist", "Nurse", "Politician", "Mediator"},
		StudyStrategies: []string{
			"Join or form a study group",
			"Debate topics to test your understanding",
			"Interview others about their perspective on the material",
		},
		Development: []string{
			"Practice active listening without interrupting",
			"Volunteer for roles that require coordinating people",
			"Ask for feedback on how you come across",
		},
	},
	"intrapersonal": {
		Name:        "Intrapersonal Intelligence",
		Description: "Capacity to understand yourself: your feelings, fears and motivations, and to use that model to regulate your life.",
		Careers:     []string{"Psychologist", "Writer", "Entrepreneur", "Researcher", "Philosopher", "Coach"},
		StudyStrategies: []string{
			"Study alone in a quiet space at your peak hours",
			"Relate new material to personal goals and experiences",
			"Reflect in writing on what you did and did not understand",
		},
		Development: []string{
			"Keep a reflective journal of decisions and outcomes",
			"Practice mindfulness or meditation",
			"Set and review personal goals on a fixed cadence",
		},
	},
	"naturalistic": {
		Name:        "Naturalistic Intelligence",
		Description: "Expertise in recognizing and classifying the natural world: plants, animals, weather and other patterns in nature.",
		Careers:     []string{"Biologist", "Veterinarian", "Environmental Scientist", "Farmer", "Geologist", "Park Ranger"},
		StudyStrategies: []string{
			"Classify material into taxonomies and hierarchies",
			"Study outdoors when possible",
			"Use real-world specimens and field examples",
		},
		Development: []string{
			"Keep an observation log of a natural system near you",
			"Learn to identify local species",
			"Garden or care for plants and track what works",
		},
	},
}
