package recommend

// Static knowledge base keyed by assessment-type slug, then by breakdown
// category (lowercased). Built at init, read-only afterwards. The text
// is domain content; equivalent wording would work identically.

type categoryContent struct {
	Name               string
	Careers            []string
	CareerActions      []string
	StrengthActions    []string
	DevelopmentActions []string
	StudyStrategies    []string
	Resources          []Resource
}

// careerProfile weights the intelligences a career draws on.
type careerProfile struct {
	Name    string
	Weights map[string]float64
}

var knowledgeBase = map[string]map[string]categoryContent{
	"dominant-intelligence": {
		"linguistic": {
			Name:               "Linguistic Intelligence",
			Careers:            []string{"Writer", "Journalist", "Lawyer", "Editor"},
			CareerActions:      []string{"Publish writing samples in a portfolio", "Shadow a professional writer or editor"},
			StrengthActions:    []string{"Enter writing competitions", "Learn a second language to an advanced level"},
			DevelopmentActions: []string{"Read 20 minutes daily and summarize", "Keep a vocabulary notebook"},
			Resources: []Resource{
				{Type: "book", Title: "On Writing Well", Author: "William Zinsser", EstimatedTime: "8 hours"},
			},
		},
		"logical-mathematical": {
			Name:               "Logical-Mathematical Intelligence",
			Careers:            []string{"Engineer", "Data Scientist", "Accountant", "Software Developer"},
			CareerActions:      []string{"Build a small data or coding project end to end", "Interview someone in a quantitative role"},
			StrengthActions:    []string{"Take a proof-based mathematics course", "Compete in programming or math olympiads"},
			DevelopmentActions: []string{"Do one logic puzzle daily", "Practice mental arithmetic on everyday amounts"},
			Resources: []Resource{
				{Type: "course", Title: "Introduction to Mathematical Thinking", EstimatedTime: "10 weeks"},
			},
		},
		"spatial": {
			Name:               "Spatial Intelligence",
			Careers:            []string{"Architect", "Designer", "Pilot", "Surgeon"},
			CareerActions:      []string{"Assemble a design portfolio", "Try CAD or 3D modelling software"},
			StrengthActions:    []string{"Study technical drawing", "Learn photogrammetry or 3D printing"},
			DevelopmentActions: []string{"Sketch daily from observation", "Practice map reading without GPS"},
		},
		"bodily-kinesthetic": {
			Name:               "Bodily-Kinesthetic Intelligence",
			Careers:            []string{"Physical Therapist", "Athlete", "Carpenter", "Choreographer"},
			CareerActions:      []string{"Get certified in a hands-on discipline", "Volunteer with a sports or rehabilitation program"},
			StrengthActions:    []string{"Cross-train in a contrasting discipline", "Coach beginners in your strongest skill"},
			DevelopmentActions: []string{"Add 20 minutes of daily movement", "Learn one manual craft basic"},
		},
		"musical": {
			Name:               "Musical Intelligence",
			Careers:            []string{"Musician", "Sound Engineer", "Composer", "Music Teacher"},
			CareerActions:      []string{"Record and share a short piece", "Visit a recording studio"},
			StrengthActions:    []string{"Study music theory formally", "Join an ensemble"},
			DevelopmentActions: []string{"Learn to read simple notation", "Practice rhythm exercises"},
		},
		"interpersonal": {
			Name:               "Interpersonal Intelligence",
			Careers:            []string{"Counselor", "HR Specialist", "Sales Manager", "Mediator"},
			CareerActions:      []string{"Lead a volunteer team", "Take a negotiation workshop"},
			StrengthActions:    []string{"Mentor someone junior", "Facilitate meetings deliberately"},
			DevelopmentActions: []string{"Practice active listening daily", "Join a club and take a coordination role"},
		},
		"intrapersonal": {
			Name:               "Intrapersonal Intelligence",
			Careers:            []string{"Psychologist", "Entrepreneur", "Researcher", "Coach"},
			CareerActions:      []string{"Write a personal mission statement", "Interview a coach or therapist about their path"},
			StrengthActions:    []string{"Run structured self-reviews monthly", "Study a reflective practice tradition"},
			DevelopmentActions: []string{"Journal for ten minutes daily", "Name your emotions as they occur"},
		},
		"naturalistic": {
			Name:               "Naturalistic Intelligence",
			Careers:            []string{"Biologist", "Environmental Scientist", "Veterinarian", "Geologist"},
			CareerActions:      []string{"Join a citizen-science project", "Shadow a field scientist"},
			StrengthActions:    []string{"Lead local species surveys", "Study taxonomy formally"},
			DevelopmentActions: []string{"Keep a nature observation log", "Learn ten local species"},
		},
	},
	"personality-pattern": {
		"dominance": {
			Name:               "Dominance",
			Careers:            []string{"Executive", "Entrepreneur", "Project Manager"},
			CareerActions:      []string{"Take ownership of a visible project", "Practice delegation on a small team"},
			StrengthActions:    []string{"Study situational leadership", "Seek a stretch leadership role"},
			DevelopmentActions: []string{"Practice assertive (not aggressive) requests", "Volunteer to make one decision per week"},
		},
		"influence": {
			Name:               "Influence",
			Careers:            []string{"Marketing Manager", "Recruiter", "Public Relations"},
			CareerActions:      []string{"Present at a meetup", "Build and tend a professional network"},
			StrengthActions:    []string{"Study persuasion and storytelling", "Host a recurring community event"},
			DevelopmentActions: []string{"Speak up once per meeting", "Practice small talk in low-stakes settings"},
		},
		"steadiness": {
			Name:               "Steadiness",
			Careers:            []string{"Operations Manager", "Nurse", "Counselor"},
			CareerActions:      []string{"Own a long-running process end to end", "Train as a peer supporter"},
			StrengthActions:    []string{"Become the team's continuity keeper", "Coach others through change"},
			DevelopmentActions: []string{"Build one dependable daily routine", "Practice patience in a queue you would normally avoid"},
		},
		"conscientiousness": {
			Name:               "Conscientiousness",
			Careers:            []string{"Quality Engineer", "Data Analyst", "Compliance Officer"},
			CareerActions:      []string{"Own your team's review checklist", "Audit a process and publish findings"},
			StrengthActions:    []string{"Learn a formal quality methodology", "Teach precision skills to others"},
			DevelopmentActions: []string{"Adopt a simple personal task system", "Proofread your own work with a one-day delay"},
		},
	},
	"vark": {
		"visual": {
			Name: "Visual",
			StudyStrategies: []string{
				"Convert notes into diagrams and mind maps",
				"Use color coding consistently",
				"Watch demonstrations before reading instructions",
			},
			DevelopmentActions: []string{"Practice sketch-noting one lecture a week"},
		},
		"auditory": {
			Name: "Auditory",
			StudyStrategies: []string{
				"Record and replay explanations",
				"Discuss material in study groups",
				"Read key passages aloud",
			},
			DevelopmentActions: []string{"Summarize one topic aloud daily"},
		},
		"reading-writing": {
			Name: "Reading/Writing",
			StudyStrategies: []string{
				"Rewrite notes in condensed passes",
				"Turn diagrams into written descriptions",
				"Answer practice questions in full sentences",
			},
			DevelopmentActions: []string{"Keep a written learning log"},
		},
		"kinesthetic": {
			Name: "Kinesthetic",
			StudyStrategies: []string{
				"Practice with real examples and labs first",
				"Study in short active bursts",
				"Build or act out what you are learning",
			},
			DevelopmentActions: []string{"Recreate one worked example by hand daily"},
		},
	},
}

// careerMatrix scores careers as weighted averages over the user's
// intelligence profile (breakdown categories).
var careerMatrix = []careerProfile{
	{Name: "Software Engineer", Weights: map[string]float64{"logical-mathematical": 0.6, "spatial": 0.2, "intrapersonal": 0.2}},
	{Name: "Data Scientist", Weights: map[string]float64{"logical-mathematical": 0.7, "linguistic": 0.15, "intrapersonal": 0.15}},
	{Name: "Architect", Weights: map[string]float64{"spatial": 0.6, "logical-mathematical": 0.3, "bodily-kinesthetic": 0.1}},
	{Name: "Teacher", Weights: map[string]float64{"interpersonal": 0.4, "linguistic": 0.4, "intrapersonal": 0.2}},
	{Name: "Counselor", Weights: map[string]float64{"interpersonal": 0.5, "intrapersonal": 0.35, "linguistic": 0.15}},
	{Name: "Journalist", Weights: map[string]float64{"linguistic": 0.6, "interpersonal": 0.25, "intrapersonal": 0.15}},
	{Name: "Surgeon", Weights: map[string]float64{"bodily-kinesthetic": 0.4, "spatial": 0.35, "logical-mathematical": 0.25}},
	{Name: "Musician", Weights: map[string]float64{"musical": 0.7, "bodily-kinesthetic": 0.15, "intrapersonal": 0.15}},
	{Name: "Environmental Scientist", Weights: map[string]float64{"naturalistic": 0.55, "logical-mathematical": 0.3, "spatial": 0.15}},
	{Name: "Entrepreneur", Weights: map[string]float64{"interpersonal": 0.35, "intrapersonal": 0.3, "logical-mathematical": 0.35}},
	{Name: "Graphic Designer", Weights: map[string]float64{"spatial": 0.6, "linguistic": 0.2, "interpersonal": 0.2}},
	{Name: "Physical Therapist", Weights: map[string]float64{"bodily-kinesthetic": 0.5, "interpersonal": 0.3, "logical-mathematical": 0.2}},
}
