package personality

type styleContent struct {
	Name           string
	Description    string
	Careers        []string
	WorkStrategies []string
	Development    []string
}

var content = map[string]styleContent{
	"dominance": {
		Name:        "Dominance",
		Description: "Direct, decisive and results-driven: you take charge, accept challenges and push for quick outcomes.",
		Careers:     []string{"Executive", "Entrepreneur", "Project Manager", "Attorney", "Sales Director"},
		WorkStrategies: []string{
			"Negotiate clear authority over your own scope",
			"Set aggressive but measurable goals",
			"Channel competitiveness into stretch targets, not colleagues",
		},
		Development: []string{
			"Pause to gather input before deciding",
			"Practice delegating without micromanaging",
			"Soften delivery: lead with questions, not verdicts",
		},
	},
	"influence": {
		Name:        "Influence",
		Description: "Outgoing, enthusiastic and persuasive: you energize groups, build networks and sell ideas.",
		Careers:     []string{"Marketing Manager", "Public Relations", "Teacher", "Recruiter", "Event Planner"},
		WorkStrategies: []string{
			"Seek roles with frequent collaboration and presenting",
			"Use your network deliberately when unblocking work",
			"Pair with detail-oriented colleagues on execution",
		},
		Development: []string{
			"Finish before starting: track commitments to completion",
			"Build time-management guardrails around social time",
			"Back enthusiasm with data when making a case",
		},
	},
	"steadiness": {
		Name:        "Steadiness",
		Description: "Patient, dependable and team-oriented: you bring calm consistency and loyalty to long efforts.",
		Careers:     []string{"Nurse", "Counselor", "HR Specialist", "Operations Manager", "Librarian"},
		WorkStrategies: []string{
			"Anchor teams through change with steady routines",
			"Volunteer as the continuity owner on long projects",
			"Make your need for advance notice of change explicit",
		},
		Development: []string{
			"Practice voicing disagreement early",
			"Take on one stretch change initiative per quarter",
			"Set boundaries instead of absorbing every request",
		},
	},
	"conscientiousness": {
		Name:        "Conscientiousness",
		Description: "Analytical, precise and quality-focused: you value accuracy, standards and well-reasoned positions.",
		Careers:     []string{"Accountant", "Quality Engineer", "Data Analyst", "Compliance Officer", "Scientist"},
		WorkStrategies: []string{
			"Own the standards and review steps of your team",
			"Ask for complete specifications before committing",
			"Schedule focused solo time for deep analysis",
		},
		Development: []string{
			"Timebox analysis and ship at the deadline",
			"Treat 'good enough' as a deliberate quality bar",
			"Share drafts earlier than feels comfortable",
		},
	},
}

// combinedContent keys are "primary+secondary".
var combinedContent = map[string]styleContent{
	"dominance+influence": {
		Name:        "Dominance-Influence",
		Description: "A driving persuader: you combine urgency for results with the charisma to bring people along.",
	},
	"dominance+conscientiousness": {
		Name:        "Dominance-Conscientiousness",
		Description: "A challenging perfectionist: you push hard for results and insist they meet a high standard.",
	},
	"dominance+steadiness": {
		Name:        "Dominance-Steadiness",
		Description: "A persistent driver: you pursue goals forcefully yet with unusual patience for the long game.",
	},
	"influence+dominance": {
		Name:        "Influence-Dominance",
		Description: "An inspiring leader: you win people first and direct them second.",
	},
	"influence+steadiness": {
		Name:        "Influence-Steadiness",
		Description: "A warm encourager: you combine sociability with genuine, patient support for others.",
	},
	"influence+conscientiousness": {
		Name:        "Influence-Conscientiousness",
		Description: "A precise communicator: you present carefully verified ideas with flair.",
	},
	"steadiness+influence": {
		Name:        "Steadiness-Influence",
		Description: "A supportive connector: dependable at the core, sociable at the edges.",
	},
	"steadiness+conscientiousness": {
		Name:        "Steadiness-Conscientiousness",
		Description: "A careful finisher: methodical, consistent and trusted with the details.",
	},
	"steadiness+dominance": {
		Name:        "Steadiness-Dominance",
		Description: "A quiet driver: calm on the surface with firm resolve underneath.",
	},
	"conscientiousness+steadiness": {
		Name:        "Conscientiousness-Steadiness",
		Description: "A systematic stabilizer: exacting standards applied with patience.",
	},
	"conscientiousness+dominance": {
		Name:        "Conscientiousness-Dominance",
		Description: "A demanding analyst: rigorous and unafraid to enforce conclusions.",
	},
	"conscientiousness+influence": {
		Name:        "Conscientiousness-Influence",
		Description: "An articulate expert: accuracy first, presented engagingly.",
	},
}
