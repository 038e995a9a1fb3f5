package assessment

// QuestionType enumerates the supported item formats.
type QuestionType string

const (
	RatingScale    QuestionType = "rating_scale"
	MultipleChoice QuestionType = "multiple_choice"
	YesNo          QuestionType = "yes_no"
	MultiSelect    QuestionType = "multiselect"
	Ranking        QuestionType = "ranking"
	Slider         QuestionType = "slider"
)

// Option is one selectable choice of a question. Value is whatever the
// authoring side assigned (number or string); Category is an optional
// per-option tag used by instruments like VARK where each choice maps to
// its own dimension.
type Option struct {
	Text     string      `json:"text"`
	Value    interface{} `json:"value"`
	Category string      `json:"category,omitempty"`
}

// Question is an assessment item. Immutable once authored.
type Question struct {
	ID          string       `json:"id"`
	TestTypeID  string       `json:"test_type_id"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Category    string       `json:"category"`
	Subcategory string       `json:"subcategory,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Weight      float64      `json:"weight"` // 0 means the default 1.0
	Active      bool         `json:"active"`
	Order       int          `json:"order"`
}

// EffectiveWeight returns the question weight, defaulting to 1.0.
func (q Question) EffectiveWeight() float64 {
	if q.Weight <= 0 {
		return 1.0
	}
	return q.Weight
}

// UserResponse is one answered question within one session. Value is
// numeric, boolean, string, or an array thereof depending on the
// question type.
type UserResponse struct {
	SessionID      string      `json:"session_id"`
	QuestionID     string      `json:"question_id"`
	Value          interface{} `json:"value"`
	ResponseTimeMs int64       `json:"response_time_ms,omitempty"` // 0 = not recorded
	CreatedAt      int64       `json:"created_at,omitempty"`
}

// TestType describes one assessment instrument (e.g. "vark").
type TestType struct {
	ID          string `json:"id"` // slug, doubles as strategy key
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// Session sequences one or more instruments for one user.
type Session struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Status       string   `json:"status"` // in_progress|completed
	TestTypes    []string `json:"test_types"`
	CurrentIndex int      `json:"current_index"`
	StartedAt    int64    `json:"started_at"`
	CompletedAt  int64    `json:"completed_at,omitempty"`
}

const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// CurrentTestType returns the slug of the instrument the session is on,
// or "" when every instrument has been scored.
func (s Session) CurrentTestType() (string, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.TestTypes) {
		return "", false
	}
	return s.TestTypes[s.CurrentIndex], true
}

// Result is the persisted outcome of scoring one instrument in one
// session. The JSON blobs are produced by the scoring pipeline and are
// opaque to the store.
type Result struct {
	ID                  string `json:"id"`
	SessionID           string `json:"session_id"`
	TestType            string `json:"test_type"`
	ScoresJSON          string `json:"scores_json"`
	BreakdownJSON       string `json:"breakdown_json"`
	RecommendationsJSON string `json:"recommendations_json"`
	CreatedAt           int64  `json:"created_at"`
}
