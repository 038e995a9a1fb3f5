package vark

import (
	"testing"

	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/strategies"
)

func opt(text, tag string) assessment.Option {
	return assessment.Option{Text: text, Value: text, Category: tag}
}

func TestCalculateScores_MultiSelectTagsEachOption(t *testing.T) {
	q := assessment.Question{
		ID:         "q1",
		TestTypeID: Slug,
		Type:       assessment.MultiSelect,
		Category:   "learning",
		Weight:     2.0,
		Options: []assessment.Option{
			opt("watch a diagram", "visual"),
			opt("listen to a talk", "auditory"),
			opt("read the manual", "reading_writing"),
			opt("try it yourself", "kinesthetic"),
		},
	}
	responses := []assessment.UserResponse{
		{QuestionID: "q1", Value: []interface{}{"watch a diagram", "try it yourself"}},
	}

	s, _ := strategies.Lookup(Slug)
	scores := s.CalculateScores(responses, []assessment.Question{q})

	if scores["visual"] != 2 || scores["kinesthetic"] != 2 {
		t.Errorf("visual=%v kinesthetic=%v, want both 2 (question weight)", scores["visual"], scores["kinesthetic"])
	}
	if scores["auditory"] != 0 || scores["readingWriting"] != 0 {
		t.Errorf("unselected modalities should stay 0, got auditory=%v readingWriting=%v",
			scores["auditory"], scores["readingWriting"])
	}
}

func TestCalculateScores_SingleChoiceUsesOptionTag(t *testing.T) {
	q := assessment.Question{
		ID:       "q1",
		Type:     assessment.MultipleChoice,
		Category: "visual", // question-level category must NOT win over the option tag
		Weight:   1.0,
		Options: []assessment.Option{
			opt("a", "a"),
			opt("b", "k"),
		},
	}
	s, _ := strategies.Lookup(Slug)
	scores := s.CalculateScores(
		[]assessment.UserResponse{{QuestionID: "q1", Value: "b"}},
		[]assessment.Question{q},
	)
	if scores["kinesthetic"] != 1 {
		t.Errorf("kinesthetic = %v, want 1", scores["kinesthetic"])
	}
	if scores["visual"] != 0 {
		t.Errorf("visual = %v, want 0 (option tag wins)", scores["visual"])
	}
}

func TestCalculateScores_RatingFallsBackToQuestionCategory(t *testing.T) {
	q := assessment.Question{
		ID:       "q1",
		Type:     assessment.RatingScale,
		Category: "auditory",
		Weight:   1.0,
	}
	s, _ := strategies.Lookup(Slug)
	scores := s.CalculateScores(
		[]assessment.UserResponse{{QuestionID: "q1", Value: 4.0}},
		[]assessment.Question{q},
	)
	if scores["auditory"] != 4 {
		t.Errorf("auditory = %v, want 4", scores["auditory"])
	}
}

func TestCalculateScores_UntaggedOptionIgnored(t *testing.T) {
	q := assessment.Question{
		ID:      "q1",
		Type:    assessment.MultipleChoice,
		Weight:  1.0,
		Options: []assessment.Option{opt("none of these", "")},
	}
	s, _ := strategies.Lookup(Slug)
	scores := s.CalculateScores(
		[]assessment.UserResponse{{QuestionID: "q1", Value: "none of these"}},
		[]assessment.Question{q},
	)
	for dim, v := range scores {
		if v != 0 {
			t.Errorf("scores[%s] = %v, want 0 for untagged option", dim, v)
		}
	}
}

func TestProcess_PrimaryModality(t *testing.T) {
	q := assessment.Question{
		ID:     "q1",
		Type:   assessment.MultiSelect,
		Weight: 1.0,
		Options: []assessment.Option{
			opt("v1", "v"), opt("v2", "v"), opt("k1", "k"),
		},
	}
	s, _ := strategies.Lookup(Slug)
	res := strategies.Process(s,
		[]assessment.UserResponse{{QuestionID: "q1", Value: []interface{}{"v1", "v2", "k1"}}},
		[]assessment.Question{q},
	)
	rec := res.Recommendations
	if rec.PrimaryModality == nil || rec.PrimaryModality.Type != "visual" {
		t.Fatalf("primary modality = %+v, want visual", rec.PrimaryModality)
	}
	if res.NormalizedScores["visual"] != 67 || res.NormalizedScores["kinesthetic"] != 33 {
		t.Errorf("normalized = %v, want visual=67 kinesthetic=33", res.NormalizedScores)
	}
	if len(rec.StudyStrategies) == 0 {
		t.Error("expected study strategies for the primary modality")
	}
}
