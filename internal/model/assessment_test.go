package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestShareSplit(t *testing.T) {
	tests := []struct {
		name     string
		maxScore int
		count    int
		want     []int
	}{
		{"even split", 100, 4, []int{25, 25, 25, 25}},
		{"remainder goes to the first question", 100, 3, []int{34, 33, 33}},
		{"single question takes everything", 10, 1, []int{10}},
		{"more questions than points", 2, 3, []int{2, 0, 0}},
		{"zero questions", 100, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShareSplit(tt.maxScore, tt.count)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ShareSplit(%d, %d) = %v, want %v", tt.maxScore, tt.count, got, tt.want)
			}
		})
	}
}

func TestShareSplitSumsToMaxScore(t *testing.T) {
	for _, maxScore := range []int{1, 7, 50, 100, 999} {
		for count := 1; count <= 10; count++ {
			sum := 0
			for _, share := range ShareSplit(maxScore, count) {
				sum += share
			}
			if sum != maxScore {
				t.Errorf("ShareSplit(%d, %d) sums to %d", maxScore, count, sum)
			}
		}
	}
}

func TestScoringShareDropsRemainder(t *testing.T) {
	if got := ScoringShare(100, 3); got != 33 {
		t.Fatalf("ScoringShare(100, 3) = %d, want 33", got)
	}
	// A perfect run on a 100-point three-question assessment totals 99.
	// Authored shares would say 34+33+33; grading must not change that.
	if total := ScoringShare(100, 3) * 3; total != 99 {
		t.Fatalf("perfect-run total = %d, want 99", total)
	}
	if got := ScoringShare(100, 0); got != 0 {
		t.Fatalf("ScoringShare(100, 0) = %d, want 0", got)
	}
}

func TestParseQuestions(t *testing.T) {
	array := `[{"questionText":"Q1","options":["a","b","c","d"],"correctOption":2,"score":50}]`
	tests := []struct {
		name string
		raw  string
		want []Question
	}{
		{
			"json array",
			array,
			[]Question{{QuestionText: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: 2, Score: 50}},
		},
		{
			"string-encoded array",
			`"[{\"questionText\":\"Q1\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correctOption\":2,\"score\":50}]"`,
			[]Question{{QuestionText: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: 2, Score: 50}},
		},
		{
			"bare string becomes a yes/no question",
			`"Is water wet?"`,
			[]Question{{QuestionText: "Is water wet?", Options: []string{"Yes", "No"}, CorrectOption: 0}},
		},
		{"empty input", ``, nil},
		{"blank string", `"  "`, nil},
		{"unusable shape", `42`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuestions(json.RawMessage(tt.raw))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuestions(%s) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRawAssessmentNormalizeDefaults(t *testing.T) {
	a := RawAssessment{ID: "a1"}.Normalize()
	if a.Title != "Untitled Assessment" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.MaxScore != 100 {
		t.Errorf("MaxScore = %d", a.MaxScore)
	}
	if a.Questions != nil {
		t.Errorf("Questions = %+v, want nil", a.Questions)
	}
}

func TestResultPassed(t *testing.T) {
	tests := []struct {
		score    int
		maxScore int
		want     bool
	}{
		{60, 100, true},
		{59, 100, false},
		{6, 10, true},
		{0, 0, true}, // zero-point assessments always pass
	}
	for _, tt := range tests {
		r := Result{Score: tt.score}
		if got := r.Passed(tt.maxScore); got != tt.want {
			t.Errorf("Passed(%d/%d) = %v, want %v", tt.score, tt.maxScore, got, tt.want)
		}
	}
}

func TestCorrectAnswerText(t *testing.T) {
	q := Question{Options: []string{"a", "b"}, CorrectOption: 1}
	if got := q.CorrectAnswerText(); got != "b" {
		t.Errorf("CorrectAnswerText() = %q", got)
	}
	out := Question{Options: []string{"a"}, CorrectOption: 5}
	if got := out.CorrectAnswerText(); got != "" {
		t.Errorf("out-of-range CorrectAnswerText() = %q, want empty", got)
	}
}
