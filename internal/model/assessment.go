package model

import (
	"encoding/json"
	"strings"
)

const (
	// Every question carries exactly four options.
	OptionsPerQuestion = 4

	// UnansweredIndex is the sentinel for a question with no selection yet.
	UnansweredIndex = -1
)

// Question is one multiple-choice question. Score is the authored share
// of the assessment's max score, computed at save time.
type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
	Score         int      `json:"score,omitempty"`
}

// CorrectAnswerText returns the text of the correct option, which is what
// stored results are compared against.
func (q Question) CorrectAnswerText() string {
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectOption]
}

// Assessment is the backend's quiz record, with questions already parsed
// out of their serialized wire form.
type Assessment struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	MaxScore              int        `json:"maxScore"`
	CourseID              string     `json:"courseId"`
	AllowMultipleAttempts bool       `json:"allowMultipleAttempts"`
	Questions             []Question `json:"questions"`
}

// WireAssessment is the shape the backend accepts on create/update. The
// question list is not nested at the wire boundary: it travels as one
// serialized JSON string field.
type WireAssessment struct {
	Title     string `json:"Title"`
	MaxScore  int    `json:"MaxScore"`
	CourseID  string `json:"CourseId"`
	Questions string `json:"Questions"`
}

// RawAssessment is an assessment as fetched, before its questions field
// (string, array, or absent depending on the endpoint) is normalized.
type RawAssessment struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	MaxScore              int             `json:"maxScore"`
	CourseID              string          `json:"courseId"`
	AllowMultipleAttempts bool            `json:"allowMultipleAttempts"`
	Questions             json.RawMessage `json:"questions"`
}

// Normalize applies the front-end's defaults and question parsing.
func (r RawAssessment) Normalize() Assessment {
	a := Assessment{
		ID:                    r.ID,
		Title:                 r.Title,
		MaxScore:              r.MaxScore,
		CourseID:              r.CourseID,
		AllowMultipleAttempts: r.AllowMultipleAttempts,
		Questions:             ParseQuestions(r.Questions),
	}
	if a.Title == "" {
		a.Title = "Untitled Assessment"
	}
	if a.MaxScore == 0 {
		a.MaxScore = 100
	}
	return a
}

// ParseQuestions decodes the backend's questions field, which is observed
// in three shapes: a JSON array, a JSON string containing an array, or a
// bare string. A bare string becomes a single yes/no question so old
// records still render instead of disappearing.
func ParseQuestions(raw json.RawMessage) []Question {
	if len(raw) == 0 {
		return nil
	}

	var qs []Question
	if err := json.Unmarshal(raw, &qs); err == nil {
		return qs
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(s), &qs); err == nil {
		return qs
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []Question{{
		QuestionText:  s,
		Options:       []string{"Yes", "No"},
		CorrectOption: 0,
	}}
}

// ShareSplit distributes maxScore across questionCount questions: every
// question gets floor(maxScore/questionCount) and the integer remainder
// goes entirely to the first question. The split is order-dependent and
// must stay byte-compatible with records the backend already holds.
func ShareSplit(maxScore, questionCount int) []int {
	if questionCount <= 0 {
		return nil
	}
	per := maxScore / questionCount
	shares := make([]int, questionCount)
	for i := range shares {
		shares[i] = per
	}
	shares[0] += maxScore % questionCount
	return shares
}

// ScoringShare is the per-question share used when grading a submission.
// Unlike ShareSplit it never hands out the remainder, so an assessment
// whose max score does not divide evenly can award less than maxScore
// even on a perfect run. The discrepancy is inherited behavior; results
// already stored by the backend were scored this way.
func ScoringShare(maxScore, questionCount int) int {
	if questionCount <= 0 {
		return 0
	}
	return maxScore / questionCount
}
