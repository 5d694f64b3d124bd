package model

import "time"

// PassThreshold is the fraction of maxScore a submission needs to count
// as passed in the results view.
const PassThreshold = 0.6

// Result is one student's scored submission for one assessment.
// StudentAnswers holds the literal option text the student picked per
// question, not the option index; the review view string-compares it
// against the correct option's text.
type Result struct {
	ID             string    `json:"id,omitempty"`
	AssessmentID   string    `json:"assessmentId"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName,omitempty"`
	Score          int       `json:"score"`
	AttemptDate    time.Time `json:"attemptDate"`
	StudentAnswers []string  `json:"studentAnswers"`
}

func (r Result) Passed(maxScore int) bool {
	return float64(r.Score) >= float64(maxScore)*PassThreshold
}
