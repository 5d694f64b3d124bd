package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/pkg/logger"

	"go.uber.org/zap"
)

// AttemptState tracks where a student is in the take flow.
type AttemptState string

const (
	StateNotStarted AttemptState = "not_started"
	StateInProgress AttemptState = "in_progress"
	StateSubmitted  AttemptState = "submitted"
)

type AttemptService struct {
	Upstream *upstream.Client
}

func NewAttemptService(up *upstream.Client) *AttemptService {
	return &AttemptService{Upstream: up}
}

// AttemptView is what the take page renders: either the assessment to
// answer, or the latest prior result when retakes are not allowed.
type AttemptView struct {
	State        AttemptState      `json:"state"`
	Assessment   *model.Assessment `json:"assessment,omitempty"`
	LatestResult *model.Result     `json:"latestResult,omitempty"`
	Message      string            `json:"message,omitempty"`
}

// QuestionReview is one row of the post-submission breakdown. Answers are
// compared as option text, the same representation the result stores.
type QuestionReview struct {
	QuestionText  string `json:"questionText"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

// SubmissionReview is the scored outcome shown right after submitting.
type SubmissionReview struct {
	State      AttemptState     `json:"state"`
	Result     model.Result     `json:"result"`
	MaxScore   int              `json:"maxScore"`
	Percentage int              `json:"percentage"`
	Passed     bool             `json:"passed"`
	Questions  []QuestionReview `json:"questions"`
}

// Start runs the pre-flight for taking an assessment: load it, look up the
// student's prior submissions and gate the attempt when retakes are off.
func (s *AttemptService) Start(ctx context.Context, sess *model.Session, assessmentID string) (*AttemptView, error) {
	assessment, prior, err := s.load(ctx, sess, assessmentID)
	if err != nil {
		return nil, err
	}

	if len(prior) > 0 && !assessment.AllowMultipleAttempts {
		return &AttemptView{
			State:        StateSubmitted,
			LatestResult: &prior[0],
			Message:      ErrAlreadyCompleted.Error(),
		}, nil
	}

	return &AttemptView{State: StateInProgress, Assessment: assessment}, nil
}

// Submit scores the answers and records the result upstream. Answers come
// in as option indexes, one per question, with -1 meaning unanswered.
func (s *AttemptService) Submit(ctx context.Context, sess *model.Session, assessmentID string, answers []int) (*SubmissionReview, error) {
	assessment, prior, err := s.load(ctx, sess, assessmentID)
	if err != nil {
		return nil, err
	}
	if len(prior) > 0 && !assessment.AllowMultipleAttempts {
		return nil, ErrAlreadyCompleted
	}

	if len(answers) != len(assessment.Questions) {
		return nil, Invalid(fmt.Sprintf("expected %d answers, got %d", len(assessment.Questions), len(answers)))
	}
	unanswered := 0
	for i, a := range answers {
		if a == model.UnansweredIndex {
			unanswered++
			continue
		}
		if a < 0 || a >= len(assessment.Questions[i].Options) {
			return nil, Invalid(fmt.Sprintf("answer %d is out of range for question %d", a, i+1))
		}
	}
	if unanswered > 0 {
		return nil, Invalid(fmt.Sprintf("Please answer all questions before submitting. %d question(s) remaining.", unanswered))
	}

	// Each question is worth the same flat share of maxScore; any division
	// remainder is simply not awarded. Kept for compatibility with how
	// existing results were scored.
	share := model.ScoringShare(assessment.MaxScore, len(assessment.Questions))
	score := 0
	texts := make([]string, len(answers))
	for i, a := range answers {
		q := assessment.Questions[i]
		texts[i] = q.Options[a]
		if a == q.CorrectOption {
			score += share
		}
	}

	result := model.Result{
		AssessmentID:   assessment.ID,
		UserID:         sess.UserID,
		Score:          score,
		AttemptDate:    time.Now().UTC(),
		StudentAnswers: texts,
	}
	echoed, err := s.Upstream.SubmitResult(ctx, sess.Token, result)
	if err != nil {
		return nil, err
	}
	if echoed != nil {
		result.ID = echoed.ID
		if !echoed.AttemptDate.IsZero() {
			result.AttemptDate = echoed.AttemptDate
		}
	}

	return buildReview(assessment, result), nil
}

func buildReview(assessment *model.Assessment, result model.Result) *SubmissionReview {
	review := &SubmissionReview{
		State:      StateSubmitted,
		Result:     result,
		MaxScore:   assessment.MaxScore,
		Passed:     result.Passed(assessment.MaxScore),
		Percentage: percentage(result.Score, assessment.MaxScore),
		Questions:  make([]QuestionReview, len(assessment.Questions)),
	}
	for i, q := range assessment.Questions {
		row := QuestionReview{
			QuestionText:  q.QuestionText,
			CorrectAnswer: q.CorrectAnswerText(),
		}
		if i < len(result.StudentAnswers) {
			row.YourAnswer = result.StudentAnswers[i]
		}
		row.Correct = row.YourAnswer != "" && row.YourAnswer == row.CorrectAnswer
		review.Questions[i] = row
	}
	return review
}

func percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(float64(score)/float64(maxScore)*100 + 0.5)
}

// load fetches the assessment and the session's prior submissions for it,
// newest first. An error response from the results lookup is treated as
// "no prior attempts"; only transport failures abort the flow.
func (s *AttemptService) load(ctx context.Context, sess *model.Session, assessmentID string) (*model.Assessment, []model.Result, error) {
	if assessmentID == "" {
		return nil, nil, Invalid("assessment id is required")
	}

	assessment, err := s.findAssessment(ctx, sess, assessmentID)
	if err != nil {
		return nil, nil, err
	}

	prior, err := s.Upstream.StudentResults(ctx, sess.Token, assessment.ID)
	if err != nil {
		var se *upstream.StatusError
		if !errors.As(err, &se) {
			return nil, nil, err
		}
		logger.Log.Warn("previous attempt lookup failed",
			zap.String("assessmentId", assessment.ID),
			zap.Int("status", se.Code))
		prior = nil
	}
	sort.Slice(prior, func(i, j int) bool {
		return prior[i].AttemptDate.After(prior[j].AttemptDate)
	})
	return assessment, prior, nil
}

// findAssessment scans the assessment list for the id. The take page links
// carry ids from listings, so the by-course list endpoint is not always an
// option and the full list is the reliable source.
func (s *AttemptService) findAssessment(ctx context.Context, sess *model.Session, id string) (*model.Assessment, error) {
	raw, err := s.Upstream.GetAssessment(ctx, sess.Token, id)
	if err == nil {
		a := raw.Normalize()
		return &a, nil
	}

	all, listErr := s.Upstream.ListAssessments(ctx, sess.Token)
	if listErr != nil {
		return nil, err
	}
	for _, r := range all {
		if strings.EqualFold(r.ID, id) {
			a := r.Normalize()
			return &a, nil
		}
	}
	return nil, ErrAssessmentNotFound
}
