package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/internal/util"
	"edusync_gateway/pkg/logger"

	"go.uber.org/zap"
)

type ResultService struct {
	Upstream *upstream.Client
	Authz    Authorizer
}

func NewResultService(up *upstream.Client, authz Authorizer) *ResultService {
	return &ResultService{Upstream: up, Authz: authz}
}

// ResultRow is one submission in the instructor's results table.
type ResultRow struct {
	model.Result
	Passed bool `json:"passed"`
}

// ResultsView is everything the results page shows: the assessment header
// and every student submission, newest first.
type ResultsView struct {
	Assessment model.Assessment `json:"assessment"`
	Results    []ResultRow      `json:"results"`
}

// AssessmentResults returns all submissions for an assessment. Only the
// instructor who owns the assessment's course may see them.
func (s *ResultService) AssessmentResults(ctx context.Context, sess *model.Session, assessmentID string) (*ResultsView, error) {
	if assessmentID == "" {
		return nil, Invalid("assessment id is required")
	}

	raw, err := s.Upstream.GetAssessment(ctx, sess.Token, assessmentID)
	if err != nil {
		return nil, err
	}
	assessment := raw.Normalize()

	course, err := s.Upstream.GetCourse(ctx, sess.Token, assessment.CourseID)
	if err != nil {
		return nil, err
	}
	if !s.Authz.CanManage(sess, course) {
		return nil, util.ErrPermissionDenied
	}

	results, err := s.Upstream.ResultsByAssessment(ctx, sess.Token, assessmentID)
	if err != nil {
		// No deployment exposes results the same way; when every known
		// endpoint failed the page shows an empty table rather than an
		// error.
		var pe *upstream.ProbeError
		if !errors.As(err, &pe) {
			return nil, err
		}
		logger.Log.Warn("results lookup exhausted all endpoints",
			zap.String("assessmentId", assessmentID),
			zap.Error(err))
		results = nil
	}

	rows := make([]ResultRow, 0, len(results))
	for _, r := range results {
		// Shared results endpoints return other assessments' rows too.
		if r.AssessmentID != "" && !strings.EqualFold(r.AssessmentID, assessmentID) {
			continue
		}
		rows = append(rows, ResultRow{Result: r, Passed: r.Passed(assessment.MaxScore)})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AttemptDate.After(rows[j].AttemptDate)
	})

	return &ResultsView{Assessment: assessment, Results: rows}, nil
}
