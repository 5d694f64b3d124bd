package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edusync_gateway/internal/config"
	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultsBackend struct {
	assessment model.RawAssessment
	course     model.Course
	results    []model.Result
	resultsErr bool
}

func (b *resultsBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Assessments/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(b.assessment)
	})
	mux.HandleFunc("/api/Courses/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(b.course)
	})
	mux.HandleFunc("/api/Results", func(w http.ResponseWriter, r *http.Request) {
		if b.resultsErr {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(b.results)
	})
	return mux
}

func newResultsFixture(t *testing.T, backend *resultsBackend) *ResultService {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return NewResultService(upstream.NewClient(&config.UpstreamConfig{BaseURL: srv.URL}), ClaimsAuthorizer{})
}

func TestAssessmentResultsSortedAndFlagged(t *testing.T) {
	day := 24 * time.Hour
	now := time.Now().UTC()
	backend := &resultsBackend{
		assessment: model.RawAssessment{ID: "a1", Title: "Quiz", MaxScore: 100, CourseID: "c1"},
		course:     model.Course{ID: "c1", InstructorName: "jdoe"},
		results: []model.Result{
			{ID: "r-old", AssessmentID: "a1", UserName: "alice", Score: 40, AttemptDate: now.Add(-2 * day)},
			{ID: "r-other", AssessmentID: "zzz", UserName: "mallory", Score: 90, AttemptDate: now},
			{ID: "r-new", AssessmentID: "A1", UserName: "bob", Score: 75, AttemptDate: now.Add(-day)},
		},
	}
	svc := newResultsFixture(t, backend)

	view, err := svc.AssessmentResults(context.Background(), instructorSession(), "a1")
	require.NoError(t, err)

	// Other assessments' rows are dropped; ids match case-insensitively.
	require.Len(t, view.Results, 2)
	assert.Equal(t, "r-new", view.Results[0].ID)
	assert.Equal(t, "r-old", view.Results[1].ID)

	assert.True(t, view.Results[0].Passed)
	assert.False(t, view.Results[1].Passed)
	assert.Equal(t, "Quiz", view.Assessment.Title)
}

func TestAssessmentResultsDeniedForNonOwner(t *testing.T) {
	backend := &resultsBackend{
		assessment: model.RawAssessment{ID: "a1", CourseID: "c1"},
		course:     model.Course{ID: "c1", InstructorName: "someone-else"},
	}
	svc := newResultsFixture(t, backend)

	_, err := svc.AssessmentResults(context.Background(), instructorSession(), "a1")
	require.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestAssessmentResultsEmptyWhenAllEndpointsFail(t *testing.T) {
	backend := &resultsBackend{
		assessment: model.RawAssessment{ID: "a1", CourseID: "c1"},
		course:     model.Course{ID: "c1", InstructorName: "jdoe"},
		resultsErr: true,
	}
	svc := newResultsFixture(t, backend)

	view, err := svc.AssessmentResults(context.Background(), instructorSession(), "a1")
	require.NoError(t, err)
	assert.Empty(t, view.Results)
}
