package upstream

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"edusync_gateway/pkg/logger"
	"edusync_gateway/pkg/monitoring"

	"go.uber.org/zap"
)

// Operation names a semantic backend call whose exact URL shape is not
// reliably known.
type Operation string

const (
	OpListCourses         Operation = "list_courses"
	OpCourseByID          Operation = "course_by_id"
	OpAssessmentsByCourse Operation = "assessments_by_course"
	OpResultsByAssessment Operation = "results_by_assessment"
)

// The backend's routing mixes singular/plural and casing conventions.
// Each operation carries the ordered shapes observed to exist in the
// wild; the first one that answers with a success status wins.
var defaultCandidates = map[Operation][]string{
	OpListCourses: {
		"/api/Courses",
		"/api/Course",
		"/api/Courses/GetAll",
		"/api/Course/GetAll",
	},
	OpCourseByID: {
		"/api/Courses/%s",
		"/api/Course/%s",
		"/api/Courses/GetCourse/%s",
		"/api/Course/GetById/%s",
	},
	OpAssessmentsByCourse: {
		"/api/Assessments/course/%s",
		"/api/Assessment/course/%s",
		"/api/Assessments/ByCourse/%s",
		"/api/Assessment/ByCourse/%s",
		"/api/Assessments?courseId=%s",
	},
	OpResultsByAssessment: {
		"/api/Results?assessmentId=%s",
		"/api/Results/assessment/%s",
		"/api/Results/byAssessment/%s",
		"/api/Result/assessment/%s",
		"/api/Result/byAssessment/%s",
		"/api/Result?assessmentId=%s",
	},
}

// ProbeError aggregates every failed candidate attempt for one operation.
type ProbeError struct {
	Op       Operation
	Attempts []string
}

func (e *ProbeError) Error() string {
	last := "no candidates configured"
	if len(e.Attempts) > 0 {
		last = e.Attempts[len(e.Attempts)-1]
	}
	return fmt.Sprintf("no working endpoint for %s after %d attempts, last failure: %s", e.Op, len(e.Attempts), last)
}

// prober tries an operation's candidate URL shapes strictly in order,
// one at a time, with no backoff and no same-URL retry. Once a shape
// answers successfully its index is cached, so later calls resolve
// straight to the known-good binding instead of re-probing.
type prober struct {
	client     *Client
	candidates map[Operation][]string

	mu       sync.RWMutex
	resolved map[Operation]int
}

func newProber(client *Client, overrides map[string][]string) *prober {
	candidates := make(map[Operation][]string, len(defaultCandidates))
	for op, paths := range defaultCandidates {
		candidates[op] = paths
	}
	for op, paths := range overrides {
		if len(paths) > 0 {
			candidates[Operation(op)] = paths
		}
	}
	return &prober{
		client:     client,
		candidates: candidates,
		resolved:   make(map[Operation]int),
	}
}

// getJSON probes op's candidates (templates expanded with args) and
// decodes the first successful body into out. A network error and a bad
// status are treated identically: try the next candidate.
func (p *prober) getJSON(ctx context.Context, op Operation, token string, out interface{}, args ...interface{}) error {
	templates := p.candidates[op]

	order := make([]int, 0, len(templates))
	p.mu.RLock()
	winner, known := p.resolved[op]
	p.mu.RUnlock()
	if known {
		order = append(order, winner)
	}
	for i := range templates {
		if known && i == winner {
			continue
		}
		order = append(order, i)
	}

	probeErr := &ProbeError{Op: op}
	for _, i := range order {
		path := fmt.Sprintf(templates[i], args...)

		data, err := p.client.do(ctx, http.MethodGet, path, token, "", nil)
		if err != nil {
			monitoring.ProbeAttempts.WithLabelValues(string(op), "failure").Inc()
			logger.Log.Debug("endpoint candidate failed",
				zap.String("operation", string(op)),
				zap.String("path", path),
				zap.Error(err))
			probeErr.Attempts = append(probeErr.Attempts, fmt.Sprintf("%s: %v", path, err))
			continue
		}

		monitoring.ProbeAttempts.WithLabelValues(string(op), "success").Inc()
		p.resolve(op, i)
		return decodeInto(path, data, out)
	}

	return probeErr
}

func (p *prober) resolve(op Operation, index int) {
	p.mu.Lock()
	_, had := p.resolved[op]
	p.resolved[op] = index
	p.mu.Unlock()
	if !had {
		monitoring.ProbeResolutions.WithLabelValues(string(op)).Inc()
	}
}

// Resolved reports which candidate, if any, an operation is bound to.
func (p *prober) Resolved(op Operation) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i, ok := p.resolved[op]
	if !ok {
		return "", false
	}
	return p.candidates[op][i], true
}
