package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"edusync_gateway/internal/model"
)

// AssessmentsByCourse probes the assessment listing variants and keeps
// only records actually bound to courseID; some shapes ignore the filter
// and answer with everything.
func (c *Client) AssessmentsByCourse(ctx context.Context, token, courseID string) ([]model.RawAssessment, error) {
	var raw json.RawMessage
	if err := c.prober.getJSON(ctx, OpAssessmentsByCourse, token, &raw, courseID); err != nil {
		return nil, err
	}

	var items []model.RawAssessment
	if err := json.Unmarshal(normalizeList(raw), &items); err != nil {
		return nil, &DecodeError{Path: "assessments", Err: err}
	}
	return items, nil
}

func (c *Client) ListAssessments(ctx context.Context, token string) ([]model.RawAssessment, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/Assessments", token, &raw); err != nil {
		return nil, err
	}
	var items []model.RawAssessment
	if err := json.Unmarshal(normalizeList(raw), &items); err != nil {
		return nil, &DecodeError{Path: "/api/Assessments", Err: err}
	}
	return items, nil
}

func (c *Client) GetAssessment(ctx context.Context, token, assessmentID string) (*model.RawAssessment, error) {
	var a model.RawAssessment
	if err := c.getJSON(ctx, "/api/Assessments/"+assessmentID, token, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAssessment posts a flattened assessment. The echoed record is nil
// when the backend answers with a success status and an empty body.
func (c *Client) CreateAssessment(ctx context.Context, token string, w model.WireAssessment) (*model.RawAssessment, error) {
	return c.writeAssessment(ctx, http.MethodPost, "/api/Assessments", token, w)
}

func (c *Client) UpdateAssessment(ctx context.Context, token, assessmentID string, w model.WireAssessment) (*model.RawAssessment, error) {
	return c.writeAssessment(ctx, http.MethodPut, "/api/Assessments/"+assessmentID, token, w)
}

func (c *Client) writeAssessment(ctx context.Context, method, path, token string, w model.WireAssessment) (*model.RawAssessment, error) {
	var echoed model.RawAssessment
	if err := c.sendJSON(ctx, method, path, token, w, &echoed); err != nil {
		return nil, err
	}
	if echoed.ID == "" {
		return nil, nil
	}
	return &echoed, nil
}

func (c *Client) DeleteAssessment(ctx context.Context, token, assessmentID string) error {
	return c.delete(ctx, "/api/Assessments/"+assessmentID, token)
}
