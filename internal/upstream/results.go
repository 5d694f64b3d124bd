package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"edusync_gateway/internal/model"
)

// StudentResults fetches the calling student's prior results for one
// assessment. The take-assessment pre-flight gates on this.
func (c *Client) StudentResults(ctx context.Context, token, assessmentID string) ([]model.Result, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/Results/student/"+assessmentID, token, &raw); err != nil {
		return nil, err
	}
	var results []model.Result
	if err := json.Unmarshal(normalizeList(raw), &results); err != nil {
		return nil, &DecodeError{Path: "results", Err: err}
	}
	return results, nil
}

// ResultsByAssessment probes the result listing variants for an
// instructor's results view.
func (c *Client) ResultsByAssessment(ctx context.Context, token, assessmentID string) ([]model.Result, error) {
	var raw json.RawMessage
	if err := c.prober.getJSON(ctx, OpResultsByAssessment, token, &raw, assessmentID); err != nil {
		return nil, err
	}
	var results []model.Result
	if err := json.Unmarshal(normalizeList(raw), &results); err != nil {
		return nil, &DecodeError{Path: "results", Err: err}
	}
	return results, nil
}

// SubmitResult posts a scored result. Not idempotent: a retry after an
// ambiguous timeout can duplicate the record, and neither side
// deduplicates.
func (c *Client) SubmitResult(ctx context.Context, token string, r model.Result) (*model.Result, error) {
	var echoed model.Result
	if err := c.sendJSON(ctx, http.MethodPost, "/api/Results", token, r, &echoed); err != nil {
		return nil, err
	}
	if echoed.ID == "" {
		return nil, nil
	}
	return &echoed, nil
}
