package upstream

import (
	"context"
	"encoding/json"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/Auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register forwards the registration payload untouched; the backend owns
// its shape.
func (c *Client) Register(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.sendJSON(ctx, http.MethodPost, "/api/Auth/register", "", body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
